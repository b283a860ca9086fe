package composer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPSubmitter_Create(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"SPJ berhasil disimpan","data":{"id":12,"no_spj":"SPJ/2026/12"}}`))
	}))
	defer srv.Close()

	p := validPayload()
	p.TotalBiaya = rp(250000)

	res, err := NewHTTPSubmitter(srv.URL+"/", "token-abc").Create(context.Background(), &p)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.ID != 12 || res.NoSpj != "SPJ/2026/12" {
		t.Errorf("result = %+v", res)
	}
	if gotPath != "/api/spj" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer token-abc" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotBody["total_biaya"] != float64(250000) {
		t.Errorf("total_biaya terkirim = %v", gotBody["total_biaya"])
	}
	if _, ok := gotBody["basicInfo"]; !ok {
		t.Errorf("basicInfo tidak ada di body: %v", gotBody)
	}
}

func TestHTTPSubmitter_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Gagal menyimpan SPJ"}`))
	}))
	defer srv.Close()

	p := validPayload()
	if _, err := NewPublicSubmitter(srv.URL).Create(context.Background(), &p); err == nil {
		t.Fatal("expected error")
	}
}

func TestHTTPSubmitter_UnexpectedReply(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bentuk lain", `{"unexpected":true}`},
		{"tanpa nomor", `{"data":{"id":7}}`},
		{"tanpa id", `{"data":{"no_spj":"SPJ/2026/7"}}`},
		{"bukan json", `ok`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := validPayload()
			res, err := NewHTTPSubmitter(srv.URL, "x").Create(context.Background(), &p)
			if err == nil {
				t.Fatalf("res = %+v, want error", res)
			}
		})
	}
}

func TestHTTPSubmitter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := validPayload()
	if _, err := NewHTTPSubmitter("http://127.0.0.1:1", "").Create(ctx, &p); err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestDraftSubmitOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := validDraft(t)
	_, err := d.Submit(context.Background(), NewHTTPSubmitter(srv.URL, "x"))
	if err == nil {
		t.Fatal("expected error")
	}
	if d.Payload().BasicInfo.NoSpt != "SPT-014/K3/2026" {
		t.Error("draft berubah setelah gagal kirim")
	}
}

func TestDraftSubmitRejectsUnexpectedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"unexpected":true}`))
	}))
	defer srv.Close()

	d := validDraft(t)
	res, err := d.Submit(context.Background(), NewHTTPSubmitter(srv.URL, "x"))
	if !errors.Is(err, ErrSubmitFailed) {
		t.Fatalf("res = %+v err = %v, want ErrSubmitFailed", res, err)
	}
}

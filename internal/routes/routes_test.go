package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"siap-spj-backend/config"
	"siap-spj-backend/internal/database"
	"siap-spj-backend/internal/middleware"
	"siap-spj-backend/internal/notify"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const claimBody = `{
	"basicInfo": {
		"no_spt": "SPT-045/K3/2026",
		"sumber_anggaran": "SPJ DIPA",
		"jenis_kegiatan": "Perjalanan Dinas",
		"metode_pembayaran": "Transfer",
		"tanggal_berangkat": "2026-03-02",
		"tanggal_pulang": "2026-03-04",
		"lama_perjalanan": 3,
		"tujuan": "Balikpapan",
		"unit_organisasi": "Balai K3 Samarinda",
		"representasi": 50000
	},
	"tim": [{"nama": "Andi", "jabatan": "Penguji", "golongan": "III/a", "unit_kerja": "Balai K3"}],
	"perusahaan": [{"nama_perusahaan": "PT Boiler Kaltim"}],
	"transportDetails": [{"jenis": "Pesawat", "maskapai": "Garuda", "nomor_tiket": "GA-601", "tarif": 500000}],
	"penginapanDetails": [{"nama_hotel": "Hotel Mesra", "jumlah_hari": 2, "tarif": 300000, "is_30_percent": false}],
	"komponen": {"uang_harian": 0, "penginapan": 0, "transport_pp": 0, "transport_lokal": 0, "biaya_pendaftaran": 0, "konsumsi": 0, "honorarium": 0, "bbm": 0, "tol": 0},
	"dokumen": {"file_spt": "https://drive.example/spt.pdf"},
	"total_biaya": 850000
}`

func newTestApp(t *testing.T, public bool) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedAll(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg := config.Config{JWTSecret: "rahasia-test", JWTTTLHours: 1, PublicSubmission: public}
	app := fiber.New()
	app.Use(middleware.RequestID(5 * time.Second))
	SetupRoutes(app, db, cfg, notify.Noop{})
	return app
}

func do(t *testing.T, app *fiber.App, method, path, token, body string) (int, map[string]interface{}) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	out := map[string]interface{}{}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	code, body := do(t, app, "POST", "/api/auth/login", "", fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	if code != http.StatusOK {
		t.Fatalf("login %s = %d %v", username, code, body)
	}
	return body["token"].(string)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, false)
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestLoginAndMe(t *testing.T) {
	app := newTestApp(t, false)

	code, _ := do(t, app, "POST", "/api/auth/login", "", `{"username":"admin","password":"salah"}`)
	if code != http.StatusUnauthorized {
		t.Errorf("password salah = %d, want 401", code)
	}

	tests := []struct {
		username, password string
		menu               int
	}{
		{"admin", "admin123", 5},
		{"bendahara_pengeluaran", "ben123", 4},
		{"verifikator", "cek123", 3},
	}
	for _, tt := range tests {
		token := login(t, app, tt.username, tt.password)
		code, body := do(t, app, "GET", "/api/auth/me", token, "")
		if code != http.StatusOK {
			t.Fatalf("me %s = %d", tt.username, code)
		}
		data := body["data"].(map[string]interface{})
		if n := len(data["menu"].([]interface{})); n != tt.menu {
			t.Errorf("%s melihat %d menu, want %d", tt.username, n, tt.menu)
		}
		user := data["user"].(map[string]interface{})
		if _, leaked := user["password"]; leaked {
			t.Error("password ikut terkirim")
		}
	}
}

func TestSpjFlow(t *testing.T) {
	app := newTestApp(t, false)
	bendahara := login(t, app, "bendahara_pengeluaran", "ben123")
	verifikator := login(t, app, "verifikator", "cek123")
	admin := login(t, app, "admin", "admin123")

	// tanpa token
	if code, _ := do(t, app, "POST", "/api/spj", "", claimBody); code != http.StatusUnauthorized {
		t.Errorf("tanpa token = %d, want 401", code)
	}

	// verifikator tidak boleh input
	if code, _ := do(t, app, "POST", "/api/spj", verifikator, claimBody); code != http.StatusForbidden {
		t.Errorf("verifikator create = %d, want 403", code)
	}

	// data tidak valid
	invalid := strings.Replace(claimBody, `"no_spt": "SPT-045/K3/2026"`, `"no_spt": ""`, 1)
	code, body := do(t, app, "POST", "/api/spj", bendahara, invalid)
	if code != http.StatusBadRequest {
		t.Fatalf("invalid create = %d, want 400", code)
	}
	errs, _ := body["errors"].(map[string]interface{})
	if errs["basicInfo.no_spt"] != "required" {
		t.Errorf("errors = %v", body["errors"])
	}

	// tarif bukan angka
	garbled := strings.Replace(claimBody, `"tarif": 500000`, `"tarif": "lima ratus"`, 1)
	if code, _ := do(t, app, "POST", "/api/spj", bendahara, garbled); code != http.StatusBadRequest {
		t.Errorf("tarif bukan angka = %d, want 400", code)
	}

	// berhasil
	code, body = do(t, app, "POST", "/api/spj", bendahara, claimBody)
	if code != http.StatusCreated {
		t.Fatalf("create = %d %v", code, body)
	}
	data := body["data"].(map[string]interface{})
	wantNo := fmt.Sprintf("SPJ/%d/1", time.Now().Year())
	if data["no_spj"] != wantNo {
		t.Errorf("no_spj = %v, want %s", data["no_spj"], wantNo)
	}

	// list
	code, body = do(t, app, "GET", "/api/spj", verifikator, "")
	if code != http.StatusOK {
		t.Fatalf("list = %d", code)
	}
	list := body["data"].([]interface{})
	if len(list) != 1 {
		t.Fatalf("list = %d item, want 1", len(list))
	}
	row := list[0].(map[string]interface{})
	if row["total_biaya"] != float64(850000) || row["created_by"] != "bendahara_pengeluaran" {
		t.Errorf("row = total %v, created_by %v", row["total_biaya"], row["created_by"])
	}

	// stats
	code, body = do(t, app, "GET", "/api/stats", verifikator, "")
	if code != http.StatusOK {
		t.Fatalf("stats = %d", code)
	}
	stats := body["data"].(map[string]interface{})
	if stats["totalDipa"] != float64(850000) || stats["totalPnbp"] != float64(0) || stats["countPerjadin"] != float64(1) {
		t.Errorf("stats = %v", stats)
	}

	// log aktivitas hanya admin
	if code, _ := do(t, app, "GET", "/api/admin/logs", verifikator, ""); code != http.StatusForbidden {
		t.Errorf("verifikator logs = %d, want 403", code)
	}
	code, body = do(t, app, "GET", "/api/admin/logs", admin, "")
	if code != http.StatusOK {
		t.Fatalf("logs = %d", code)
	}
	logs := body["data"].([]interface{})
	if len(logs) != 1 || logs[0].(map[string]interface{})["user"] != "bendahara_pengeluaran" {
		t.Errorf("logs = %v", logs)
	}

	// tidak ada jalur ubah atau hapus
	for _, method := range []string{"PUT", "PATCH", "DELETE"} {
		if code, _ := do(t, app, method, "/api/spj", admin, ""); code != http.StatusMethodNotAllowed && code != http.StatusNotFound {
			t.Errorf("%s /api/spj = %d", method, code)
		}
	}
}

func TestPublicSubmission(t *testing.T) {
	t.Run("nonaktif", func(t *testing.T) {
		app := newTestApp(t, false)
		if code, _ := do(t, app, "POST", "/api/public/spj", "", claimBody); code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", code)
		}
	})

	t.Run("aktif", func(t *testing.T) {
		app := newTestApp(t, true)
		code, body := do(t, app, "POST", "/api/public/spj", "", claimBody)
		if code != http.StatusCreated {
			t.Fatalf("status = %d %v", code, body)
		}

		admin := login(t, app, "admin", "admin123")
		_, body = do(t, app, "GET", "/api/admin/logs", admin, "")
		logs := body["data"].([]interface{})
		user, _ := logs[0].(map[string]interface{})["user"].(string)
		if !strings.HasPrefix(user, "public@") {
			t.Errorf("log user = %q, want public@<ip>", user)
		}
	})
}

func TestRegisterUser(t *testing.T) {
	app := newTestApp(t, false)
	admin := login(t, app, "admin", "admin123")
	bendahara := login(t, app, "bendahara_penerimaan", "ben123")

	body := `{"username":"bendahara2","nama":"Bendahara Dua","password":"rahasia","role":"BENDAHARA_PENERIMAAN"}`
	if code, _ := do(t, app, "POST", "/api/admin/users", bendahara, body); code != http.StatusForbidden {
		t.Errorf("non-admin register = %d, want 403", code)
	}
	if code, resp := do(t, app, "POST", "/api/admin/users", admin, body); code != http.StatusCreated {
		t.Fatalf("register = %d %v", code, resp)
	}
	if code, _ := do(t, app, "POST", "/api/admin/users", admin, body); code != http.StatusConflict {
		t.Errorf("register ganda = %d, want 409", code)
	}
	if code, _ := do(t, app, "POST", "/api/admin/users", admin, `{"username":"x","password":"y","role":"TAMU"}`); code != http.StatusBadRequest {
		t.Errorf("role asing = %d, want 400", code)
	}

	login(t, app, "bendahara2", "rahasia")
}

func TestReportsAndRoles(t *testing.T) {
	app := newTestApp(t, false)
	bendahara := login(t, app, "bendahara_pengeluaran", "ben123")
	verifikator := login(t, app, "verifikator", "cek123")
	admin := login(t, app, "admin", "admin123")

	if code, body := do(t, app, "POST", "/api/spj", bendahara, claimBody); code != http.StatusCreated {
		t.Fatalf("create = %d %v", code, body)
	}

	if code, _ := do(t, app, "GET", "/api/reports?mulai=02-03-2026", verifikator, ""); code != http.StatusBadRequest {
		t.Errorf("tanggal salah format = %d, want 400", code)
	}
	if code, _ := do(t, app, "GET", "/api/reports?mulai=2026-04-01&selesai=2026-03-01", verifikator, ""); code != http.StatusBadRequest {
		t.Errorf("rentang terbalik = %d, want 400", code)
	}

	code, body := do(t, app, "GET", "/api/reports?mulai=2026-03-01&selesai=2026-03-31", verifikator, "")
	if code != http.StatusOK {
		t.Fatalf("reports = %d", code)
	}
	data := body["data"].(map[string]interface{})
	if n := len(data["per_sumber"].([]interface{})); n != 1 {
		t.Errorf("per_sumber = %d baris, want 1", n)
	}
	if p := data["perusahaan"].([]interface{}); len(p) != 1 || p[0] != "PT Boiler Kaltim" {
		t.Errorf("perusahaan = %v", p)
	}

	if code, _ := do(t, app, "GET", "/api/admin/roles", bendahara, ""); code != http.StatusForbidden {
		t.Errorf("non-admin roles = %d, want 403", code)
	}
	code, body = do(t, app, "GET", "/api/admin/roles", admin, "")
	if code != http.StatusOK {
		t.Fatalf("roles = %d", code)
	}
	if n := len(body["data"].([]interface{})); n != 4 {
		t.Errorf("roles = %d, want 4", n)
	}
}

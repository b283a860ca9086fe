// Package composer menyusun satu SPJ di sisi klien sebelum dikirim ke server.
package composer

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"siap-spj-backend/internal/model"

	"github.com/shopspring/decimal"
)

const (
	MaxMembers   = 6
	MaxCompanies = 10

	DefaultUnit = "Balai K3 Samarinda"
)

var (
	ErrTooManyMembers   = errors.New("anggota tim maksimal 6 orang")
	ErrTooManyCompanies = errors.New("perusahaan maksimal 10")
	ErrNoSuchRow        = errors.New("baris tidak ditemukan")
	ErrSubmitFailed     = errors.New("gagal menyimpan data")
)

// Draft menyimpan isian formulir. Total dihitung ulang setiap kali isian berubah.
type Draft struct {
	p     model.SpjPayload
	total decimal.Decimal
}

func NewDraft() *Draft {
	d := &Draft{p: model.SpjPayload{
		BasicInfo: model.BasicInfo{
			SumberAnggaran:   model.SumberDIPA,
			JenisKegiatan:    model.KegiatanPerjalananDinas,
			MetodePembayaran: model.BayarTransfer,
			LamaPerjalanan:   1,
			UnitOrganisasi:   DefaultUnit,
		},
		Tim: []model.TimInput{{}},
	}}
	d.recompute()
	return d
}

func (d *Draft) recompute() {
	d.total = ComputeTotal(&d.p)
}

// Payload mengembalikan salinan isian beserta total terbaru.
func (d *Draft) Payload() model.SpjPayload {
	p := d.p
	p.Tim = slices.Clone(d.p.Tim)
	p.Perusahaan = slices.Clone(d.p.Perusahaan)
	p.TransportDetails = slices.Clone(d.p.TransportDetails)
	p.PenginapanDetails = slices.Clone(d.p.PenginapanDetails)
	p.TotalBiaya = d.total
	return p
}

func (d *Draft) Total() decimal.Decimal { return d.total }

func (d *Draft) SetBasicInfo(b model.BasicInfo) {
	d.p.BasicInfo = b
	d.recompute()
}

func (d *Draft) SetRepresentasi(v decimal.Decimal) {
	d.p.BasicInfo.Representasi = v
	d.recompute()
}

func (d *Draft) SetKomponen(k model.KomponenBiaya) {
	d.p.Komponen = k
	d.recompute()
}

func (d *Draft) SetDokumen(doc model.Dokumen) {
	d.p.Dokumen = doc
}

func (d *Draft) AddMember(m model.TimInput) error {
	if len(d.p.Tim) >= MaxMembers {
		return ErrTooManyMembers
	}
	d.p.Tim = append(d.p.Tim, m)
	return nil
}

func (d *Draft) RemoveMember(i int) error {
	if i < 0 || i >= len(d.p.Tim) {
		return ErrNoSuchRow
	}
	d.p.Tim = slices.Delete(d.p.Tim, i, i+1)
	return nil
}

// SetMember mengganti baris anggota ke-i tanpa mengubah urutan.
func (d *Draft) SetMember(i int, m model.TimInput) error {
	if i < 0 || i >= len(d.p.Tim) {
		return ErrNoSuchRow
	}
	d.p.Tim[i] = m
	return nil
}

func (d *Draft) AddCompany(c model.PerusahaanInput) error {
	if len(d.p.Perusahaan) >= MaxCompanies {
		return ErrTooManyCompanies
	}
	d.p.Perusahaan = append(d.p.Perusahaan, c)
	return nil
}

func (d *Draft) RemoveCompany(i int) error {
	if i < 0 || i >= len(d.p.Perusahaan) {
		return ErrNoSuchRow
	}
	d.p.Perusahaan = slices.Delete(d.p.Perusahaan, i, i+1)
	return nil
}

func (d *Draft) SetCompany(i int, c model.PerusahaanInput) error {
	if i < 0 || i >= len(d.p.Perusahaan) {
		return ErrNoSuchRow
	}
	d.p.Perusahaan[i] = c
	return nil
}

func (d *Draft) AddTransport(t model.TransportInput) {
	d.p.TransportDetails = append(d.p.TransportDetails, t)
	d.recompute()
}

func (d *Draft) RemoveTransport(i int) error {
	if i < 0 || i >= len(d.p.TransportDetails) {
		return ErrNoSuchRow
	}
	d.p.TransportDetails = slices.Delete(d.p.TransportDetails, i, i+1)
	d.recompute()
	return nil
}

func (d *Draft) SetTransport(i int, t model.TransportInput) error {
	if i < 0 || i >= len(d.p.TransportDetails) {
		return ErrNoSuchRow
	}
	d.p.TransportDetails[i] = t
	d.recompute()
	return nil
}

func (d *Draft) AddLodging(h model.PenginapanInput) {
	d.p.PenginapanDetails = append(d.p.PenginapanDetails, h)
	d.recompute()
}

func (d *Draft) RemoveLodging(i int) error {
	if i < 0 || i >= len(d.p.PenginapanDetails) {
		return ErrNoSuchRow
	}
	d.p.PenginapanDetails = slices.Delete(d.p.PenginapanDetails, i, i+1)
	d.recompute()
	return nil
}

func (d *Draft) SetLodging(i int, h model.PenginapanInput) error {
	if i < 0 || i >= len(d.p.PenginapanDetails) {
		return ErrNoSuchRow
	}
	d.p.PenginapanDetails[i] = h
	d.recompute()
	return nil
}

func (d *Draft) Checklist() []DocStatus {
	return Checklist(&d.p)
}

// Submit memvalidasi, mencap total, lalu mengirim lewat s.
// Gagal validasi mengembalikan FieldErrors; gagal kirim mengembalikan ErrSubmitFailed.
// Isian draft tidak berubah dalam kedua kasus.
func (d *Draft) Submit(ctx context.Context, s Submitter) (*SubmitResult, error) {
	p := d.Payload()
	p.Normalize()
	if err := Validate(&p); err != nil {
		return nil, err
	}
	p.TotalBiaya = ComputeTotal(&p)

	res, err := s.Create(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	return res, nil
}

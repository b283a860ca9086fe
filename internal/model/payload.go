package model

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SpjPayload adalah bentuk kiriman formulir SPJ.
type SpjPayload struct {
	BasicInfo         BasicInfo         `json:"basicInfo"`
	Tim               []TimInput        `json:"tim" validate:"max=6,dive"`
	Perusahaan        []PerusahaanInput `json:"perusahaan" validate:"max=10,dive"`
	TransportDetails  []TransportInput  `json:"transportDetails" validate:"dive"`
	PenginapanDetails []PenginapanInput `json:"penginapanDetails" validate:"dive"`
	Komponen          KomponenBiaya     `json:"komponen"`
	Dokumen           Dokumen           `json:"dokumen"`
	TotalBiaya        decimal.Decimal   `json:"total_biaya"`
}

type BasicInfo struct {
	NoSpt                string           `json:"no_spt" validate:"required"`
	NoSppd               string           `json:"no_sppd"`
	NoSpm                string           `json:"no_spm"`
	NoDrpp               string           `json:"no_drpp"`
	KodeMak              string           `json:"kode_mak"`
	SumberAnggaran       SumberAnggaran   `json:"sumber_anggaran" validate:"required,enum"`
	JenisKegiatan        JenisKegiatan    `json:"jenis_kegiatan" validate:"required,enum"`
	MetodePembayaran     MetodePembayaran `json:"metode_pembayaran" validate:"required,enum"`
	MetodeBayarTransport MetodePembayaran `json:"metode_bayar_transport" validate:"omitempty,enum"`
	MetodeBayarHotel     MetodePembayaran `json:"metode_bayar_hotel" validate:"omitempty,enum"`
	TanggalSpt           string           `json:"tanggal_spt" validate:"omitempty,datetime=2006-01-02"`
	TanggalSppd          string           `json:"tanggal_sppd" validate:"omitempty,datetime=2006-01-02"`
	TanggalBerangkat     string           `json:"tanggal_berangkat" validate:"required,datetime=2006-01-02"`
	TanggalPulang        string           `json:"tanggal_pulang" validate:"required,datetime=2006-01-02"`
	LamaPerjalanan       int              `json:"lama_perjalanan" validate:"min=1"`
	Tujuan               string           `json:"tujuan" validate:"required"`
	ProvinsiTujuan       string           `json:"provinsi_tujuan"`
	UnitOrganisasi       string           `json:"unit_organisasi"`
	Representasi         decimal.Decimal  `json:"representasi"`
}

type TimInput struct {
	Nama      string `json:"nama" validate:"required"`
	Jabatan   string `json:"jabatan"`
	Golongan  string `json:"golongan"`
	UnitKerja string `json:"unit_kerja"`
}

type PerusahaanInput struct {
	NamaPerusahaan string `json:"nama_perusahaan" validate:"required"`
}

type TransportInput struct {
	Jenis      JenisTransport  `json:"jenis" validate:"omitempty,enum"`
	NomorTiket string          `json:"nomor_tiket"`
	Maskapai   string          `json:"maskapai"`
	Tarif      decimal.Decimal `json:"tarif"`
}

type PenginapanInput struct {
	NamaHotel  string          `json:"nama_hotel"`
	JumlahHari int             `json:"jumlah_hari" validate:"min=0"`
	Tarif      decimal.Decimal `json:"tarif"`
	Is30Persen bool            `json:"is_30_percent"`
}

// KomponenBiaya selalu ikut dijumlahkan walaupun tidak tampil di formulir.
type KomponenBiaya struct {
	UangHarian       decimal.Decimal `json:"uang_harian"`
	Penginapan       decimal.Decimal `json:"penginapan"`
	TransportPP      decimal.Decimal `json:"transport_pp"`
	TransportLokal   decimal.Decimal `json:"transport_lokal"`
	BiayaPendaftaran decimal.Decimal `json:"biaya_pendaftaran"`
	Konsumsi         decimal.Decimal `json:"konsumsi"`
	Honorarium       decimal.Decimal `json:"honorarium"`
	Bbm              decimal.Decimal `json:"bbm"`
	Tol              decimal.Decimal `json:"tol"`
}

func (k KomponenBiaya) Sum() decimal.Decimal {
	return decimal.Sum(
		k.UangHarian,
		k.Penginapan,
		k.TransportPP,
		k.TransportLokal,
		k.BiayaPendaftaran,
		k.Konsumsi,
		k.Honorarium,
		k.Bbm,
		k.Tol,
	)
}

type Dokumen struct {
	FileSpt             string `json:"file_spt"`
	FileRincian         string `json:"file_rincian"`
	FileSppd            string `json:"file_sppd"`
	FileSptjm           string `json:"file_sptjm"`
	FileKwitansi        string `json:"file_kwitansi"`
	FileLaporanPerjadin string `json:"file_laporan_perjadin"`
	FileSuratPenawaran  string `json:"file_surat_penawaran"`
}

// Normalize merapikan spasi di semua field teks.
func (p *SpjPayload) Normalize() {
	b := &p.BasicInfo
	for _, s := range []*string{
		&b.NoSpt, &b.NoSppd, &b.NoSpm, &b.NoDrpp, &b.KodeMak,
		&b.TanggalSpt, &b.TanggalSppd, &b.TanggalBerangkat, &b.TanggalPulang,
		&b.Tujuan, &b.ProvinsiTujuan, &b.UnitOrganisasi,
	} {
		*s = strings.TrimSpace(*s)
	}
	for i := range p.Tim {
		p.Tim[i].Nama = strings.TrimSpace(p.Tim[i].Nama)
	}
	for i := range p.Perusahaan {
		p.Perusahaan[i].NamaPerusahaan = strings.TrimSpace(p.Perusahaan[i].NamaPerusahaan)
	}
	d := &p.Dokumen
	for _, s := range []*string{
		&d.FileSpt, &d.FileRincian, &d.FileSppd, &d.FileSptjm,
		&d.FileKwitansi, &d.FileLaporanPerjadin, &d.FileSuratPenawaran,
	} {
		*s = strings.TrimSpace(*s)
	}
}

// ToModel memetakan kiriman ke baris spj. Nomor SPJ diisi oleh pemanggil.
func (p *SpjPayload) ToModel() Spj {
	b := p.BasicInfo
	return Spj{
		NoSpt:                b.NoSpt,
		NoSppd:               optional(b.NoSppd),
		NoSpm:                optional(b.NoSpm),
		NoDrpp:               optional(b.NoDrpp),
		KodeMak:              optional(b.KodeMak),
		SumberAnggaran:       b.SumberAnggaran,
		JenisKegiatan:        b.JenisKegiatan,
		MetodePembayaran:     b.MetodePembayaran,
		MetodeBayarTransport: optionalMetode(b.MetodeBayarTransport),
		MetodeBayarHotel:     optionalMetode(b.MetodeBayarHotel),
		TanggalSpt:           optional(b.TanggalSpt),
		TanggalSppd:          optional(b.TanggalSppd),
		TanggalBerangkat:     b.TanggalBerangkat,
		TanggalPulang:        b.TanggalPulang,
		LamaPerjalanan:       b.LamaPerjalanan,
		Tujuan:               b.Tujuan,
		ProvinsiTujuan:       optional(b.ProvinsiTujuan),
		UnitOrganisasi:       optional(b.UnitOrganisasi),
		Representasi:         b.Representasi,
		Bbm:                  p.Komponen.Bbm,
		Tol:                  p.Komponen.Tol,
		Komponen:             datatypes.NewJSONType(p.Komponen),
		TotalBiaya:           p.TotalBiaya,
		FileSpt:              optional(p.Dokumen.FileSpt),
		FileRincian:          optional(p.Dokumen.FileRincian),
		FileSppd:             optional(p.Dokumen.FileSppd),
		FileSptjm:            optional(p.Dokumen.FileSptjm),
		FileKwitansi:         optional(p.Dokumen.FileKwitansi),
		FileLaporanPerjadin:  optional(p.Dokumen.FileLaporanPerjadin),
		FileSuratPenawaran:   optional(p.Dokumen.FileSuratPenawaran),
	}
}

func (p *SpjPayload) TransportRows(spjID uint) []TransportDetail {
	rows := make([]TransportDetail, 0, len(p.TransportDetails))
	for _, t := range p.TransportDetails {
		rows = append(rows, TransportDetail{SpjID: spjID, Jenis: t.Jenis, NomorTiket: t.NomorTiket, Maskapai: t.Maskapai, Tarif: t.Tarif})
	}
	return rows
}

func (p *SpjPayload) PenginapanRows(spjID uint) []PenginapanDetail {
	rows := make([]PenginapanDetail, 0, len(p.PenginapanDetails))
	for _, h := range p.PenginapanDetails {
		flag := 0
		if h.Is30Persen {
			flag = 1
		}
		rows = append(rows, PenginapanDetail{SpjID: spjID, NamaHotel: h.NamaHotel, JumlahHari: h.JumlahHari, Tarif: h.Tarif, Is30Persen: flag})
	}
	return rows
}

func (p *SpjPayload) TimRows(spjID uint) []TimKegiatan {
	rows := make([]TimKegiatan, 0, len(p.Tim))
	for _, m := range p.Tim {
		rows = append(rows, TimKegiatan{SpjID: spjID, Nama: m.Nama, Jabatan: m.Jabatan, Golongan: m.Golongan, UnitKerja: m.UnitKerja})
	}
	return rows
}

func (p *SpjPayload) PerusahaanRows(spjID uint) []Perusahaan {
	rows := make([]Perusahaan, 0, len(p.Perusahaan))
	for _, c := range p.Perusahaan {
		rows = append(rows, Perusahaan{SpjID: spjID, NamaPerusahaan: c.NamaPerusahaan})
	}
	return rows
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalMetode(m MetodePembayaran) *MetodePembayaran {
	if m == "" {
		return nil
	}
	return &m
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Spj adalah satu berkas pertanggungjawaban. Tidak pernah diubah setelah tersimpan.
type Spj struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	NoSpj  string `json:"no_spj" gorm:"size:40;uniqueIndex;not null"`
	Tahun  int    `json:"tahun" gorm:"uniqueIndex:idx_spj_tahun_urutan;not null"`
	Urutan int    `json:"urutan" gorm:"uniqueIndex:idx_spj_tahun_urutan;not null"`

	NoSpt   string  `json:"no_spt" gorm:"size:100;not null"`
	NoSppd  *string `json:"no_sppd" gorm:"size:100"`
	NoSpm   *string `json:"no_spm" gorm:"size:100"`
	NoDrpp  *string `json:"no_drpp" gorm:"size:100"`
	KodeMak *string `json:"kode_mak" gorm:"size:100"`

	SumberAnggaran       SumberAnggaran    `json:"sumber_anggaran" gorm:"size:20;not null;index"`
	JenisKegiatan        JenisKegiatan     `json:"jenis_kegiatan" gorm:"size:40;not null;index"`
	MetodePembayaran     MetodePembayaran  `json:"metode_pembayaran" gorm:"size:20;not null;index"`
	MetodeBayarTransport *MetodePembayaran `json:"metode_bayar_transport" gorm:"size:20"`
	MetodeBayarHotel     *MetodePembayaran `json:"metode_bayar_hotel" gorm:"size:20"`

	TanggalSpt       *string `json:"tanggal_spt" gorm:"size:10"`
	TanggalSppd      *string `json:"tanggal_sppd" gorm:"size:10"`
	TanggalBerangkat string  `json:"tanggal_berangkat" gorm:"size:10;not null"`
	TanggalPulang    string  `json:"tanggal_pulang" gorm:"size:10;not null"`
	LamaPerjalanan   int     `json:"lama_perjalanan"`
	Tujuan           string  `json:"tujuan" gorm:"size:255"`
	ProvinsiTujuan   *string `json:"provinsi_tujuan" gorm:"size:100"`
	UnitOrganisasi   *string `json:"unit_organisasi" gorm:"size:150"`

	Representasi decimal.Decimal                   `json:"representasi" gorm:"type:decimal(20,2);not null;default:0"`
	Bbm          decimal.Decimal                   `json:"bbm" gorm:"type:decimal(20,2);not null;default:0"`
	Tol          decimal.Decimal                   `json:"tol" gorm:"type:decimal(20,2);not null;default:0"`
	Komponen     datatypes.JSONType[KomponenBiaya] `json:"komponen"`
	TotalBiaya   decimal.Decimal                   `json:"total_biaya" gorm:"type:decimal(20,2);not null;default:0"`

	FileSpt             *string `json:"file_spt" gorm:"type:text"`
	FileRincian         *string `json:"file_rincian" gorm:"type:text"`
	FileSppd            *string `json:"file_sppd" gorm:"type:text"`
	FileSptjm           *string `json:"file_sptjm" gorm:"type:text"`
	FileKwitansi        *string `json:"file_kwitansi" gorm:"type:text"`
	FileLaporanPerjadin *string `json:"file_laporan_perjadin" gorm:"type:text"`
	FileSuratPenawaran  *string `json:"file_surat_penawaran" gorm:"type:text"`

	CreatedBy string    `json:"created_by" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (Spj) TableName() string { return "spj" }

type TransportDetail struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	SpjID      uint            `json:"spj_id" gorm:"index;not null"`
	Jenis      JenisTransport  `json:"jenis" gorm:"size:20"`
	NomorTiket string          `json:"nomor_tiket" gorm:"size:100"`
	Maskapai   string          `json:"maskapai" gorm:"size:100"`
	Tarif      decimal.Decimal `json:"tarif" gorm:"type:decimal(20,2);not null;default:0"`

	Spj *Spj `json:"-" gorm:"foreignKey:SpjID;constraint:OnDelete:CASCADE"`
}

func (TransportDetail) TableName() string { return "transport_detail" }

type PenginapanDetail struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	SpjID      uint            `json:"spj_id" gorm:"index;not null"`
	NamaHotel  string          `json:"nama_hotel" gorm:"size:150"`
	JumlahHari int             `json:"jumlah_hari"`
	Tarif      decimal.Decimal `json:"tarif" gorm:"type:decimal(20,2);not null;default:0"`
	Is30Persen int             `json:"is_30_percent" gorm:"column:is_30_percent;not null;default:0"` // 0/1

	Spj *Spj `json:"-" gorm:"foreignKey:SpjID;constraint:OnDelete:CASCADE"`
}

func (PenginapanDetail) TableName() string { return "penginapan_detail" }

type TimKegiatan struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	SpjID     uint   `json:"spj_id" gorm:"index;not null"`
	Nama      string `json:"nama" gorm:"size:150;not null"`
	Jabatan   string `json:"jabatan" gorm:"size:150"`
	Golongan  string `json:"golongan" gorm:"size:20"`
	UnitKerja string `json:"unit_kerja" gorm:"size:150"`

	Spj *Spj `json:"-" gorm:"foreignKey:SpjID;constraint:OnDelete:CASCADE"`
}

func (TimKegiatan) TableName() string { return "tim_kegiatan" }

type Perusahaan struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	SpjID          uint   `json:"spj_id" gorm:"index;not null"`
	NamaPerusahaan string `json:"nama_perusahaan" gorm:"size:200;not null"`

	Spj *Spj `json:"-" gorm:"foreignKey:SpjID;constraint:OnDelete:CASCADE"`
}

func (Perusahaan) TableName() string { return "perusahaan" }

// LogAktivitas hanya ditambah, tidak pernah diubah.
type LogAktivitas struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	User      string    `json:"user" gorm:"column:user;size:100;not null"`
	Aktivitas string    `json:"aktivitas" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime;index"`
}

func (LogAktivitas) TableName() string { return "log_aktivitas" }

// SpjStats adalah ringkasan untuk dashboard.
type SpjStats struct {
	TotalDipa     decimal.Decimal `json:"totalDipa"`
	TotalPnbp     decimal.Decimal `json:"totalPnbp"`
	CountPerjadin int64           `json:"countPerjadin"`
	CountRapat    int64           `json:"countRapat"`
	KkpUsage      decimal.Decimal `json:"kkpUsage"`
}

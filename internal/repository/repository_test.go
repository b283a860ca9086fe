package repository

import (
	"path/filepath"
	"testing"

	"siap-spj-backend/config"
	"siap-spj-backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB membuka SQLite in-memory dengan satu koneksi agar skema tetap hidup.
func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

// newFileTestDB memakai berkas SQLite agar beberapa koneksi bisa menulis bersamaan.
func newFileTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "spj.db") + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
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
	sqlDB.SetMaxOpenConns(4)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func rp(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func samplePayload() *model.SpjPayload {
	return &model.SpjPayload{
		BasicInfo: model.BasicInfo{
			NoSpt:            "SPT-001/K3/2026",
			SumberAnggaran:   model.SumberDIPA,
			JenisKegiatan:    model.KegiatanPerjalananDinas,
			MetodePembayaran: model.BayarTransfer,
			TanggalBerangkat: "2026-03-02",
			TanggalPulang:    "2026-03-04",
			LamaPerjalanan:   3,
			Tujuan:           "Balikpapan",
			UnitOrganisasi:   "Balai K3 Samarinda",
			Representasi:     rp(50000),
		},
		Tim: []model.TimInput{
			{Nama: "Andi", Jabatan: "Penguji", Golongan: "III/a"},
			{Nama: "Sari"},
		},
		TransportDetails: []model.TransportInput{
			{Jenis: model.TransportPesawat, NomorTiket: "GA-123", Maskapai: "Garuda", Tarif: rp(500000)},
			{Jenis: model.TransportPesawat, NomorTiket: "GA-124", Maskapai: "Garuda", Tarif: rp(750000)},
		},
		PenginapanDetails: []model.PenginapanInput{
			{NamaHotel: "Hotel Mesra", JumlahHari: 2, Tarif: rp(300000), Is30Persen: true},
		},
		Perusahaan: []model.PerusahaanInput{{NamaPerusahaan: "PT Boiler Kaltim"}},
		Komponen:   model.KomponenBiaya{Bbm: rp(20000), Tol: rp(10000)},
		Dokumen:    model.Dokumen{FileSpt: "https://drive.example/spt.pdf"},
		TotalBiaya: rp(1630000),
	}
}

func count(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

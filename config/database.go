package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"siap-spj-backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDB membuka koneksi sesuai DB_TYPE (mysql | postgres | sqlite) dan menjalankan
// migrasi bila DB_AUTO_MIGRATE aktif.
func ConnectDB(cfg Config) *gorm.DB {
	dialector, err := Dialector(cfg)
	if err != nil {
		log.Fatalf("Gagal menyiapkan driver database: %v", err)
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Gagal koneksi ke database (%s): %v", cfg.DBType, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Gagal mengambil instance database: %v", err)
	}
	if cfg.DBType == "sqlite" {
		// SQLite hanya mengizinkan satu penulis.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			log.Fatalf("Gagal migrasi database: %v", err)
		}
	}

	log.Printf("Koneksi Database Berhasil! (%s)", cfg.DBType)
	DB = db
	return db
}

func Dialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case "postgres", "postgresql":
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Makassar",
				GetEnv("POSTGRES_HOST", "localhost"),
				GetEnv("POSTGRES_USER", "postgres"),
				GetEnv("POSTGRES_PASSWORD", ""),
				GetEnv("POSTGRES_DATABASE", "siap_spj"),
				GetEnv("POSTGRES_PORT", "5432"),
				GetEnv("POSTGRES_SSLMODE", "disable"),
			)
		}
		return postgres.Open(dsn), nil
	case "sqlite":
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = GetEnv("SQLITE_PATH", "spj_modern.db")
		}
		return sqlite.Open(dsn), nil
	case "mysql", "":
		dsn := cfg.DBDSN
		if dsn == "" {
			// Jika pakai XAMPP default, user adalah "root" dan password kosong ""
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				GetEnv("MYSQL_USER", "root"),
				GetEnv("MYSQL_PASSWORD", ""),
				GetEnv("MYSQL_HOST", "127.0.0.1"),
				GetEnv("MYSQL_PORT", "3306"),
				GetEnv("MYSQL_DATABASE", "siap_spj"),
			)
		}
		return mysql.Open(dsn), nil
	}
	return nil, fmt.Errorf("DB_TYPE tidak dikenal: %q", cfg.DBType)
}

// Migrate membuat tabel berdasarkan struct di folder model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Spj{},
		&model.TransportDetail{},
		&model.PenginapanDetail{},
		&model.TimKegiatan{},
		&model.Perusahaan{},
		&model.LogAktivitas{},
	)
}

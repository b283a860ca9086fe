package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DBType           string
	DBDSN            string
	AutoMigrate      bool
	JWTSecret        string
	JWTTTLHours      int
	PublicSubmission bool
	CORSOrigins      string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	NotifyTo     []string
}

// Load membaca .env (jika ada) lalu menyusun Config dari environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	cfg := Config{
		Port:             GetEnv("APP_PORT", "3000"),
		DBType:           strings.ToLower(GetEnv("DB_TYPE", "mysql")),
		DBDSN:            GetEnv("DB_DSN", ""),
		AutoMigrate:      GetEnvAsBool("DB_AUTO_MIGRATE", true),
		JWTSecret:        GetEnv("JWT_SECRET", ""),
		JWTTTLHours:      GetEnvAsInt("JWT_TTL_HOURS", 24),
		PublicSubmission: GetEnvAsBool("PUBLIC_SUBMISSION", false),
		CORSOrigins:      GetEnv("CORS_ORIGINS", "*"),

		SMTPHost:     GetEnv("SMTP_HOST", ""),
		SMTPPort:     GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     GetEnv("SMTP_USER", ""),
		SMTPPassword: GetEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     GetEnv("SMTP_FROM", "siap-spj@localhost"),
		NotifyTo:     GetEnvAsList("NOTIFY_TO"),
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET belum diset, memakai secret development.")
		cfg.JWTSecret = "siap-spj-dev-secret"
	}
	return cfg
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(GetEnv(key, ""))) {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n":
		return false
	}
	return fallback
}

// GetEnvAsList memecah nilai dipisah koma, entri kosong dibuang.
func GetEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(GetEnv(key, ""), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

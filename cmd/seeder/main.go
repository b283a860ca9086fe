package main

import (
	"fmt"
	"log"

	"siap-spj-backend/config"
	"siap-spj-backend/internal/database"
)

func main() {
	fmt.Println("🌱 Memulai Database Seeding...")

	// Load .env manual karena ini script terpisah
	cfg := config.Load()
	cfg.AutoMigrate = true
	config.ConnectDB(cfg)

	fmt.Println("🚀 Menjalankan SeedAll...")
	if err := database.SeedAll(config.DB); err != nil {
		log.Fatalf("Seeding gagal: %v", err)
	}

	fmt.Println("✅ Seeding Selesai!")
}

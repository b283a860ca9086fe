package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"siap-spj-backend/config"
	"siap-spj-backend/internal/database"
	"siap-spj-backend/internal/middleware"
	"siap-spj-backend/internal/notify"
	"siap-spj-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	cfg := config.Load()

	fmt.Println("2. Mencoba koneksi ke Database...")
	db := config.ConnectDB(cfg)
	if err := database.SeedAll(db); err != nil {
		log.Printf("Warning: seeding akun awal gagal: %v", err)
	}
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New(fiber.Config{
		AppName:   "SIAP-SPJ",
		BodyLimit: 2 * 1024 * 1024,
	})

	// Middleware Global
	app.Use(recover.New())
	app.Use(middleware.RequestID(10 * time.Second))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} reqid=${respHeader:X-Request-ID}\n",
	}))

	routes.SetupRoutes(app, db, cfg, notify.New(cfg))
	if cfg.PublicSubmission {
		fmt.Println("   Mode publik aktif: POST /api/public/spj tanpa login")
	}

	// Start server non-blocking
	go func() {
		fmt.Printf("4. Server siap! Menunggu request di port :%s\n", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

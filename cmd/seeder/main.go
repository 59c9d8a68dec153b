package main

import (
	"context"
	"fmt"
	"log"

	"sirup-monitor/config"
	"sirup-monitor/internal/database"
	"sirup-monitor/internal/repository"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	fmt.Println("🌱 Memulai Database Seeding...")

	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}
	cfg := config.Load()

	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	local, err := repository.NewLocalStateRepository(cfg.LocalDBPath)
	if err != nil {
		log.Fatalf("Gagal membuka database lokal: %v", err)
	}
	defer local.Close()

	var remote repository.StateStore
	if db, err := config.ConnectDB(cfg.DBDriver, cfg.DBDSN); err == nil {
		remote = repository.NewRemoteStateRepository(db)
	} else {
		log.Println("Warning:", err)
	}

	// Seeder menimpa seluruh dokumen, termasuk data yang sudah ada
	fmt.Println("🚀 Menjalankan SeedAll...")
	if err := database.SeedAll(context.Background(), repository.NewGateway(remote, local, zlog), zlog); err != nil {
		log.Fatalf("Seeding gagal: %v", err)
	}

	fmt.Println("✅ Seeding Selesai!")
}

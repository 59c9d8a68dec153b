package main

import (
	"context"
	"fmt"
	"log"

	"sirup-monitor/config"
	"sirup-monitor/internal/repository"
	"sirup-monitor/internal/routes"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func newLogger(level string) *zap.Logger {
	if level == "debug" {
		l, _ := zap.NewDevelopment()
		return l
	}
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}
	cfg := config.Load()
	zlog := newLogger(cfg.LogLevel)
	defer zlog.Sync()

	fmt.Println("2. Membuka penyimpanan lokal...")
	local, err := repository.NewLocalStateRepository(cfg.LocalDBPath)
	if err != nil {
		zlog.Fatal("Gagal membuka database lokal", zap.String("path", cfg.LocalDBPath), zap.Error(err))
	}
	defer local.Close()

	fmt.Println("3. Mencoba koneksi ke Cloud Server...")
	var remote repository.StateStore
	if db, err := config.ConnectDB(cfg.DBDriver, cfg.DBDSN); err != nil {
		zlog.Warn("Cloud Server tidak tersedia, Mode Lokal", zap.Error(err))
	} else {
		remote = repository.NewRemoteStateRepository(db)
		zlog.Info("Cloud Server terhubung", zap.String("driver", cfg.DBDriver))
	}

	gw := repository.NewGateway(remote, local, zlog)
	state := usecase.NewStateUsecase(gw, zlog)
	state.Init(context.Background())

	auth, err := usecase.NewAuthUsecase(state, []byte(cfg.JWTSecret), cfg.SharedPassphrase)
	if err != nil {
		zlog.Fatal("Gagal menyiapkan autentikasi", zap.Error(err))
	}

	app := fiber.New(fiber.Config{BodyLimit: 16 * 1024 * 1024})

	// Middleware Global
	app.Use(cors.New())
	app.Use(logger.New())

	routes.Setup(app, state, auth, []byte(cfg.JWTSecret))

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Println("4. Server siap! Menunggu request di port " + addr)
	log.Fatal(app.Listen(addr))
}

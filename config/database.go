package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sirup-monitor/internal/repository"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNoDSN = errors.New("DB_DSN kosong, berjalan dalam Mode Lokal")

// ConnectDB membuka koneksi server database, ping, lalu migrasi tabel sirup_data.
//
// Contoh DSN:
//
//	mysql:    root:@tcp(127.0.0.1:3306)/sirup_db?charset=utf8mb4&parseTime=True&loc=Local
//	postgres: host=localhost user=postgres password=postgres dbname=sirup_db port=5432 sslmode=disable
func ConnectDB(driver, dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, ErrNoDSN
	}

	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("driver database tidak dikenal: %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi ke database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("database tidak merespon: %w", err)
	}

	// Auto Migration: tabel dokumen state global
	if err := repository.Migrate(db); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("gagal migrasi: %w", err)
	}

	return db, nil
}

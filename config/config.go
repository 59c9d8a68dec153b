package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port             int
	DBDriver         string // "mysql" atau "postgres"
	DBDSN            string // kosong = Mode Lokal
	LocalDBPath      string
	JWTSecret        string
	SharedPassphrase string
	LogLevel         string
}

// Load membaca konfigurasi dari environment. Panggil godotenv.Load() lebih dulu.
func Load() Config {
	return Config{
		Port:             GetEnvAsInt("PORT", 3000),
		DBDriver:         strings.ToLower(GetEnv("DB_DRIVER", "mysql")),
		DBDSN:            GetEnv("DB_DSN", ""),
		LocalDBPath:      GetEnv("LOCAL_DB_PATH", "./data/sirup_local.db"),
		JWTSecret:        GetEnv("JWT_SECRET", "sirup-ntb-rahasia"),
		SharedPassphrase: GetEnv("SHARED_PASSPHRASE", "ntb"),
		LogLevel:         strings.ToLower(GetEnv("LOG_LEVEL", "info")),
	}
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

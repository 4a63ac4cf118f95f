package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env file tidak ditemukan, pakai ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat")
		}
	} else {
		log.Println("🚀 Running in Railway, pakai ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis dipakai sebagai cache ringan (stats dashboard). Boleh nil kalau
// REDIS_ADDR tidak diset; pemanggil wajib cek nil.
var Redis *redis.Client

func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("ℹ️ REDIS_ADDR kosong, cache dimatikan")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis ping gagal (%v), cache dimatikan", err)
		return
	}

	Redis = client
	log.Println("✅ Redis connected.")
}

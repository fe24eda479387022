// cmd/seeddata/main.go — Escribe el snapshot de fábrica en el backend configurado.
// Uso: go run cmd/seeddata/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/config"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/infra"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	var snap infra.SnapshotStore
	switch cfg.SnapshotBackend {
	case "redis":
		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connect error: %v", err)
		}
		snap = infra.NewRedisSnapshotStore(rdb)
	case "sqlite":
		snap, err = infra.NewSQLiteSnapshotStore(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("sqlite open error: %v", err)
		}
	case "file":
		snap = infra.NewFileSnapshotStore(cfg.DataPath)
	default:
		log.Fatalf("backend de snapshot desconocido: %q", cfg.SnapshotBackend)
	}

	data, err := json.Marshal(seed.State())
	if err != nil {
		log.Fatalf("marshal error: %v", err)
	}
	if err := snap.Save(context.Background(), data); err != nil {
		log.Fatalf("save error: %v", err)
	}
	fmt.Printf("✅ Snapshot de fábrica escrito en el backend '%s'\n", cfg.SnapshotBackend)
}

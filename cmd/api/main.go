package main

import (
	"context"
	"log"

	"github.com/YogendraNeeladri/CipherStudio/config"
	"github.com/YogendraNeeladri/CipherStudio/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	// Store connection failure at startup is fatal; per-request store
	// errors are reported to the caller and the process keeps serving.
	handle, err := bootstrap.OpenStore(context.Background(), cfg.Store)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer handle.Close()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Store:  handle.Store,
		Pinger: handle.Pinger,
	})

	log.Printf("CipherStudio API listening on :%s (store=%s)", cfg.Server.Port, cfg.Store.Driver)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

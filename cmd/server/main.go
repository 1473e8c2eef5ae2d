package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/nkorobkov/one-click-routine/internal/clock"
	"github.com/nkorobkov/one-click-routine/internal/config"
	"github.com/nkorobkov/one-click-routine/internal/server"
	"github.com/nkorobkov/one-click-routine/internal/storage"
	"github.com/nkorobkov/one-click-routine/internal/task"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("routine_config.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	kv, err := storage.Open(cfg.Storage, cfg.DataDir)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer kv.Close()

	clk := clock.Real{}
	store := task.NewStore(task.StoreOptions{
		Clock:      clk,
		KV:         kv,
		Logger:     log.Default(),
		UndoWindow: time.Duration(cfg.UndoWindowSeconds) * time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go store.Watch(ctx, time.Duration(cfg.DayCheckIntervalSeconds)*time.Second)

	handler, err := server.NewHandler(server.Options{
		Config:        cfg,
		Store:         store,
		KV:            kv,
		Clock:         clk,
		Logger:        log.Default(),
		UseDiskStatic: useDiskStaticByEnv(),
		StaticDir:     "static",
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("listening on http://localhost%s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}

func useDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ROUTINE_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

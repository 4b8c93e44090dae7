package main

import (
	"log"

	"github.com/KevinDaniel18/cowork-central/internal/app"
	"github.com/KevinDaniel18/cowork-central/internal/config"
	"github.com/joho/godotenv"
)

// задаётся через -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env необязателен, переменные окружения важнее
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg, version)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

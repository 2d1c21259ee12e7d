package main

import (
	"log"

	"github.com/agenda23/restaurant-media-api/internal/config"
	"github.com/agenda23/restaurant-media-api/internal/infrastructure/postgres"
	"github.com/agenda23/restaurant-media-api/internal/server"
)

func main() {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	app := server.New(cfg, db)
	if err := app.Run(); err != nil {
		log.Fatalf("サーバー起動に失敗: %v", err)
	}
}

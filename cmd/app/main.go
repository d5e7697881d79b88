package main

import (
	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/app"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/config"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	if err := app.Run(cfg, log); err != nil {
		log.Error("Application failed: %v", err)
		panic(err)
	}
}

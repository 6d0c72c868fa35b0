package main

import (
	"log"

	"github.com/DhavalSuthar-24/gully/config"
	_ "github.com/DhavalSuthar-24/gully/docs"
	"github.com/DhavalSuthar-24/gully/internal/match"
	"github.com/DhavalSuthar-24/gully/internal/player"
	"github.com/DhavalSuthar-24/gully/internal/user"
	"github.com/DhavalSuthar-24/gully/routes"
)

// @title Gully Cricket REST API
// @version 1.0
// @description Match lifecycle and ball-by-ball scoring server 🏏.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &user.Role{}, &user.RefreshToken{},
		&player.Player{},
		&match.Match{}, &match.MatchPlayer{}, &match.BallEvent{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(cfg)

	// Use port from loaded configuration
	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

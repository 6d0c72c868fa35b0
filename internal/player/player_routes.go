package player

import (
	mw "github.com/DhavalSuthar-24/gully/internal/middleware"
	"github.com/DhavalSuthar-24/gully/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlayerRoutes sets up all player-pool routes.
func PlayerRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	playerRepo := NewGormPlayerRepository(db)
	playerController := NewPlayerController(playerRepo)

	players := router.Group("/players")
	players.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		players.GET("", playerController.GetPlayers)
		players.GET("/:id", playerController.GetPlayerByID)
		players.GET("/rankings", playerController.GetRankings)
	}

	// Roster management is an admin concern.
	adminPlayers := router.Group("/players")
	adminPlayers.Use(mw.AuthMiddleware(jwtSecret, db))
	adminPlayers.Use(rmiddleware.AdminMiddleware())
	{
		adminPlayers.POST("", playerController.CreatePlayer)
		adminPlayers.PATCH("/:id/eligibility", playerController.UpdateEligibility)
	}
}

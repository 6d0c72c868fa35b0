package match

import (
	mw "github.com/DhavalSuthar-24/gully/internal/middleware"
	"github.com/DhavalSuthar-24/gully/internal/player"
	"github.com/DhavalSuthar-24/gully/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MatchRoutes sets up all match-related routes.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	matchRepo := NewGormMatchRepository(db)
	playerRepo := player.NewGormPlayerRepository(db)
	matchController := NewMatchController(matchRepo, playerRepo)

	// Authenticated read routes
	authRoutes := router.Group("/matches")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("", matchController.GetMatches)
		authRoutes.GET("/:id", matchController.GetMatchByID)
		authRoutes.GET("/:id/scoreboard", matchController.GetScoreboard)
	}

	// Scorer routes: lifecycle and ball-by-ball entry
	scorerRoutes := router.Group("/matches")
	scorerRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	scorerRoutes.Use(rmiddleware.ScorerOrAdminMiddleware())
	{
		scorerRoutes.POST("", matchController.CreateMatch)
		scorerRoutes.PUT("/:id", matchController.UpdateMatch)
		scorerRoutes.POST("/:id/toss", matchController.SetToss)
		scorerRoutes.POST("/:id/start", matchController.StartMatch)
		scorerRoutes.POST("/:id/complete", matchController.CompleteMatch)
		scorerRoutes.POST("/:id/balls", matchController.AddBall)
	}

	// Admin match routes
	adminRoutes := router.Group("/matches")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.DELETE("/:id", matchController.DeleteMatch)
	}
}

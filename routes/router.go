package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhavalSuthar-24/gully/config"
	"github.com/DhavalSuthar-24/gully/internal/auth"
	"github.com/DhavalSuthar-24/gully/internal/match"
	"github.com/DhavalSuthar-24/gully/internal/player"
)

func SetupRoutes(appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Gully</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Welcome to Gully Cricket 🏏</h1>
					<p><a href="/swagger/index.html">API docs</a></p>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, config.DB, appConfig)
	player.PlayerRoutes(api, config.DB, appConfig.JWT.AccessTokenSecret)
	match.MatchRoutes(api, config.DB, appConfig.JWT.AccessTokenSecret)

	return r
}

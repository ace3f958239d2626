package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumitdkd/me-api-playground/pkg/logger"
)

type RouterDeps struct {
	ProfileHandler *ProfileHandler
	ProjectHandler *ProjectHandler
	SearchHandler  *SearchHandler
	HealthHandler  *HealthHandler
	Logger         logger.Logger
	// WebDir, when set, is served as the static single-page client.
	WebDir string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(deps.Logger))

	api := router.Group("/api")
	{
		api.GET("/health", deps.HealthHandler.Health)
		api.GET("/profile", deps.ProfileHandler.GetProfile)
		api.POST("/profile", deps.ProfileHandler.CreateProfile)
		api.PUT("/profile", deps.ProfileHandler.UpdateProfile)
		api.GET("/projects", deps.ProjectHandler.ListProjects)
		api.GET("/search", deps.SearchHandler.Search)
	}

	if deps.WebDir != "" {
		router.Static("/app", deps.WebDir)
		router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "/app/")
		})
	}

	return router
}

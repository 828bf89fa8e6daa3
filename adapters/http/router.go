package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio/pkg/logger"
)

type Handlers struct {
	Experience *ExperienceHandler
	Education  *EducationHandler
	Contact    *ContactHandler
	Site       *SiteHandler
}

func NewRouter(h Handlers, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))

	router.GET("/manifest.webmanifest", h.Site.GetManifest)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.GET("/education", h.Education.GetEducation)
		api.GET("/skills", h.Site.ListSkills)

		experiences := api.Group("/experiences")
		{
			experiences.GET("", h.Experience.ListExperiences)
			experiences.GET("/:slug", h.Experience.GetExperience)
		}

		api.POST("/send", h.Contact.Send)
	}

	return router
}

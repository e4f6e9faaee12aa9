package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/crewdeck-dev/crewdeck/internal/guard"
	"github.com/crewdeck-dev/crewdeck/internal/handlers"
	"github.com/crewdeck-dev/crewdeck/internal/middleware"
	"github.com/crewdeck-dev/crewdeck/internal/types"
)

func NewRouter(g guard.Guard, members *handlers.MemberHandler, projects *handlers.ProjectHandler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With", types.RoleClaimHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", handlers.Recommendations)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		requireAdmin := middleware.RequireAdmin(g)

		memberRoutes := api.Group("/members", requireAdmin)
		{
			memberRoutes.GET("", members.List)
			memberRoutes.POST("", members.Create)
			memberRoutes.GET("/:id", members.Get)
			memberRoutes.PUT("/:id", members.Update)
			memberRoutes.DELETE("/:id", members.Delete)
			memberRoutes.POST("/:id/avatar", members.UploadAvatar)
		}

		projectRoutes := api.Group("/projects", requireAdmin)
		{
			projectRoutes.GET("", projects.List)
			projectRoutes.POST("", projects.Create)
			projectRoutes.GET("/:id", projects.Get)
			projectRoutes.PUT("/:id", projects.Update)
			projectRoutes.DELETE("/:id", projects.Delete)
		}
	}

	return r
}

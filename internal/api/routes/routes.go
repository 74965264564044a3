package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/careerpath/backend/internal/api/handlers"
	"github.com/careerpath/backend/internal/api/middleware"
)

type Deps struct {
	Career *handlers.CareerHandler
	Admin  *handlers.AdminHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	api.GET("/health", d.Career.Health)

	api.POST("/recommend", d.Career.Recommend)
	api.POST("/skill-gap", d.Career.SkillGap)
	api.GET("/careers", d.Career.ListCareers)
	api.GET("/career/:career_id", d.Career.GetCareer)

	// Model administration (JWT + admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.RequireRole("admin"))

	admin.POST("/model/refit", d.Admin.Refit)
	admin.POST("/model/snapshot", d.Admin.Snapshot)
	admin.POST("/model/restore", d.Admin.Restore)
	admin.GET("/history", d.Admin.History)
}

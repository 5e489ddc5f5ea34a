package routes

import (
	"thesis-defense-backend/app/service"
	"thesis-defense-backend/middleware"

	"github.com/gin-gonic/gin"
)

// NotificationRoutes mendaftarkan endpoint linimasa notifikasi.
// GET /api/v1/notifikasi?page=1&pageSize=10
func NotificationRoutes(r *gin.Engine, s service.NotificationService) {
	g := r.Group("/api/v1/notifikasi")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/", s.HandleTimeline)
	}
}

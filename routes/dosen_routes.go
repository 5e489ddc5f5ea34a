package routes

import (
	"thesis-defense-backend/app/service"
	"thesis-defense-backend/middleware"

	"github.com/gin-gonic/gin"
)

// DosenRoutes mendaftarkan endpoint data dosen:
// GET /api/v1/dosen
// GET /api/v1/dosen/:id/bimbingan
func DosenRoutes(r *gin.Engine, s service.DosenService) {
	g := r.Group("/api/v1/dosen")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/", s.GetDosen)
		g.GET("/:id/bimbingan", s.GetBimbingan)
	}
}

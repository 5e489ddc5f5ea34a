package routes

import (
	"thesis-defense-backend/app/service"
	"thesis-defense-backend/middleware"

	"github.com/gin-gonic/gin"
)

// AgendaRoutes mendaftarkan endpoint agenda sidang terjadwal.
// GET /api/v1/agenda
func AgendaRoutes(r *gin.Engine, s service.AgendaService) {
	g := r.Group("/api/v1/agenda")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/", s.HandleAgenda)
	}
}

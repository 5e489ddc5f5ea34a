package routes

import (
	"thesis-defense-backend/app/service"
	"thesis-defense-backend/middleware"

	"github.com/gin-gonic/gin"
)

// StatistikRoutes mendaftarkan endpoint agregasi beban dan ringkasan.
func StatistikRoutes(r *gin.Engine, s service.StatistikService) {

	g := r.Group("/api/v1/statistik")
	g.Use(middleware.AuthMiddleware())

	{
		// Beban kerja dosen (bimbingan + pengujian), khusus admin
		// GET /api/v1/statistik/beban-dosen
		g.GET("/beban-dosen", s.HandleBebanDosen)

		// Ringkasan jumlah ujian per status
		// Admin     → semua ujian
		// Dosen     → ujian yang melibatkan dirinya
		// Mahasiswa → ujiannya sendiri
		// GET /api/v1/statistik/ringkasan
		g.GET("/ringkasan", s.HandleRingkasan)
	}
}

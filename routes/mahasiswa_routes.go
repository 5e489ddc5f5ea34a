package routes

import (
	"thesis-defense-backend/app/service"
	"thesis-defense-backend/middleware"

	"github.com/gin-gonic/gin"
)

// MahasiswaRoutes mendaftarkan endpoint profil mahasiswa:
// GET /api/v1/mahasiswa
// GET /api/v1/mahasiswa/saya
// PUT /api/v1/mahasiswa/saya
// PUT /api/v1/mahasiswa/:id/pembimbing
func MahasiswaRoutes(r *gin.Engine, s service.MahasiswaService) {
	g := r.Group("/api/v1/mahasiswa")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/", s.GetMahasiswa)
		g.GET("/saya", s.GetProfilSaya)
		g.PUT("/saya", s.UpdateProfilSaya)
		g.PUT("/:id/pembimbing", s.SetPembimbing)
	}
}

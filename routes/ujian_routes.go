package routes

import (
	"thesis-defense-backend/app/service"
	"thesis-defense-backend/middleware"

	"github.com/gin-gonic/gin"
)

// UjianRoutes mendaftarkan endpoint siklus hidup pengajuan sidang.
// Semua endpoint di sini wajib melalui AuthMiddleware (hanya user terautentikasi).
func UjianRoutes(r *gin.Engine, s service.UjianService) {
	g := r.Group("/api/v1/ujian")
	g.Use(middleware.AuthMiddleware())
	{
		// Mahasiswa mengajukan sidang baru (status awal MENUNGGU_VERIFIKASI)
		g.POST("/", s.HandleAjukan)

		// Daftar ujian sesuai jangkauan role yang login
		g.GET("/", s.HandleDaftar)

		// Detail satu ujian (404 jika di luar jangkauan role)
		g.GET("/:id", s.HandleDetail)

		// Admin memverifikasi pengajuan (MENUNGGU_VERIFIKASI -> DITERIMA)
		g.POST("/:id/verifikasi", s.HandleVerifikasi)

		// Admin menolak pengajuan (MENUNGGU_VERIFIKASI -> DITOLAK)
		g.POST("/:id/tolak", s.HandleTolak)

		// Admin menetapkan dosen penguji (hanya saat DITERIMA)
		g.PUT("/:id/penguji", s.HandleTetapkanPenguji)

		// Admin menjadwalkan sidang (DITERIMA -> DIJADWALKAN, cek bentrok)
		g.POST("/:id/jadwal", s.HandleJadwalkan)
	}
}

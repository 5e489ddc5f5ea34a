package main

import (
	"log"
	"os"

	"thesis-defense-backend/app/repository"
	"thesis-defense-backend/app/service"
	"thesis-defense-backend/database"
	"thesis-defense-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// =================================================================
	// LOAD ENV
	// =================================================================
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env tidak ditemukan, menggunakan environment default")
	}

	// =================================================================
	// INIT DB (POSTGRES + MONGODB)
	// =================================================================
	dbConn, err := database.InitDB()
	if err != nil {
		log.Fatalf("❌ Gagal koneksi database: %v", err)
	}

	// =================================================================
	// SEED DATA (USERS + PROFIL)
	// =================================================================
	database.RunSeeders(dbConn.Postgres)

	// =================================================================
	// REPOSITORIES
	// =================================================================
	userRepo := repository.NewUserRepository(dbConn.Postgres)
	adminRepo := repository.NewUserAdminRepository(dbConn.Postgres)
	mahasiswaRepo := repository.NewMahasiswaRepository(dbConn.Postgres)
	dosenRepo := repository.NewDosenRepository(dbConn.Postgres)
	ujianRepo := repository.NewUjianRepository(dbConn.Postgres, dbConn.Mongo)
	eventRepo := repository.NewEventRepository(dbConn.Mongo)

	// =================================================================
	// SERVICES
	// =================================================================
	authService := service.NewAuthService(userRepo, mahasiswaRepo, dosenRepo)
	adminService := service.NewAdminService(adminRepo)
	mahasiswaService := service.NewMahasiswaService(mahasiswaRepo, dosenRepo)
	dosenService := service.NewDosenService(dosenRepo)
	ujianService := service.NewUjianService(ujianRepo, mahasiswaRepo, dosenRepo)
	statistikService := service.NewStatistikService(ujianRepo, dosenRepo)
	notificationService := service.NewNotificationService(eventRepo)
	agendaService := service.NewAgendaService(ujianRepo, service.NewKalenderChecker(userRepo))

	// =================================================================
	// ROUTER
	// =================================================================
	r := gin.Default()

	// Auth
	authHandler := routes.NewAuthHandler(authService)
	authHandler.SetupAuthRoutes(r)

	// Admin user management
	routes.AdminRoutes(r, adminService)

	// Profil mahasiswa & data dosen
	routes.MahasiswaRoutes(r, mahasiswaService)
	routes.DosenRoutes(r, dosenService)

	// Siklus hidup pengajuan sidang
	routes.UjianRoutes(r, ujianService)

	// Statistik beban dosen & ringkasan status
	routes.StatistikRoutes(r, statistikService)

	// Linimasa notifikasi & agenda sidang
	routes.NotificationRoutes(r, notificationService)
	routes.AgendaRoutes(r, agendaService)

	// Root endpoint (optional)
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Thesis Defense Scheduling API RUNNING",
			"version": "1.0.0",
		})
	})

	// =================================================================
	// START SERVER
	// =================================================================
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running at http://localhost:" + port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Gagal menjalankan server: %v", err)
	}
}

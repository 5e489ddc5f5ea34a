package routes

import (
	"net/http"

	"thesis-defense-backend/app/model"
	"thesis-defense-backend/app/service"
	"thesis-defense-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler adalah struct pengelola request untuk fitur Autentikasi.
// Struct ini menyimpan dependency ke AuthService.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler adalah constructor untuk membuat instance handler baru.
// Dipanggil di main.go nanti untuk menyambungkan Service ke Handler ini.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SetupAuthRoutes mengatur Peta URL (Routing).
// Di sini kita tentukan endpoint mana lari ke fungsi mana.
func (h *AuthHandler) SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/api/v1/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

// Register menangani pendaftaran user baru.
func (h *AuthHandler) Register(ctx *gin.Context) {
	// DTO sementara untuk menampung JSON dari Frontend/Postman.
	var input struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"` // Minimal 6 karakter
		FullName string `json:"fullName" binding:"required"`
		Role     string `json:"role" binding:"required"` // ADMIN / DOSEN / MAHASISWA
	}

	// Gin otomatis mengecek apakah JSON sesuai dengan aturan 'binding' di atas.
	if err := ctx.ShouldBindJSON(&input); err != nil {
		resp := utils.BuildResponseFailed("Input tidak valid", err.Error(), nil)
		ctx.JSON(http.StatusBadRequest, resp)
		return
	}

	role, err := model.ParseRole(input.Role)
	if err != nil {
		resp := utils.BuildResponseFailed("Role tidak dikenal", err.Error(), nil)
		ctx.JSON(http.StatusBadRequest, resp)
		return
	}

	newUser := model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: input.Password, // Password masih mentah, nanti di-hash di Service
		FullName:     input.FullName,
		Role:         role,
		IsActive:     true,
	}

	if err := h.authService.Register(&newUser); err != nil {
		resp := utils.BuildResponseFailed("Gagal registrasi", err.Error(), nil)
		ctx.JSON(http.StatusInternalServerError, resp)
		return
	}

	resp := utils.BuildResponseSuccess("Registrasi berhasil", nil)
	ctx.JSON(http.StatusCreated, resp)
}

// Login menangani proses masuk user.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		resp := utils.BuildResponseFailed("Input login tidak valid", err.Error(), nil)
		ctx.JSON(http.StatusBadRequest, resp)
		return
	}

	// Service mengecek apakah email ada dan password hash-nya cocok,
	// lalu mencari id profil mahasiswa/dosen untuk klaim token.
	hasil, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		resp := utils.BuildResponseFailed("Login gagal", err.Error(), nil)
		ctx.JSON(http.StatusUnauthorized, resp)
		return
	}

	// Generate Token JWT (Karcis Masuk).
	token, err := utils.GenerateToken(hasil.User.ID, hasil.MahasiswaID, hasil.DosenID, string(hasil.User.Role))
	if err != nil {
		resp := utils.BuildResponseFailed("Gagal membuat token", err.Error(), nil)
		ctx.JSON(http.StatusInternalServerError, resp)
		return
	}

	// Kirim Token + Info User dasar.
	data := map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":       hasil.User.ID,
			"username": hasil.User.Username,
			"fullName": hasil.User.FullName,
			"role":     hasil.User.Role,
		},
	}

	resp := utils.BuildResponseSuccess("Login berhasil", data)
	ctx.JSON(http.StatusOK, resp)
}

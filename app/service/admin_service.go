package service

import (
	"net/http"
	"time"

	"thesis-defense-backend/app/model"
	"thesis-defense-backend/app/repository"
	"thesis-defense-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminService menangani manajemen akun oleh admin.
type AdminService interface {
	CreateUser(ctx *gin.Context)
	UpdateUser(ctx *gin.Context)
	DeleteUser(ctx *gin.Context)
	GetAllUsers(ctx *gin.Context)
	GetUserDetail(ctx *gin.Context)
	UpdateUserRole(ctx *gin.Context)
}

type adminService struct {
	repo repository.UserAdminRepository
}

func NewAdminService(repo repository.UserAdminRepository) AdminService {
	return &adminService{repo}
}

// helper: cek admin dari context
func ensureAdmin(ctx *gin.Context) bool {
	actor, ok := aktorDariContext(ctx)
	if !ok || actor.Role != model.RoleAdmin {
		ctx.JSON(http.StatusForbidden,
			utils.BuildResponseFailed("Hanya admin yang dapat mengakses fitur ini", "forbidden", nil))
		return false
	}
	return true
}

// POST /api/v1/admin/users: admin membuat akun baru beserta profilnya.
func (s *adminService) CreateUser(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	var input struct {
		Username         string `json:"username" binding:"required"`
		Email            string `json:"email" binding:"required,email"`
		Password         string `json:"password" binding:"required,min=6"`
		FullName         string `json:"fullName" binding:"required"`
		Role             string `json:"role" binding:"required"`
		MahasiswaProfile *struct {
			NIM        string `json:"nim"`
			Prodi      string `json:"prodi"`
			Departemen string `json:"departemen"`
			Telepon    string `json:"telepon"`
			Email      string `json:"email"`
		} `json:"mahasiswaProfile"`
		DosenProfile *struct {
			NIDN       string `json:"nidn"`
			Departemen string `json:"departemen"`
		} `json:"dosenProfile"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	role, err := model.ParseRole(input.Role)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Role tidak dikenal", err.Error(), nil))
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(input.Password), 10)

	user := model.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.CreateUser(&user); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal membuat user", err.Error(), nil))
		return
	}

	// Jika role mahasiswa → buat profil mahasiswa
	if role == model.RoleMahasiswa && input.MahasiswaProfile != nil {
		mp := model.Mahasiswa{
			ID:         uuid.New(),
			UserID:     user.ID,
			NIM:        input.MahasiswaProfile.NIM,
			Prodi:      input.MahasiswaProfile.Prodi,
			Departemen: input.MahasiswaProfile.Departemen,
			Telepon:    input.MahasiswaProfile.Telepon,
			Email:      input.MahasiswaProfile.Email,
		}
		_ = s.repo.CreateMahasiswaProfile(&mp)
	}

	// Jika role dosen → buat profil dosen
	if role == model.RoleDosen && input.DosenProfile != nil {
		dp := model.Dosen{
			ID:         uuid.New(),
			UserID:     user.ID,
			NIDN:       input.DosenProfile.NIDN,
			Departemen: input.DosenProfile.Departemen,
		}
		_ = s.repo.CreateDosenProfile(&dp)
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("User berhasil dibuat", user))
}

// PUT /api/v1/admin/users/:id
func (s *adminService) UpdateUser(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	uid, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID user tidak valid", err.Error(), nil))
		return
	}

	user, err := s.repo.FindUserByID(uid)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("User tidak ditemukan", err.Error(), nil))
		return
	}

	var input struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Email != "" {
		user.Email = input.Email
	}

	if err := s.repo.UpdateUser(user); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengubah user", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("User berhasil diubah", user))
}

// DELETE /api/v1/admin/users/:id, soft delete (nonaktifkan akun).
func (s *adminService) DeleteUser(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	uid, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID user tidak valid", err.Error(), nil))
		return
	}

	if err := s.repo.SoftDeleteUser(uid); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menonaktifkan user", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("User berhasil dinonaktifkan", nil))
}

// GET /api/v1/admin/users
func (s *adminService) GetAllUsers(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	users, err := s.repo.FindAllUsers()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil daftar user", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil daftar user", users))
}

// GET /api/v1/admin/users/:id
func (s *adminService) GetUserDetail(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	uid, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID user tidak valid", err.Error(), nil))
		return
	}

	user, err := s.repo.FindUserByID(uid)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("User tidak ditemukan", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil detail user", user))
}

// PUT /api/v1/admin/users/:id/role
func (s *adminService) UpdateUserRole(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	uid, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID user tidak valid", err.Error(), nil))
		return
	}

	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	role, err := model.ParseRole(input.Role)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Role tidak dikenal", err.Error(), nil))
		return
	}

	if err := s.repo.UpdateUserRole(uid, role); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengubah role user", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Role user berhasil diubah", nil))
}

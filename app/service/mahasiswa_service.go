package service

import (
	"net/http"

	"thesis-defense-backend/app/model"
	"thesis-defense-backend/app/repository"
	"thesis-defense-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MahasiswaService meng-handle endpoint profil mahasiswa:
// - GET  /api/v1/mahasiswa            (admin)
// - GET  /api/v1/mahasiswa/saya       (mahasiswa melihat profil sendiri)
// - PUT  /api/v1/mahasiswa/saya       (mahasiswa melengkapi profil)
// - PUT  /api/v1/mahasiswa/:id/pembimbing (admin menetapkan pembimbing)
type MahasiswaService interface {
	GetMahasiswa(ctx *gin.Context)
	GetProfilSaya(ctx *gin.Context)
	UpdateProfilSaya(ctx *gin.Context)
	SetPembimbing(ctx *gin.Context)
}

type mahasiswaService struct {
	mahasiswaRepo repository.MahasiswaRepository
	dosenRepo     repository.DosenRepository
}

// NewMahasiswaService membuat instance MahasiswaService baru.
func NewMahasiswaService(
	mahasiswaRepo repository.MahasiswaRepository,
	dosenRepo repository.DosenRepository,
) MahasiswaService {
	return &mahasiswaService{
		mahasiswaRepo: mahasiswaRepo,
		dosenRepo:     dosenRepo,
	}
}

// GET /api/v1/mahasiswa: admin melihat daftar semua mahasiswa.
func (s *mahasiswaService) GetMahasiswa(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	list, err := s.mahasiswaRepo.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil daftar mahasiswa", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil daftar mahasiswa", list))
}

// GET /api/v1/mahasiswa/saya: mahasiswa melihat profilnya sendiri,
// termasuk status kelengkapan yang menjadi prasyarat pengajuan sidang.
func (s *mahasiswaService) GetProfilSaya(ctx *gin.Context) {

	actor, ok := aktorDariContext(ctx)
	if !ok || actor.Role != model.RoleMahasiswa {
		ctx.JSON(http.StatusForbidden,
			utils.BuildResponseFailed("Hanya mahasiswa yang punya profil ini", "forbidden", nil))
		return
	}

	m, err := s.mahasiswaRepo.FindByUserID(actor.UserID)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Profil mahasiswa tidak ditemukan", err.Error(), nil))
		return
	}

	data := map[string]interface{}{
		"profil":        m,
		"profilLengkap": m.ProfilLengkap(),
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil profil", data))
}

// PUT /api/v1/mahasiswa/saya: mahasiswa melengkapi/mengubah profilnya.
func (s *mahasiswaService) UpdateProfilSaya(ctx *gin.Context) {

	actor, ok := aktorDariContext(ctx)
	if !ok || actor.Role != model.RoleMahasiswa {
		ctx.JSON(http.StatusForbidden,
			utils.BuildResponseFailed("Hanya mahasiswa yang dapat mengubah profil ini", "forbidden", nil))
		return
	}

	m, err := s.mahasiswaRepo.FindByUserID(actor.UserID)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Profil mahasiswa tidak ditemukan", err.Error(), nil))
		return
	}

	var input struct {
		NIM        string `json:"nim"`
		Prodi      string `json:"prodi"`
		Departemen string `json:"departemen"`
		Telepon    string `json:"telepon"`
		Email      string `json:"email"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	if input.NIM != "" {
		m.NIM = input.NIM
	}
	if input.Prodi != "" {
		m.Prodi = input.Prodi
	}
	if input.Departemen != "" {
		m.Departemen = input.Departemen
	}
	if input.Telepon != "" {
		m.Telepon = input.Telepon
	}
	if input.Email != "" {
		m.Email = input.Email
	}

	if err := s.mahasiswaRepo.UpdateProfil(m); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengubah profil", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Profil berhasil diubah", m))
}

// PUT /api/v1/mahasiswa/:id/pembimbing: admin menetapkan dosen pembimbing.
func (s *mahasiswaService) SetPembimbing(ctx *gin.Context) {

	if !ensureAdmin(ctx) {
		return
	}

	mahasiswaID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID mahasiswa tidak valid", err.Error(), nil))
		return
	}

	var input struct {
		DosenID string `json:"dosenId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	dosenID, err := uuid.Parse(input.DosenID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID dosen tidak valid", err.Error(), nil))
		return
	}

	// pastikan dosen ada sebelum ditetapkan
	if _, err := s.dosenRepo.FindByID(dosenID); err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Dosen tidak ditemukan", err.Error(), nil))
		return
	}

	if err := s.mahasiswaRepo.UpdatePembimbing(mahasiswaID, dosenID); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menetapkan pembimbing", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Pembimbing berhasil ditetapkan", nil))
}

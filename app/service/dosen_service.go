package service

import (
	"net/http"

	"thesis-defense-backend/app/model"
	"thesis-defense-backend/app/repository"
	"thesis-defense-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DosenService meng-handle endpoint data dosen:
// - GET /api/v1/dosen                  (admin dan mahasiswa, untuk memilih pembimbing/penguji)
// - GET /api/v1/dosen/:id/bimbingan    (admin atau dosen ybs)
type DosenService interface {
	GetDosen(ctx *gin.Context)
	GetBimbingan(ctx *gin.Context)
}

type dosenService struct {
	dosenRepo repository.DosenRepository
}

// NewDosenService membuat instance DosenService baru.
func NewDosenService(dosenRepo repository.DosenRepository) DosenService {
	return &dosenService{dosenRepo: dosenRepo}
}

// GET /api/v1/dosen: daftar dosen. Mahasiswa hanya melihat data ringkas.
func (s *dosenService) GetDosen(ctx *gin.Context) {

	actor, ok := aktorDariContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Sesi tidak valid", "unauthorized", nil))
		return
	}

	list, err := s.dosenRepo.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil daftar dosen", err.Error(), nil))
		return
	}

	if actor.Role == model.RoleAdmin {
		ctx.JSON(http.StatusOK,
			utils.BuildResponseSuccess("Berhasil mengambil daftar dosen", list))
		return
	}

	ringkas := make([]model.DosenRingkas, 0, len(list))
	for _, d := range list {
		ringkas = append(ringkas, model.DosenRingkas{
			ID:   d.ID,
			Nama: d.User.FullName,
			NIDN: d.NIDN,
		})
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil daftar dosen", ringkas))
}

// GET /api/v1/dosen/:id/bimbingan: daftar mahasiswa bimbingan seorang dosen.
func (s *dosenService) GetBimbingan(ctx *gin.Context) {

	actor, ok := aktorDariContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Sesi tidak valid", "unauthorized", nil))
		return
	}

	dosenID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID dosen tidak valid", err.Error(), nil))
		return
	}

	// dosen hanya boleh melihat bimbingannya sendiri
	if actor.Role != model.RoleAdmin &&
		!(actor.Role == model.RoleDosen && actor.DosenID == dosenID) {
		ctx.JSON(http.StatusForbidden,
			utils.BuildResponseFailed("Tidak berwenang melihat data ini", "forbidden", nil))
		return
	}

	bimbingan, err := s.dosenRepo.FindBimbingan(dosenID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil daftar bimbingan", err.Error(), nil))
		return
	}

	if actor.Role == model.RoleAdmin {
		ctx.JSON(http.StatusOK,
			utils.BuildResponseSuccess("Berhasil mengambil daftar bimbingan", bimbingan))
		return
	}

	// kontak mahasiswa (telepon/email) hanya untuk admin; aturan redaksi
	// yang sama dengan Ujian.SanitizeUntuk berlaku di path baca ini juga
	ringkas := make([]model.MahasiswaRingkas, 0, len(bimbingan))
	for _, m := range bimbingan {
		ringkas = append(ringkas, model.MahasiswaRingkas{
			ID:    m.ID,
			Nama:  m.User.FullName,
			NIM:   m.NIM,
			Prodi: m.Prodi,
		})
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil daftar bimbingan", ringkas))
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"thesis-defense-backend/app/model"
	"thesis-defense-backend/app/repository"
	"thesis-defense-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AjukanUjianInput adalah payload pengajuan sidang oleh mahasiswa.
type AjukanUjianInput struct {
	Judul     string `json:"judul" binding:"required"`
	BerkasURL string `json:"berkasUrl" binding:"required"`
}

// JadwalPayload adalah payload transisi DITERIMA → DIJADWALKAN.
type JadwalPayload struct {
	TanggalUjian time.Time `json:"tanggalUjian" validate:"required"`
	Ruangan      string    `json:"ruangan" validate:"required"`
}

// UjianService adalah mesin siklus hidup pengajuan sidang: pembuatan
// (dengan prasyarat profil lengkap), transisi status yang di-gate per role,
// penetapan penguji, dan pembacaan yang sudah melewati filter visibilitas.
type UjianService interface {
	// Ajukan membuat pengajuan baru milik actor (harus MAHASISWA dengan
	// profil lengkap). Status awal selalu MENUNGGU_VERIFIKASI.
	Ajukan(ctx context.Context, actor model.Actor, input AjukanUjianInput) (*model.Ujian, error)

	// Transisi memindahkan status ujian. Hanya ADMIN; pasangan status harus
	// terdaftar; target DIJADWALKAN membutuhkan jadwal dan lolos cek bentrok.
	Transisi(ctx context.Context, actor model.Actor, ujianID uuid.UUID, target model.StatusUjian, jadwal *JadwalPayload) (*model.Ujian, error)

	// TetapkanPenguji mengganti daftar penguji (ADMIN, status DITERIMA).
	TetapkanPenguji(ctx context.Context, actor model.Actor, ujianID uuid.UUID, dosenIDs []uuid.UUID) error

	// DaftarUjian mengembalikan seluruh ujian yang boleh dilihat actor,
	// sudah di-redact field kontaknya.
	DaftarUjian(ctx context.Context, actor model.Actor) ([]model.UjianResponse, error)

	// DetailUjian mengembalikan satu ujian; ujian di luar scope actor
	// diperlakukan sebagai tidak ditemukan.
	DetailUjian(ctx context.Context, actor model.Actor, ujianID uuid.UUID) (*model.UjianResponse, error)

	// Gin handlers.
	HandleAjukan(ctx *gin.Context)
	HandleDaftar(ctx *gin.Context)
	HandleDetail(ctx *gin.Context)
	HandleVerifikasi(ctx *gin.Context)
	HandleTolak(ctx *gin.Context)
	HandleJadwalkan(ctx *gin.Context)
	HandleTetapkanPenguji(ctx *gin.Context)
}

type ujianService struct {
	ujianRepo     repository.UjianRepository
	mahasiswaRepo repository.MahasiswaRepository
	dosenRepo     repository.DosenRepository
	now           func() time.Time
}

// NewUjianService membuat instance UjianService.
func NewUjianService(
	ujianRepo repository.UjianRepository,
	mahasiswaRepo repository.MahasiswaRepository,
	dosenRepo repository.DosenRepository,
) UjianService {
	return &ujianService{
		ujianRepo:     ujianRepo,
		mahasiswaRepo: mahasiswaRepo,
		dosenRepo:     dosenRepo,
		now:           time.Now,
	}
}

// buatEvent membentuk dokumen riwayat untuk satu aksi perubahan status.
// Timestamp diambil dari jam service supaya bisa dibekukan di test.
func (s *ujianService) buatEvent(u *model.Ujian, actor model.Actor, lama *model.StatusUjian, baru model.StatusUjian) *model.UjianEvent {
	pengujiIDs := make([]string, 0, len(u.DosenPenguji))
	for _, p := range u.DosenPenguji {
		pengujiIDs = append(pengujiIDs, p.ID.String())
	}

	var statusLama *string
	if lama != nil {
		s := string(*lama)
		statusLama = &s
	}

	return &model.UjianEvent{
		Judul:             u.Judul,
		UjianID:           u.ID.String(),
		MahasiswaID:       u.MahasiswaID.String(),
		DosenPembimbingID: u.DosenPembimbingID.String(),
		DosenPengujiIDs:   pengujiIDs,
		StatusLama:        statusLama,
		StatusBaru:        string(baru),
		DiubahOleh:        actor.UserID.String(),
		RolePengubah:      string(actor.Role),
		CreatedAt:         s.now(),
	}
}

// Ajukan membuat pengajuan sidang baru.
// Prasyarat: actor MAHASISWA dan seluruh field profil terisi, dicek SEBELUM
// logika transisi apa pun berjalan; gagal di sini berarti tidak ada baris
// yang tertulis.
func (s *ujianService) Ajukan(ctx context.Context, actor model.Actor, input AjukanUjianInput) (*model.Ujian, error) {
	if actor.Role != model.RoleMahasiswa {
		return nil, fmt.Errorf("%w: hanya mahasiswa yang dapat mengajukan sidang", model.ErrTidakBerwenang)
	}

	m, err := s.mahasiswaRepo.FindByUserID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profil mahasiswa belum dibuat", model.ErrProfilBelumLengkap)
		}
		return nil, fmt.Errorf("%w: %v", model.ErrStoreTidakTersedia, err)
	}
	if !m.ProfilLengkap() {
		return nil, model.ErrProfilBelumLengkap
	}

	ujian := &model.Ujian{
		ID:                uuid.New(),
		Judul:             input.Judul,
		BerkasURL:         input.BerkasURL,
		MahasiswaID:       m.ID,
		DosenPembimbingID: *m.DosenPembimbingID,
		Status:            model.StatusMenungguVerifikasi,
	}

	event := s.buatEvent(ujian, actor, nil, model.StatusMenungguVerifikasi)
	if err := s.ujianRepo.Create(ctx, ujian, event); err != nil {
		return nil, err
	}
	return ujian, nil
}

// Transisi memvalidasi dan menjalankan satu transisi status.
// Urutan pengecekan: role → keberadaan ujian → pasangan status → payload.
// Kegagalan di titik mana pun tidak mengubah status tersimpan.
func (s *ujianService) Transisi(ctx context.Context, actor model.Actor, ujianID uuid.UUID, target model.StatusUjian, jadwal *JadwalPayload) (*model.Ujian, error) {
	if actor.Role != model.RoleAdmin {
		return nil, fmt.Errorf("%w: hanya admin yang dapat mengubah status ujian", model.ErrTidakBerwenang)
	}

	u, err := s.ujianRepo.FindByID(ctx, ujianID)
	if err != nil {
		return nil, err
	}

	if !model.TransisiDiizinkan(u.Status, target) {
		return nil, fmt.Errorf("%w: %s → %s", model.ErrTransisiTidakValid, u.Status, target)
	}

	dari := u.Status
	event := s.buatEvent(u, actor, &dari, target)

	if target == model.StatusDijadwalkan {
		if jadwal == nil {
			return nil, fmt.Errorf("%w: penjadwalan membutuhkan tanggal dan ruangan", model.ErrTransisiTidakValid)
		}
		if err := utils.ValidateStruct(jadwal); err != nil {
			return nil, fmt.Errorf("%w: %s", model.ErrTransisiTidakValid, utils.FormatValidationErrors(err))
		}
		if !jadwal.TanggalUjian.After(s.now()) {
			return nil, fmt.Errorf("%w: tanggal ujian harus di masa depan", model.ErrTransisiTidakValid)
		}
		event.TanggalUjian = &jadwal.TanggalUjian
		event.Ruangan = jadwal.Ruangan

		if err := s.ujianRepo.Jadwalkan(ctx, ujianID, jadwal.TanggalUjian, jadwal.Ruangan, event); err != nil {
			return nil, err
		}
	} else {
		if err := s.ujianRepo.UpdateStatus(ctx, ujianID, dari, target, event); err != nil {
			return nil, err
		}
	}

	return s.ujianRepo.FindByID(ctx, ujianID)
}

// TetapkanPenguji mengganti daftar dosen penguji sebuah ujian.
func (s *ujianService) TetapkanPenguji(ctx context.Context, actor model.Actor, ujianID uuid.UUID, dosenIDs []uuid.UUID) error {
	if actor.Role != model.RoleAdmin {
		return fmt.Errorf("%w: hanya admin yang dapat menetapkan penguji", model.ErrTidakBerwenang)
	}

	penguji, err := s.dosenRepo.FindByIDs(dosenIDs)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreTidakTersedia, err)
	}
	if len(penguji) != len(dosenIDs) {
		return fmt.Errorf("%w: sebagian id dosen penguji tidak dikenal", model.ErrTidakDitemukan)
	}

	return s.ujianRepo.SetPenguji(ctx, ujianID, penguji)
}

func (s *ujianService) DaftarUjian(ctx context.Context, actor model.Actor) ([]model.UjianResponse, error) {
	list, err := s.ujianRepo.FindUntukAktor(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := s.now()
	resp := make([]model.UjianResponse, 0, len(list))
	for i := range list {
		resp = append(resp, list[i].SanitizeUntuk(actor, now))
	}
	return resp, nil
}

func (s *ujianService) DetailUjian(ctx context.Context, actor model.Actor, ujianID uuid.UUID) (*model.UjianResponse, error) {
	u, err := s.ujianRepo.FindByID(ctx, ujianID)
	if err != nil {
		return nil, err
	}
	// ujian di luar scope tidak dibedakan dari ujian yang tidak ada
	if !u.VisibleTo(actor) {
		return nil, model.ErrTidakDitemukan
	}
	resp := u.SanitizeUntuk(actor, s.now())
	return &resp, nil
}

// ==================================================================
// GIN HANDLERS
// ==================================================================

// POST /api/v1/ujian
func (s *ujianService) HandleAjukan(ctx *gin.Context) {
	actor, ok := aktorDariContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Autentikasi tidak valid", "no_actor", nil))
		return
	}

	var input AjukanUjianInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	ujian, err := s.Ajukan(ctx.Request.Context(), actor, input)
	if err != nil {
		ctx.JSON(utils.ErrorStatusCode(err),
			utils.BuildResponseFailed("Gagal mengajukan sidang", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Pengajuan sidang berhasil dibuat", ujian.SanitizeUntuk(actor, s.now())))
}

// GET /api/v1/ujian
func (s *ujianService) HandleDaftar(ctx *gin.Context) {
	actor, ok := aktorDariContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Autentikasi tidak valid", "no_actor", nil))
		return
	}

	list, err := s.DaftarUjian(ctx.Request.Context(), actor)
	if err != nil {
		ctx.JSON(utils.ErrorStatusCode(err),
			utils.BuildResponseFailed("Gagal mengambil daftar ujian", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil daftar ujian", list))
}

// GET /api/v1/ujian/:id
func (s *ujianService) HandleDetail(ctx *gin.Context) {
	actor, ok := aktorDariContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Autentikasi tidak valid", "no_actor", nil))
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID ujian tidak valid", err.Error(), nil))
		return
	}

	detail, err := s.DetailUjian(ctx.Request.Context(), actor, id)
	if err != nil {
		ctx.JSON(utils.ErrorStatusCode(err),
			utils.BuildResponseFailed("Gagal mengambil detail ujian", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil detail ujian", detail))
}

// handleTransisiSederhana menangani verifikasi & penolakan (tanpa payload).
func (s *ujianService) handleTransisiSederhana(ctx *gin.Context, target model.StatusUjian, pesanSukses string) {
	actor, ok := aktorDariContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Autentikasi tidak valid", "no_actor", nil))
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID ujian tidak valid", err.Error(), nil))
		return
	}

	ujian, err := s.Transisi(ctx.Request.Context(), actor, id, target, nil)
	if err != nil {
		ctx.JSON(utils.ErrorStatusCode(err),
			utils.BuildResponseFailed("Gagal mengubah status ujian", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess(pesanSukses, ujian.SanitizeUntuk(actor, s.now())))
}

// POST /api/v1/ujian/:id/verifikasi  (MENUNGGU_VERIFIKASI → DITERIMA)
func (s *ujianService) HandleVerifikasi(ctx *gin.Context) {
	s.handleTransisiSederhana(ctx, model.StatusDiterima, "Pengajuan sidang diterima")
}

// POST /api/v1/ujian/:id/tolak  (MENUNGGU_VERIFIKASI → DITOLAK)
func (s *ujianService) HandleTolak(ctx *gin.Context) {
	s.handleTransisiSederhana(ctx, model.StatusDitolak, "Pengajuan sidang ditolak")
}

// POST /api/v1/ujian/:id/jadwal  (DITERIMA → DIJADWALKAN)
func (s *ujianService) HandleJadwalkan(ctx *gin.Context) {
	actor, ok := aktorDariContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Autentikasi tidak valid", "no_actor", nil))
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID ujian tidak valid", err.Error(), nil))
		return
	}

	var jadwal JadwalPayload
	if err := ctx.ShouldBindJSON(&jadwal); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input jadwal tidak valid", err.Error(), nil))
		return
	}

	ujian, err := s.Transisi(ctx.Request.Context(), actor, id, model.StatusDijadwalkan, &jadwal)
	if err != nil {
		ctx.JSON(utils.ErrorStatusCode(err),
			utils.BuildResponseFailed("Gagal menjadwalkan ujian", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Ujian berhasil dijadwalkan", ujian.SanitizeUntuk(actor, s.now())))
}

// PUT /api/v1/ujian/:id/penguji
func (s *ujianService) HandleTetapkanPenguji(ctx *gin.Context) {
	actor, ok := aktorDariContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Autentikasi tidak valid", "no_actor", nil))
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID ujian tidak valid", err.Error(), nil))
		return
	}

	var input struct {
		DosenIDs []string `json:"dosenIds" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	ids := make([]uuid.UUID, 0, len(input.DosenIDs))
	for _, raw := range input.DosenIDs {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("ID dosen tidak valid", err.Error(), nil))
			return
		}
		ids = append(ids, parsed)
	}

	if err := s.TetapkanPenguji(ctx.Request.Context(), actor, id, ids); err != nil {
		ctx.JSON(utils.ErrorStatusCode(err),
			utils.BuildResponseFailed("Gagal menetapkan penguji", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Penguji berhasil ditetapkan", nil))
}

package service

import (
	"context"
	"net/http"
	"time"

	"thesis-defense-backend/app/model"
	"thesis-defense-backend/app/repository"
	"thesis-defense-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CalendarAccessChecker adalah sinyal akses kalender eksternal yang
// dikonsumsi Agenda Projector: apakah akun kalender actor terhubung dan
// apakah perlu re-autentikasi. Core tidak mengimplementasikan protokol
// penyedia kalender, hanya membaca sinyal ini.
type CalendarAccessChecker interface {
	StatusAkses(ctx context.Context, userID uuid.UUID) (terhubung bool, perluReauth bool, err error)
}

// AgendaItem adalah satu entri agenda sidang yang visible untuk actor.
type AgendaItem struct {
	UjianID       uuid.UUID `json:"ujianId"`
	Judul         string    `json:"judul"`
	NamaMahasiswa string    `json:"namaMahasiswa"`
	Tanggal       time.Time `json:"tanggal"`
	Ruangan       string    `json:"ruangan"`

	// KalenderSinkron true hanya bila sinyal akses kalender actor sehat;
	// saat sinyal gagal/basi, agenda tetap dikembalikan dari store tanpa
	// enrichment kalender.
	KalenderSinkron bool `json:"kalenderSinkron"`
}

// AgendaService memproyeksikan ujian DIJADWALKAN menjadi agenda per role.
type AgendaService interface {
	Agenda(ctx context.Context, actor model.Actor) ([]AgendaItem, error)
	HandleAgenda(ctx *gin.Context)
}

type agendaService struct {
	ujianRepo repository.UjianRepository
	kalender  CalendarAccessChecker
}

// NewAgendaService membuat instance baru agendaService.
func NewAgendaService(ujianRepo repository.UjianRepository, kalender CalendarAccessChecker) AgendaService {
	return &agendaService{ujianRepo: ujianRepo, kalender: kalender}
}

// Agenda mengembalikan agenda sidang yang visible untuk actor,
// terbatas pada ujian DIJADWALKAN. Baris tanpa jadwal tidak pernah
// muncul sebagai entri cacat, dilewati.
func (s *agendaService) Agenda(ctx context.Context, actor model.Actor) ([]AgendaItem, error) {
	list, err := s.ujianRepo.FindDijadwalkanUntukAktor(ctx, actor)
	if err != nil {
		return nil, err
	}

	sinkron := false
	if s.kalender != nil {
		terhubung, perluReauth, err := s.kalender.StatusAkses(ctx, actor.UserID)
		// sinyal gagal atau basi → lanjut tanpa enrichment kalender
		sinkron = err == nil && terhubung && !perluReauth
	}

	items := make([]AgendaItem, 0, len(list))
	for i := range list {
		u := &list[i]
		if u.TanggalUjian == nil {
			continue
		}
		items = append(items, AgendaItem{
			UjianID:         u.ID,
			Judul:           u.Judul,
			NamaMahasiswa:   u.Mahasiswa.User.FullName,
			Tanggal:         *u.TanggalUjian,
			Ruangan:         u.Ruangan,
			KalenderSinkron: sinkron,
		})
	}
	return items, nil
}

// GET /api/v1/agenda
func (s *agendaService) HandleAgenda(ctx *gin.Context) {
	actor, ok := aktorDariContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Autentikasi tidak valid", "no_actor", nil))
		return
	}

	items, err := s.Agenda(ctx.Request.Context(), actor)
	if err != nil {
		ctx.JSON(utils.ErrorStatusCode(err),
			utils.BuildResponseFailed("Gagal mengambil agenda", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil agenda", items))
}

// kalenderViaUserRepo membaca sinyal akses kalender dari kolom user di store.
type kalenderViaUserRepo struct {
	users repository.UserRepository
}

// NewKalenderChecker membungkus UserRepository sebagai CalendarAccessChecker.
func NewKalenderChecker(users repository.UserRepository) CalendarAccessChecker {
	return &kalenderViaUserRepo{users: users}
}

func (k *kalenderViaUserRepo) StatusAkses(_ context.Context, userID uuid.UUID) (bool, bool, error) {
	return k.users.StatusKalender(userID)
}

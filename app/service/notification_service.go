package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"thesis-defense-backend/app/model"
	"thesis-defense-backend/app/repository"
	"thesis-defense-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// TimelineItem adalah satu entri notifikasi yang sudah dinarasikan
// sesuai sudut pandang pembacanya.
type TimelineItem struct {
	UjianID    string            `json:"ujianId"`
	Judul      string            `json:"judul"`
	Pesan      string            `json:"pesan"`
	StatusBaru model.StatusUjian `json:"statusBaru"`
	Waktu      time.Time         `json:"waktu"`
}

// TimelineResult adalah satu halaman timeline beserta info paginasinya.
type TimelineResult struct {
	Events   []TimelineItem `json:"events"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Total    int64          `json:"total"`
	HasMore  bool           `json:"hasMore"`
}

// NotificationService memproyeksikan riwayat perubahan status menjadi
// timeline kronologis per role (terbaru lebih dulu).
type NotificationService interface {
	// Timeline mengambil 1 halaman event yang visible untuk actor.
	// page 1-indexed; himpunan visible kosong menghasilkan daftar kosong
	// dengan hasMore=false, bukan error.
	Timeline(ctx context.Context, actor model.Actor, page, pageSize int) (*TimelineResult, error)

	HandleTimeline(ctx *gin.Context)
}

type notificationService struct {
	eventRepo repository.EventRepository
}

// NewNotificationService membuat instance baru notificationService.
func NewNotificationService(eventRepo repository.EventRepository) NotificationService {
	return &notificationService{eventRepo: eventRepo}
}

// narasiUntuk membentuk kalimat notifikasi dari sudut pandang actor:
// mahasiswa membaca riwayat pengajuannya sendiri, dosen membaca riwayat
// mahasiswa bimbingan/pengujiannya, admin membaca butir yang bisa ditindak.
func narasiUntuk(actor model.Actor, ev model.UjianEvent) string {
	status := model.StatusUjian(ev.StatusBaru)

	switch actor.Role {
	case model.RoleMahasiswa:
		if ev.StatusLama == nil {
			return fmt.Sprintf("Pengajuan sidang saya %q berhasil diajukan dan menunggu verifikasi.", ev.Judul)
		}
		return fmt.Sprintf("Status pengajuan sidang saya %q berubah menjadi %s.", ev.Judul, status)

	case model.RoleDosen:
		peran := "bimbingan"
		if ev.DosenPembimbingID != actor.DosenID.String() {
			peran = "pengujian"
		}
		if ev.StatusLama == nil {
			return fmt.Sprintf("Mahasiswa %s saya mengajukan sidang %q.", peran, ev.Judul)
		}
		return fmt.Sprintf("Sidang %q mahasiswa %s saya kini berstatus %s.", ev.Judul, peran, status)

	case model.RoleAdmin:
		switch status {
		case model.StatusMenungguVerifikasi:
			return fmt.Sprintf("Pengajuan sidang %q menunggu verifikasi.", ev.Judul)
		case model.StatusDiterima:
			return fmt.Sprintf("Pengajuan sidang %q telah diterima dan siap dijadwalkan.", ev.Judul)
		case model.StatusDijadwalkan:
			return fmt.Sprintf("Sidang %q telah dijadwalkan.", ev.Judul)
		case model.StatusDitolak:
			return fmt.Sprintf("Pengajuan sidang %q ditolak.", ev.Judul)
		}
	}

	return fmt.Sprintf("Sidang %q kini berstatus %s.", ev.Judul, status)
}

func (s *notificationService) Timeline(ctx context.Context, actor model.Actor, page, pageSize int) (*TimelineResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	events, total, err := s.eventRepo.FindUntukAktor(ctx, actor, page, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]TimelineItem, 0, len(events))
	for _, ev := range events {
		items = append(items, TimelineItem{
			UjianID:    ev.UjianID,
			Judul:      ev.Judul,
			Pesan:      narasiUntuk(actor, ev),
			StatusBaru: model.StatusUjian(ev.StatusBaru),
			Waktu:      ev.CreatedAt,
		})
	}

	return &TimelineResult{
		Events:   items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		HasMore:  int64(page*pageSize) < total,
	}, nil
}

// GET /api/v1/notifikasi?page=&pageSize=
func (s *notificationService) HandleTimeline(ctx *gin.Context) {
	actor, ok := aktorDariContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Autentikasi tidak valid", "no_actor", nil))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))

	hasil, err := s.Timeline(ctx.Request.Context(), actor, page, pageSize)
	if err != nil {
		ctx.JSON(utils.ErrorStatusCode(err),
			utils.BuildResponseFailed("Gagal mengambil timeline notifikasi", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil timeline notifikasi", hasil))
}

package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"thesis-defense-backend/app/model"
	"thesis-defense-backend/app/repository"
	"thesis-defense-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

// BebanDosen adalah agregat beban kerja satu dosen.
type BebanDosen struct {
	DosenID         uuid.UUID `json:"dosenId"`
	Nama            string    `json:"nama"`
	JumlahBimbingan int       `json:"jumlahBimbingan"`
	JumlahPengujian int       `json:"jumlahPengujian"`
	Total           int       `json:"total"`
}

// RingkasanBebanDosen adalah hasil lengkap perhitungan beban kerja.
type RingkasanBebanDosen struct {
	PerDosen      []BebanDosen `json:"perDosen"`
	PalingBanyak  *BebanDosen  `json:"palingBanyak"`
	PalingSedikit *BebanDosen  `json:"palingSedikit"`
	RataRata      float64      `json:"rataRata"`
}

// RingkasanStatus adalah ringkasan dashboard per role: jumlah ujian visible
// per status efektif.
type RingkasanStatus struct {
	Total     int                       `json:"total"`
	PerStatus map[model.StatusUjian]int `json:"perStatus"`
}

// HitungBebanDosen menghitung beban kerja per dosen dari daftar ujian.
//   - JumlahBimbingan: ujian di mana dosen adalah pembimbing
//   - JumlahPengujian: ujian di mana dosen anggota penguji
//   - RataRata: mean seluruh total, dibulatkan half-up 2 desimal
//
// PalingBanyak/PalingSedikit deterministik: saat seri, dosen yang lebih dulu
// muncul di input yang menang.
func HitungBebanDosen(dosen []model.Dosen, ujianList []model.Ujian) RingkasanBebanDosen {
	hasil := RingkasanBebanDosen{PerDosen: make([]BebanDosen, 0, len(dosen))}

	bimbingan := make(map[uuid.UUID]int)
	pengujian := make(map[uuid.UUID]int)
	for i := range ujianList {
		bimbingan[ujianList[i].DosenPembimbingID]++
		for _, p := range ujianList[i].DosenPenguji {
			pengujian[p.ID]++
		}
	}

	totals := make([]float64, 0, len(dosen))
	for i := range dosen {
		d := dosen[i]
		beban := BebanDosen{
			DosenID:         d.ID,
			Nama:            d.User.FullName,
			JumlahBimbingan: bimbingan[d.ID],
			JumlahPengujian: pengujian[d.ID],
		}
		beban.Total = beban.JumlahBimbingan + beban.JumlahPengujian
		hasil.PerDosen = append(hasil.PerDosen, beban)
		totals = append(totals, float64(beban.Total))
	}

	for i := range hasil.PerDosen {
		b := &hasil.PerDosen[i]
		if hasil.PalingBanyak == nil || b.Total > hasil.PalingBanyak.Total {
			hasil.PalingBanyak = b
		}
		if hasil.PalingSedikit == nil || b.Total < hasil.PalingSedikit.Total {
			hasil.PalingSedikit = b
		}
	}

	if len(totals) > 0 {
		mean, err := stats.Mean(totals)
		if err == nil {
			if dibulatkan, err := stats.Round(mean, 2); err == nil {
				hasil.RataRata = dibulatkan
			}
		}
	}

	return hasil
}

// StatistikService menyajikan statistik beban dosen (khusus admin)
// dan ringkasan dashboard per role.
type StatistikService interface {
	// BebanKerjaDosen menghitung beban seluruh dosen. Pemanggil non-admin
	// mendapat ErrTidakBerwenang, bukan hasil kosong.
	BebanKerjaDosen(ctx context.Context, actor model.Actor) (*RingkasanBebanDosen, error)

	// Ringkasan menghitung jumlah ujian visible per status efektif.
	Ringkasan(ctx context.Context, actor model.Actor) (*RingkasanStatus, error)

	HandleBebanDosen(ctx *gin.Context)
	HandleRingkasan(ctx *gin.Context)
}

type statistikService struct {
	ujianRepo repository.UjianRepository
	dosenRepo repository.DosenRepository
	now       func() time.Time
}

// NewStatistikService membuat instance baru statistikService.
func NewStatistikService(ujianRepo repository.UjianRepository, dosenRepo repository.DosenRepository) StatistikService {
	return &statistikService{
		ujianRepo: ujianRepo,
		dosenRepo: dosenRepo,
		now:       time.Now,
	}
}

func (s *statistikService) BebanKerjaDosen(ctx context.Context, actor model.Actor) (*RingkasanBebanDosen, error) {
	if actor.Role != model.RoleAdmin {
		return nil, fmt.Errorf("%w: statistik beban dosen hanya untuk admin", model.ErrTidakBerwenang)
	}

	dosen, err := s.dosenRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreTidakTersedia, err)
	}

	ujianList, err := s.ujianRepo.FindUntukAktor(ctx, actor)
	if err != nil {
		return nil, err
	}

	hasil := HitungBebanDosen(dosen, ujianList)
	return &hasil, nil
}

func (s *statistikService) Ringkasan(ctx context.Context, actor model.Actor) (*RingkasanStatus, error) {
	ujianList, err := s.ujianRepo.FindUntukAktor(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := s.now()
	ringkasan := &RingkasanStatus{PerStatus: make(map[model.StatusUjian]int)}
	for i := range ujianList {
		ringkasan.PerStatus[ujianList[i].StatusEfektif(now)]++
		ringkasan.Total++
	}
	return ringkasan, nil
}

// GET /api/v1/statistik/beban-dosen
func (s *statistikService) HandleBebanDosen(ctx *gin.Context) {
	actor, ok := aktorDariContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Autentikasi tidak valid", "no_actor", nil))
		return
	}

	hasil, err := s.BebanKerjaDosen(ctx.Request.Context(), actor)
	if err != nil {
		ctx.JSON(utils.ErrorStatusCode(err),
			utils.BuildResponseFailed("Gagal menghitung beban dosen", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil menghitung beban dosen", hasil))
}

// GET /api/v1/statistik/ringkasan
func (s *statistikService) HandleRingkasan(ctx *gin.Context) {
	actor, ok := aktorDariContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Autentikasi tidak valid", "no_actor", nil))
		return
	}

	hasil, err := s.Ringkasan(ctx.Request.Context(), actor)
	if err != nil {
		ctx.JSON(utils.ErrorStatusCode(err),
			utils.BuildResponseFailed("Gagal mengambil ringkasan", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Berhasil mengambil ringkasan", hasil))
}

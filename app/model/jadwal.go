package model

import (
	"time"

	"github.com/google/uuid"
)

// JadwalBentrok melaporkan apakah slot kandidat [tanggal, tanggal+DurasiUjian)
// bentrok dengan ujian lain yang sudah DIJADWALKAN.
//
// Dua sidang bentrok jika slotnya beririsan dan keduanya berbagi ruangan,
// mahasiswa, atau dosen. dosenIDs adalah gabungan pembimbing dan seluruh
// penguji kandidat; ia dibandingkan terhadap pembimbing maupun penguji ujian
// lain, sehingga pembimbing di satu sidang yang menjadi penguji di sidang
// lain tetap terhitung bentrok.
func JadwalBentrok(tanggal time.Time, ruangan string, mahasiswaID uuid.UUID, dosenIDs []uuid.UUID, lain *Ujian) bool {
	if lain.Status != StatusDijadwalkan || lain.TanggalUjian == nil {
		return false
	}

	selisih := lain.TanggalUjian.Sub(tanggal)
	if selisih <= -DurasiUjian || selisih >= DurasiUjian {
		return false
	}

	if lain.Ruangan == ruangan || lain.MahasiswaID == mahasiswaID {
		return true
	}

	for _, id := range dosenIDs {
		if id == lain.DosenPembimbingID {
			return true
		}
		for _, p := range lain.DosenPenguji {
			if p.ID == id {
				return true
			}
		}
	}
	return false
}

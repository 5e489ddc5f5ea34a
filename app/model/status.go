package model

import "time"

// StatusUjian adalah status siklus hidup satu pengajuan sidang.
type StatusUjian string

const (
	StatusMenungguVerifikasi StatusUjian = "MENUNGGU_VERIFIKASI"
	StatusDiterima           StatusUjian = "DITERIMA"
	StatusDijadwalkan        StatusUjian = "DIJADWALKAN"
	StatusDitolak            StatusUjian = "DITOLAK"

	// StatusSelesai adalah status turunan: ujian DIJADWALKAN yang tanggalnya
	// sudah lewat. Tidak pernah disimpan ke database; lihat Ujian.StatusEfektif.
	StatusSelesai StatusUjian = "SELESAI"
)

// DurasiUjian adalah lama satu slot sidang untuk pengecekan jadwal bentrok.
const DurasiUjian = 2 * time.Hour

// transisi yang diizinkan (semuanya hanya boleh dilakukan admin).
var transisiDiizinkan = map[StatusUjian][]StatusUjian{
	StatusMenungguVerifikasi: {StatusDiterima, StatusDitolak},
	StatusDiterima:           {StatusDijadwalkan},
}

// TransisiDiizinkan melaporkan apakah perpindahan dari → ke terdaftar
// sebagai transisi yang sah.
func TransisiDiizinkan(dari, ke StatusUjian) bool {
	for _, s := range transisiDiizinkan[dari] {
		if s == ke {
			return true
		}
	}
	return false
}

// StatusTersimpan melaporkan apakah s boleh ada di kolom status database.
func StatusTersimpan(s StatusUjian) bool {
	switch s {
	case StatusMenungguVerifikasi, StatusDiterima, StatusDijadwalkan, StatusDitolak:
		return true
	}
	return false
}

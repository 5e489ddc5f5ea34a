package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"thesis-defense-backend/app/model"

	"gorm.io/gorm"
)

func TestErrorStatusCode(t *testing.T) {
	cases := []struct {
		nama string
		err  error
		mau  int
	}{
		{"tidak berwenang", model.ErrTidakBerwenang, http.StatusForbidden},
		{"transisi tidak valid", model.ErrTransisiTidakValid, http.StatusUnprocessableEntity},
		{"jadwal bentrok", model.ErrJadwalBentrok, http.StatusConflict},
		{"profil belum lengkap", model.ErrProfilBelumLengkap, http.StatusUnprocessableEntity},
		{"tidak ditemukan", model.ErrTidakDitemukan, http.StatusNotFound},
		{"record not found gorm", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"store tidak tersedia", model.ErrStoreTidakTersedia, http.StatusServiceUnavailable},
		{"error asing", errors.New("sesuatu yang lain"), http.StatusInternalServerError},

		// sentinel yang dibungkus %w tetap terpetakan
		{"bentrok terbungkus", fmt.Errorf("%w: ruangan R-301 sudah terpakai", model.ErrJadwalBentrok), http.StatusConflict},
		{"tidak berwenang terbungkus", fmt.Errorf("%w: hanya admin", model.ErrTidakBerwenang), http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.nama, func(t *testing.T) {
			if got := ErrorStatusCode(c.err); got != c.mau {
				t.Errorf("ErrorStatusCode = %d, mau %d", got, c.mau)
			}
		})
	}
}

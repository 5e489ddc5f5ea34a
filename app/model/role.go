package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Role adalah tipe peran tunggal yang dipakai di seluruh sistem.
// Semua keputusan otorisasi & visibilitas wajib lewat tipe ini,
// tidak boleh ada perbandingan string role yang tersebar di handler.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleDosen     Role = "DOSEN"
	RoleMahasiswa Role = "MAHASISWA"
)

// ParseRole menormalkan string role (misal dari klaim JWT) menjadi Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleDosen:
		return RoleDosen, nil
	case RoleMahasiswa:
		return RoleMahasiswa, nil
	}
	return "", fmt.Errorf("role tidak dikenal: %q", s)
}

// Valid melaporkan apakah r adalah salah satu dari tiga role yang didefinisikan.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleDosen || r == RoleMahasiswa
}

// Actor merepresentasikan pengguna yang sedang login pada satu request.
// MahasiswaID / DosenID bernilai uuid.Nil jika user bukan pemilik profil tersebut.
type Actor struct {
	UserID      uuid.UUID
	MahasiswaID uuid.UUID
	DosenID     uuid.UUID
	Role        Role
}

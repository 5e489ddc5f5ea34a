package model

import (
	"time"

	"github.com/google/uuid"
)

// VisibleTo melaporkan apakah actor boleh melihat ujian ini.
// Aturan yang sama persis diekspresikan sebagai scope GORM
// (repository.UntukAktor) dan filter Mongo (repository.FilterEventUntukAktor);
// predicate murni ini menjadi acuan tunggal yang diuji terhadap keduanya.
func (u *Ujian) VisibleTo(actor Actor) bool {
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleMahasiswa:
		return actor.MahasiswaID != uuid.Nil && u.MahasiswaID == actor.MahasiswaID
	case RoleDosen:
		if actor.DosenID == uuid.Nil {
			return false
		}
		if u.DosenPembimbingID == actor.DosenID {
			return true
		}
		for _, p := range u.DosenPenguji {
			if p.ID == actor.DosenID {
				return true
			}
		}
	}
	return false
}

// MahasiswaRingkas adalah potongan data mahasiswa yang ikut dalam response
// ujian. Telepon & Email di-redact untuk pembaca non-admin yang bukan
// pemilik data (penguji boleh lihat nama/NIM, tidak boleh lihat kontak).
type MahasiswaRingkas struct {
	ID      uuid.UUID `json:"id"`
	Nama    string    `json:"nama"`
	NIM     string    `json:"nim"`
	Prodi   string    `json:"prodi"`
	Telepon string    `json:"telepon,omitempty"`
	Email   string    `json:"email,omitempty"`
}

// DosenRingkas adalah potongan data dosen untuk response ujian.
type DosenRingkas struct {
	ID   uuid.UUID `json:"id"`
	Nama string    `json:"nama"`
	NIDN string    `json:"nidn"`
}

// UjianResponse adalah bentuk ujian yang dikirim ke pemanggil setelah
// melewati filter visibilitas dan redaksi field.
type UjianResponse struct {
	ID            uuid.UUID        `json:"id"`
	Judul         string           `json:"judul"`
	BerkasURL     string           `json:"berkasUrl"`
	Status        StatusUjian      `json:"status"`
	StatusEfektif StatusUjian      `json:"statusEfektif"`
	Mahasiswa     MahasiswaRingkas `json:"mahasiswa"`
	Pembimbing    DosenRingkas     `json:"pembimbing"`
	Penguji       []DosenRingkas   `json:"penguji"`
	TanggalUjian  *time.Time       `json:"tanggalUjian"`
	Ruangan       string           `json:"ruangan,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// SanitizeUntuk membentuk UjianResponse untuk actor tertentu.
// Kontak mahasiswa (telepon/email) hanya disertakan untuk admin
// dan untuk mahasiswa pemilik pengajuan itu sendiri.
func (u *Ujian) SanitizeUntuk(actor Actor, now time.Time) UjianResponse {
	resp := UjianResponse{
		ID:            u.ID,
		Judul:         u.Judul,
		BerkasURL:     u.BerkasURL,
		Status:        u.Status,
		StatusEfektif: u.StatusEfektif(now),
		Mahasiswa: MahasiswaRingkas{
			ID:    u.Mahasiswa.ID,
			Nama:  u.Mahasiswa.User.FullName,
			NIM:   u.Mahasiswa.NIM,
			Prodi: u.Mahasiswa.Prodi,
		},
		Pembimbing: DosenRingkas{
			ID:   u.Pembimbing.ID,
			Nama: u.Pembimbing.User.FullName,
			NIDN: u.Pembimbing.NIDN,
		},
		TanggalUjian: u.TanggalUjian,
		Ruangan:      u.Ruangan,
		CreatedAt:    u.CreatedAt,
	}

	for _, p := range u.DosenPenguji {
		resp.Penguji = append(resp.Penguji, DosenRingkas{
			ID:   p.ID,
			Nama: p.User.FullName,
			NIDN: p.NIDN,
		})
	}

	if actor.Role == RoleAdmin || (actor.Role == RoleMahasiswa && actor.MahasiswaID == u.MahasiswaID) {
		resp.Mahasiswa.Telepon = u.Mahasiswa.Telepon
		resp.Mahasiswa.Email = u.Mahasiswa.Email
	}

	return resp
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// User merepresentasikan akun pengguna sistem (admin, dosen, mahasiswa).
// Role disimpan langsung sebagai kolom bertipe Role, bukan tabel terpisah,
// supaya satu tipe Role yang sama dipakai dari klaim JWT sampai query.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FullName     string    `gorm:"not null" json:"fullName"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`

	// Sinyal akses kalender eksternal (diisi oleh integrasi di luar core).
	KalenderTerhubung   bool `gorm:"default:false" json:"kalenderTerhubung"`
	KalenderPerluReauth bool `gorm:"default:false" json:"kalenderPerluReauth"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Mahasiswa menyimpan profil mahasiswa. Seluruh field profil (plus FullName di
// User terkait) wajib terisi sebelum mahasiswa boleh mengajukan sidang.
type Mahasiswa struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	User       User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	NIM        string    `gorm:"type:varchar(20);column:nim" json:"nim"`
	Prodi      string    `gorm:"type:varchar(100)" json:"prodi"`
	Departemen string    `gorm:"type:varchar(100)" json:"departemen"`
	Telepon    string    `gorm:"type:varchar(20)" json:"telepon"`
	Email      string    `gorm:"type:varchar(100)" json:"email"`

	DosenPembimbingID *uuid.UUID `gorm:"type:uuid" json:"dosenPembimbingId"`
	Pembimbing        *Dosen     `gorm:"foreignKey:DosenPembimbingID" json:"pembimbing,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ProfilLengkap melaporkan apakah seluruh field profil yang menjadi
// prasyarat pengajuan sidang sudah terisi. User harus sudah di-preload.
func (m *Mahasiswa) ProfilLengkap() bool {
	return m.User.FullName != "" &&
		m.NIM != "" &&
		m.Prodi != "" &&
		m.Departemen != "" &&
		m.Telepon != "" &&
		m.Email != "" &&
		m.DosenPembimbingID != nil && *m.DosenPembimbingID != uuid.Nil
}

// Dosen merepresentasikan dosen (pembimbing maupun penguji).
type Dosen struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	User       User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	NIDN       string    `gorm:"unique;not null;column:nidn" json:"nidn"`
	Departemen string    `json:"departemen"`

	Bimbingan []Mahasiswa `gorm:"foreignKey:DosenPembimbingID" json:"bimbingan,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Ujian merepresentasikan satu pengajuan sidang tugas akhir.
// Invariant: tepat satu mahasiswa pemilik dan satu pembimbing sejak dibuat;
// penguji ditetapkan belakangan oleh admin selama status masih DITERIMA.
type Ujian struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Judul     string    `gorm:"type:varchar(255);not null" json:"judul"`
	BerkasURL string    `gorm:"column:berkas_url" json:"berkasUrl"`

	MahasiswaID uuid.UUID `gorm:"type:uuid;not null" json:"mahasiswaId"`
	Mahasiswa   Mahasiswa `gorm:"foreignKey:MahasiswaID" json:"mahasiswa"`

	DosenPembimbingID uuid.UUID `gorm:"type:uuid;not null" json:"dosenPembimbingId"`
	Pembimbing        Dosen     `gorm:"foreignKey:DosenPembimbingID" json:"pembimbing"`

	DosenPenguji []Dosen `gorm:"many2many:ujian_penguji;" json:"dosenPenguji"`

	Status StatusUjian `gorm:"type:varchar(30);not null;check:status IN ('MENUNGGU_VERIFIKASI','DITERIMA','DIJADWALKAN','DITOLAK')" json:"status"`

	// TanggalUjian & Ruangan hanya terisi setelah status DIJADWALKAN.
	TanggalUjian *time.Time `gorm:"column:tanggal_ujian" json:"tanggalUjian"`
	Ruangan      string     `gorm:"type:varchar(50)" json:"ruangan"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// StatusEfektif mengembalikan status yang dilihat pengguna: ujian DIJADWALKAN
// yang slot-nya sudah lewat tampil sebagai SELESAI, tanpa pernah menyimpan
// SELESAI ke database (satu sumber kebenaran: kolom status + waktu sekarang).
func (u *Ujian) StatusEfektif(now time.Time) StatusUjian {
	if u.Status == StatusDijadwalkan && u.TanggalUjian != nil && u.TanggalUjian.Add(DurasiUjian).Before(now) {
		return StatusSelesai
	}
	return u.Status
}

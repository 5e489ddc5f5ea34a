package repository

import (
	"thesis-defense-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MahasiswaRepository menangani operasi basis data untuk profil mahasiswa.
// Profil ini menjadi prasyarat pengajuan sidang (lihat Mahasiswa.ProfilLengkap).
type MahasiswaRepository interface {
	FindAll() ([]model.Mahasiswa, error)
	FindByID(id uuid.UUID) (*model.Mahasiswa, error)

	// FindByUserID mencari profil mahasiswa milik user yang sedang login.
	FindByUserID(userID uuid.UUID) (*model.Mahasiswa, error)

	// UpdateProfil menyimpan perubahan field profil (NIM, prodi, kontak, dst).
	UpdateProfil(m *model.Mahasiswa) error

	// UpdatePembimbing mengganti dosen pembimbing mahasiswa.
	UpdatePembimbing(mahasiswaID, dosenID uuid.UUID) error
}

type mahasiswaRepository struct {
	db *gorm.DB
}

func NewMahasiswaRepository(db *gorm.DB) MahasiswaRepository {
	return &mahasiswaRepository{db}
}

// FindAll mengembalikan semua mahasiswa beserta akun dan pembimbingnya.
func (r *mahasiswaRepository) FindAll() ([]model.Mahasiswa, error) {
	var list []model.Mahasiswa
	err := r.db.
		Preload("User").
		Preload("Pembimbing.User").
		Find(&list).Error
	return list, err
}

// FindByID mengembalikan satu mahasiswa berdasarkan ID.
func (r *mahasiswaRepository) FindByID(id uuid.UUID) (*model.Mahasiswa, error) {
	var m model.Mahasiswa
	err := r.db.
		Preload("User").
		Preload("Pembimbing.User").
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByUserID mencari profil mahasiswa yang terhubung ke user tertentu.
// Dipakai untuk mengidentifikasi mahasiswa dari token saat mengajukan sidang.
func (r *mahasiswaRepository) FindByUserID(userID uuid.UUID) (*model.Mahasiswa, error) {
	var m model.Mahasiswa
	err := r.db.
		Preload("User").
		Preload("Pembimbing.User").
		Where("user_id = ?", userID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateProfil menyimpan perubahan profil mahasiswa.
func (r *mahasiswaRepository) UpdateProfil(m *model.Mahasiswa) error {
	return r.db.Save(m).Error
}

// UpdatePembimbing mengganti dosen pembimbing mahasiswa.
func (r *mahasiswaRepository) UpdatePembimbing(mahasiswaID, dosenID uuid.UUID) error {
	return r.db.Model(&model.Mahasiswa{}).
		Where("id = ?", mahasiswaID).
		Update("dosen_pembimbing_id", dosenID).Error
}

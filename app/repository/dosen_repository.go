package repository

import (
	"thesis-defense-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DosenRepository mendefinisikan operasi ke tabel dosen & relasi bimbingan.
type DosenRepository interface {
	FindAll() ([]model.Dosen, error)
	FindByID(id uuid.UUID) (*model.Dosen, error)

	// FindByUserID mencari dosen berdasarkan user yang login.
	FindByUserID(userID uuid.UUID) (*model.Dosen, error)

	// FindByIDs mengambil beberapa dosen sekaligus; dipakai admin saat
	// menetapkan penguji. Jumlah hasil < jumlah id berarti ada id yang salah.
	FindByIDs(ids []uuid.UUID) ([]model.Dosen, error)

	// FindBimbingan mengambil daftar mahasiswa bimbingan seorang dosen.
	FindBimbingan(dosenID uuid.UUID) ([]model.Mahasiswa, error)
}

type dosenRepository struct {
	db *gorm.DB
}

// NewDosenRepository membuat instance baru DosenRepository.
func NewDosenRepository(db *gorm.DB) DosenRepository {
	return &dosenRepository{db: db}
}

func (r *dosenRepository) FindAll() ([]model.Dosen, error) {
	var list []model.Dosen
	err := r.db.Preload("User").Find(&list).Error
	return list, err
}

func (r *dosenRepository) FindByID(id uuid.UUID) (*model.Dosen, error) {
	var d model.Dosen
	if err := r.db.Preload("User").First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// FindByUserID mencari data Dosen yang terkait dengan user_id tertentu.
// Dipakai untuk mengidentifikasi dosen dari token saat membaca daftar ujian.
func (r *dosenRepository) FindByUserID(userID uuid.UUID) (*model.Dosen, error) {
	var d model.Dosen
	if err := r.db.
		Preload("User").
		Where("user_id = ?", userID).
		First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *dosenRepository) FindByIDs(ids []uuid.UUID) ([]model.Dosen, error) {
	var list []model.Dosen
	err := r.db.Preload("User").Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *dosenRepository) FindBimbingan(dosenID uuid.UUID) ([]model.Mahasiswa, error) {
	var list []model.Mahasiswa
	err := r.db.
		Preload("User").
		Where("dosen_pembimbing_id = ?", dosenID).
		Find(&list).Error
	return list, err
}

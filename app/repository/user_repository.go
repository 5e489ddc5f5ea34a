package repository

import (
	"thesis-defense-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository mendefinisikan kontrak operasi database untuk entity User.
type UserRepository interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)

	// StatusKalender membaca sinyal akses kalender eksternal milik user:
	// terhubung + perlu re-autentikasi. Dipakai Agenda Projector untuk
	// memutuskan apakah enrichment kalender boleh ditampilkan.
	StatusKalender(id uuid.UUID) (terhubung bool, perluReauth bool, err error)
}

// userRepository adalah implementasi konkret UserRepository berbasis GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository membuat instance baru userRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

// Create menyimpan data user baru ke database.
func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// FindByEmail mencari user berdasarkan email (dipakai saat login dengan email).
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername mencari user berdasarkan username.
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID mengambil user berdasarkan ID (misalnya untuk endpoint profile).
func (r *userRepository) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// StatusKalender membaca flag akses kalender user tanpa memuat seluruh row.
func (r *userRepository) StatusKalender(id uuid.UUID) (bool, bool, error) {
	var user model.User
	err := r.db.
		Select("kalender_terhubung", "kalender_perlu_reauth").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return false, false, err
	}
	return user.KalenderTerhubung, user.KalenderPerluReauth, nil
}

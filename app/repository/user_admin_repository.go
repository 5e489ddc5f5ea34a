package repository

import (
	"time"

	"thesis-defense-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserAdminRepository: khusus untuk manajemen akun oleh admin.
type UserAdminRepository interface {
	CreateUser(user *model.User) error
	UpdateUser(user *model.User) error
	FindAllUsers() ([]model.User, error)
	FindUserByID(id uuid.UUID) (*model.User, error)
	SoftDeleteUser(id uuid.UUID) error
	UpdateUserRole(id uuid.UUID, role model.Role) error

	CreateMahasiswaProfile(m *model.Mahasiswa) error
	CreateDosenProfile(d *model.Dosen) error
}

type userAdminRepository struct {
	db *gorm.DB
}

func NewUserAdminRepository(db *gorm.DB) UserAdminRepository {
	return &userAdminRepository{db}
}

// CreateUser → admin membuat akun baru.
func (r *userAdminRepository) CreateUser(user *model.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

// UpdateUser → admin mengubah data akun.
func (r *userAdminRepository) UpdateUser(user *model.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

// FindAllUsers → list semua akun.
func (r *userAdminRepository) FindAllUsers() ([]model.User, error) {
	var users []model.User
	err := r.db.Find(&users).Error
	return users, err
}

// FindUserByID → ambil detail akun.
func (r *userAdminRepository) FindUserByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "id = ?", id).Error
	return &user, err
}

// SoftDeleteUser → nonaktifkan akun (IsActive = false).
func (r *userAdminRepository) SoftDeleteUser(id uuid.UUID) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// UpdateUserRole → ganti role akun.
func (r *userAdminRepository) UpdateUserRole(id uuid.UUID, role model.Role) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", id).
		Update("role", role).Error
}

// CreateMahasiswaProfile → buat profil mahasiswa (NIM, prodi, kontak, dst).
func (r *userAdminRepository) CreateMahasiswaProfile(m *model.Mahasiswa) error {
	return r.db.Create(m).Error
}

// CreateDosenProfile → buat profil dosen.
func (r *userAdminRepository) CreateDosenProfile(d *model.Dosen) error {
	return r.db.Create(d).Error
}

package service

import (
	"errors"

	"thesis-defense-backend/app/model"
	"thesis-defense-backend/app/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// HasilLogin membawa user beserta id profil yang dibutuhkan klaim JWT.
type HasilLogin struct {
	User        *model.User
	MahasiswaID uuid.UUID // uuid.Nil jika bukan mahasiswa
	DosenID     uuid.UUID // uuid.Nil jika bukan dosen
}

// AuthService mendefinisikan layanan autentikasi.
type AuthService interface {
	Register(user *model.User) error
	Login(email, password string) (*HasilLogin, error)
}

type authService struct {
	userRepo      repository.UserRepository
	mahasiswaRepo repository.MahasiswaRepository
	dosenRepo     repository.DosenRepository
}

// NewAuthService menghubungkan Service dengan Repository.
func NewAuthService(
	userRepo repository.UserRepository,
	mahasiswaRepo repository.MahasiswaRepository,
	dosenRepo repository.DosenRepository,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		mahasiswaRepo: mahasiswaRepo,
		dosenRepo:     dosenRepo,
	}
}

// Register mendaftarkan user baru (admin/dosen/mahasiswa).
// Password di-hash dengan bcrypt sebelum disimpan.
func (s *authService) Register(user *model.User) error {
	if !user.Role.Valid() {
		return errors.New("role tidak dikenal")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashedPassword)

	return s.userRepo.Create(user)
}

// Login memeriksa email + password dan mengembalikan user beserta
// id profil mahasiswa/dosen untuk dimasukkan ke klaim token.
func (s *authService) Login(email, password string) (*HasilLogin, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, errors.New("email tidak ditemukan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("password salah")
	}

	if !user.IsActive {
		return nil, errors.New("akun anda dinonaktifkan")
	}

	hasil := &HasilLogin{User: user}

	switch user.Role {
	case model.RoleMahasiswa:
		if m, err := s.mahasiswaRepo.FindByUserID(user.ID); err == nil {
			hasil.MahasiswaID = m.ID
		}
	case model.RoleDosen:
		if d, err := s.dosenRepo.FindByUserID(user.ID); err == nil {
			hasil.DosenID = d.ID
		}
	}

	return hasil, nil
}

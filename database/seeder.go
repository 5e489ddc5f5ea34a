package database

import (
	"log"
	"time"

	"thesis-defense-backend/app/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders menjalankan seluruh seeder yang dibutuhkan.
// Panggil ini sekali di main.go setelah InitDB berhasil.
func RunSeeders(db *gorm.DB) {
	SeedUsers(db)
	SeedDosenDanMahasiswa(db)
}

// ===============================
//  SEED USERS
// ===============================

// SeedUsers menambahkan 4 user awal:
// - admin
// - pembimbing (dosen)
// - penguji (dosen)
// - mahasiswa1
func SeedUsers(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] User sudah ada, skip seeding.")
		return
	}

	password := "123123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), 10)

	now := time.Now()

	users := []model.User{
		{
			ID:           uuid.New(),
			Username:     "admin",
			Email:        "admin@kampus.ac.id",
			PasswordHash: string(hash),
			FullName:     "Admin Jadwal Sidang",
			Role:         model.RoleAdmin,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			Username:     "pembimbing",
			Email:        "pembimbing@kampus.ac.id",
			PasswordHash: string(hash),
			FullName:     "Dr. Dosen Pembimbing",
			Role:         model.RoleDosen,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			Username:     "penguji",
			Email:        "penguji@kampus.ac.id",
			PasswordHash: string(hash),
			FullName:     "Dr. Dosen Penguji",
			Role:         model.RoleDosen,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			Username:     "mahasiswa1",
			Email:        "mahasiswa1@kampus.ac.id",
			PasswordHash: string(hash),
			FullName:     "Mahasiswa Satu",
			Role:         model.RoleMahasiswa,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed users: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed 4 user (admin, pembimbing, penguji, mahasiswa), password: 123123")
}

// ===============================
//  SEED DOSEN & MAHASISWA
// ===============================

// SeedDosenDanMahasiswa membuat profil dosen untuk user 'pembimbing' dan
// 'penguji', lalu profil mahasiswa lengkap (pembimbing sudah ditetapkan)
// untuk 'mahasiswa1', sehingga alur pengajuan sidang bisa langsung dicoba.
func SeedDosenDanMahasiswa(db *gorm.DB) {
	// Cek kalau sudah ada mahasiswa, skip
	var mhsCount int64
	db.Model(&model.Mahasiswa{}).Count(&mhsCount)
	if mhsCount > 0 {
		log.Println("[SEEDER] Mahasiswa sudah ada, skip seeding profil.")
		return
	}

	var pembimbingUser, pengujiUser, mhsUser model.User
	if err := db.Where("username = ?", "pembimbing").First(&pembimbingUser).Error; err != nil {
		log.Println("[SEEDER] User 'pembimbing' tidak ditemukan, skip seeding dosen.")
		return
	}
	if err := db.Where("username = ?", "penguji").First(&pengujiUser).Error; err != nil {
		log.Println("[SEEDER] User 'penguji' tidak ditemukan, skip seeding dosen.")
		return
	}
	if err := db.Where("username = ?", "mahasiswa1").First(&mhsUser).Error; err != nil {
		log.Println("[SEEDER] User 'mahasiswa1' tidak ditemukan, skip seeding mahasiswa.")
		return
	}

	now := time.Now()

	pembimbing := model.Dosen{
		ID:         uuid.New(),
		UserID:     pembimbingUser.ID,
		NIDN:       "0011223301",
		Departemen: "Teknik Informatika",
		CreatedAt:  now,
	}
	penguji := model.Dosen{
		ID:         uuid.New(),
		UserID:     pengujiUser.ID,
		NIDN:       "0011223302",
		Departemen: "Teknik Informatika",
		CreatedAt:  now,
	}
	if err := db.Create(&[]model.Dosen{pembimbing, penguji}).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal membuat dosen: %v", err)
	}

	// Profil mahasiswa lengkap: seluruh field prasyarat pengajuan terisi.
	mhs := model.Mahasiswa{
		ID:                uuid.New(),
		UserID:            mhsUser.ID,
		NIM:               "230001",
		Prodi:             "Teknik Informatika",
		Departemen:        "Teknik Informatika",
		Telepon:           "081234567890",
		Email:             "mahasiswa1@kampus.ac.id",
		DosenPembimbingID: &pembimbing.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := db.Create(&mhs).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal membuat mahasiswa: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed dosen & mahasiswa awal")
}

package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

/*
 JWTCustomClaims

 Token menyimpan identitas lengkap aktor:
 - UserID      (uuid)  : identitas akun
 - MahasiswaID (uuid)  : id profil mahasiswa (uuid.Nil jika bukan mahasiswa)
 - DosenID     (uuid)  : id profil dosen (uuid.Nil jika bukan dosen)
 - Role        (string): ADMIN / DOSEN / MAHASISWA
*/
type JWTCustomClaims struct {
	UserID      uuid.UUID `json:"userId"`
	MahasiswaID uuid.UUID `json:"mahasiswaId"`
	DosenID     uuid.UUID `json:"dosenId"`
	Role        string    `json:"role"`
	jwt.RegisteredClaims
}

// getJWTSecret membaca JWT_SECRET dari environment setiap kali dipanggil,
// supaya tidak bermasalah kalau .env baru di-load setelah package ter-import.
func getJWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not configured")
	}
	return []byte(secret), nil
}

// GenerateToken membuat JWT access token dengan masa berlaku 24 jam.
func GenerateToken(userID, mahasiswaID, dosenID uuid.UUID, role string) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := JWTCustomClaims{
		UserID:      userID,
		MahasiswaID: mahasiswaID,
		DosenID:     dosenID,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken mem-validasi JWT dan mengembalikan *JWTCustomClaims jika valid.
// Mengecek signing method HMAC, signature, dan expiration.
func ValidateToken(tokenString string) (*JWTCustomClaims, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&JWTCustomClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTCustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

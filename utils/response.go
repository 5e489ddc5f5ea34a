package utils

import (
	"errors"
	"net/http"

	"thesis-defense-backend/app/model"

	"gorm.io/gorm"
)

// APIResponse adalah format standar JSON yang diterima frontend.
// Contoh sukses : { "status": true,  "message": "Pengajuan berhasil", "data": { ... } }
// Contoh gagal  : { "status": false, "message": "Transisi tidak valid", "errors": "..." }
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// BuildResponseSuccess dipakai saat request berhasil (HTTP 200/201).
func BuildResponseSuccess(message string, data interface{}) APIResponse {
	return APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	}
}

// BuildResponseFailed dipakai saat terjadi error (HTTP 400, 401, 403, dst).
func BuildResponseFailed(message string, err interface{}, data interface{}) APIResponse {
	return APIResponse{
		Status:  false,
		Message: message,
		Errors:  err,
		Data:    data,
	}
}

// ErrorStatusCode memetakan taksonomi error core ke kode HTTP.
// Error yang tidak dikenal dianggap kegagalan internal.
func ErrorStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrTidakBerwenang):
		return http.StatusForbidden
	case errors.Is(err, model.ErrTransisiTidakValid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrJadwalBentrok):
		return http.StatusConflict
	case errors.Is(err, model.ErrProfilBelumLengkap):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrTidakDitemukan), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrStoreTidakTersedia):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

package model

import "errors"

// Taksonomi error inti. Service membungkus sentinel ini dengan fmt.Errorf("%w: ...")
// dan handler memetakannya ke kode HTTP lewat utils.ErrorStatusCode.
var (
	// ErrTidakBerwenang: role pemanggil tidak boleh melakukan aksi ini,
	// atau request tidak terautentikasi sama sekali.
	ErrTidakBerwenang = errors.New("anda tidak berwenang melakukan aksi ini")

	// ErrTransisiTidakValid: pasangan status asal/tujuan tidak terdaftar di §transisi.
	ErrTransisiTidakValid = errors.New("transisi status tidak valid")

	// ErrJadwalBentrok: ruangan, mahasiswa, pembimbing, atau penguji sudah
	// punya sidang lain pada rentang waktu yang sama.
	ErrJadwalBentrok = errors.New("jadwal ujian bentrok")

	// ErrProfilBelumLengkap: mahasiswa mencoba mengajukan sidang sebelum
	// seluruh field profil terisi.
	ErrProfilBelumLengkap = errors.New("profil mahasiswa belum lengkap")

	// ErrTidakDitemukan: id pengajuan tidak dikenal.
	ErrTidakDitemukan = errors.New("data tidak ditemukan")

	// ErrStoreTidakTersedia: gangguan sementara pada database. Satu-satunya
	// error yang layak di-retry oleh pemanggil; core tidak pernah retry sendiri.
	ErrStoreTidakTersedia = errors.New("penyimpanan sedang tidak tersedia")
)

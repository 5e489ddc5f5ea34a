package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UjianEvent merepresentasikan 1 dokumen riwayat perubahan status di MongoDB
// (collection: ujian_events). Satu dokumen per aksi yang mengubah status,
// termasuk saat pengajuan pertama kali dibuat (StatusLama kosong).
//
// Dokumen ini menyimpan id seluruh partisipan supaya filter visibilitas
// timeline bisa dievaluasi langsung di query Mongo, identik dengan scope
// SQL-nya (lihat repository.UntukAktor).
type UjianEvent struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Judul string             `bson:"judul"` // judul ujian saat event terjadi

	UjianID           string   `bson:"ujianId"`           // uuid string ujian di Postgres
	MahasiswaID       string   `bson:"mahasiswaId"`       // pemilik pengajuan
	DosenPembimbingID string   `bson:"dosenPembimbingId"` // pembimbing saat event
	DosenPengujiIDs   []string `bson:"dosenPengujiIds"`   // penguji saat event (bisa kosong)

	StatusLama *string `bson:"statusLama,omitempty"` // nil untuk event pembuatan
	StatusBaru string  `bson:"statusBaru"`

	DiubahOleh   string `bson:"diubahOleh"`   // uuid user pelaku
	RolePengubah string `bson:"rolePengubah"` // role pelaku saat itu

	// Terisi hanya pada event penjadwalan.
	TanggalUjian *time.Time `bson:"tanggalUjian,omitempty"`
	Ruangan      string     `bson:"ruangan,omitempty"`

	CreatedAt time.Time `bson:"createdAt"`
}

package repository

import (
	"thesis-defense-backend/app/model"

	"go.mongodb.org/mongo-driver/bson"
	"gorm.io/gorm"
)

// UntukAktor membangun scope GORM yang membatasi query ujian sesuai role:
//   - ADMIN     : tanpa batasan
//   - MAHASISWA : hanya pengajuan miliknya sendiri
//   - DOSEN     : pengajuan di mana ia pembimbing ATAU anggota penguji
//
// Scope ini adalah satu-satunya jalan masuk pembacaan ujian: semua path baca
// (daftar, statistik, timeline, agenda) wajib lewat scope ini atau padanan
// Mongo-nya (FilterEventUntukAktor). Semantiknya harus identik dengan
// predicate murni model.Ujian.VisibleTo.
func UntukAktor(actor model.Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch actor.Role {
		case model.RoleAdmin:
			return db
		case model.RoleMahasiswa:
			return db.Where("ujians.mahasiswa_id = ?", actor.MahasiswaID)
		case model.RoleDosen:
			return db.
				Joins("LEFT JOIN ujian_penguji ON ujian_penguji.ujian_id = ujians.id").
				Where("ujians.dosen_pembimbing_id = ? OR ujian_penguji.dosen_id = ?",
					actor.DosenID, actor.DosenID).
				Distinct("ujians.*")
		}
		// role tidak dikenal: jangan bocorkan apa pun
		return db.Where("1 = 0")
	}
}

// FilterEventUntukAktor membangun filter Mongo untuk collection ujian_events
// dengan aturan visibilitas yang sama dengan UntukAktor.
func FilterEventUntukAktor(actor model.Actor) bson.M {
	switch actor.Role {
	case model.RoleAdmin:
		return bson.M{}
	case model.RoleMahasiswa:
		return bson.M{"mahasiswaId": actor.MahasiswaID.String()}
	case model.RoleDosen:
		id := actor.DosenID.String()
		return bson.M{"$or": bson.A{
			bson.M{"dosenPembimbingId": id},
			bson.M{"dosenPengujiIds": id},
		}}
	}
	return bson.M{"_id": nil}
}

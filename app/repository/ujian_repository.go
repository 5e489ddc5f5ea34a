package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"thesis-defense-backend/app/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KoleksiUjianEvents adalah nama collection riwayat status di MongoDB.
const KoleksiUjianEvents = "ujian_events"

// UjianRepository mendefinisikan operasi penyimpanan pengajuan sidang:
// baris ujian di PostgreSQL + dokumen riwayat status di MongoDB.
//
// Setiap penulisan status menulis dokumen event lebih dulu lalu menjalankan
// transaksi Postgres, dengan kompensasi penghapusan dokumen bila transaksi
// gagal; tidak ada perubahan status tanpa event yang menyertainya.
type UjianRepository interface {
	// Create menyimpan pengajuan baru beserta event pembuatannya.
	// ID ujian harus sudah di-set oleh pemanggil (dipakai juga di event).
	Create(ctx context.Context, ujian *model.Ujian, event *model.UjianEvent) error

	// FindByID mengambil 1 ujian lengkap dengan relasi partisipannya.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ujian, error)

	// FindUntukAktor mengambil seluruh ujian yang boleh dilihat actor,
	// terbaru lebih dulu (scope visibilitas diterapkan di query).
	FindUntukAktor(ctx context.Context, actor model.Actor) ([]model.Ujian, error)

	// FindDijadwalkanUntukAktor mengambil ujian DIJADWALKAN yang boleh
	// dilihat actor, diurutkan berdasarkan tanggal ujian.
	FindDijadwalkanUntukAktor(ctx context.Context, actor model.Actor) ([]model.Ujian, error)

	// UpdateStatus memindahkan status dari → ke (verifikasi / penolakan).
	// Status asal dicek ulang di dalam transaksi dengan row lock, sehingga
	// dua aksi admin yang balapan tidak pernah menghasilkan transisi ganda.
	UpdateStatus(ctx context.Context, id uuid.UUID, dari, ke model.StatusUjian, event *model.UjianEvent) error

	// Jadwalkan memindahkan DITERIMA → DIJADWALKAN. Pengecekan bentrok
	// (ruangan, mahasiswa, pembimbing, penguji) dievaluasi terhadap state
	// saat ini DI DALAM transaksi yang sama dengan penulisannya, dan semua
	// penjadwalan diserialisasi lewat satu advisory lock Postgres.
	Jadwalkan(ctx context.Context, id uuid.UUID, tanggal time.Time, ruangan string, event *model.UjianEvent) error

	// SetPenguji mengganti daftar penguji; hanya sah selama status DITERIMA.
	SetPenguji(ctx context.Context, id uuid.UUID, penguji []model.Dosen) error
}

type ujianRepository struct {
	pgDB    *gorm.DB
	mongoDB *mongo.Database
}

// NewUjianRepository membuat instance repository pengajuan sidang.
func NewUjianRepository(pgDB *gorm.DB, mongoDB *mongo.Database) UjianRepository {
	return &ujianRepository{pgDB: pgDB, mongoDB: mongoDB}
}

// terjemahkanError memetakan error infrastruktur ke taksonomi core:
// record tidak ada → ErrTidakDitemukan, kegagalan database lain dianggap
// gangguan store yang boleh di-retry pemanggil.
func terjemahkanError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return model.ErrTidakDitemukan
	}
	if errors.Is(err, model.ErrTransisiTidakValid) ||
		errors.Is(err, model.ErrJadwalBentrok) ||
		errors.Is(err, model.ErrTidakDitemukan) {
		return err
	}
	return fmt.Errorf("%w: %v", model.ErrStoreTidakTersedia, err)
}

// Create:
// 1. Insert event pembuatan ke MongoDB.
// 2. Insert baris ujian ke PostgreSQL (dalam transaksi).
// 3. Kompensasi: hapus dokumen Mongo jika insert Postgres gagal.
func (r *ujianRepository) Create(ctx context.Context, ujian *model.Ujian, event *model.UjianEvent) error {
	if ujian == nil || ujian.ID == uuid.Nil {
		return errors.New("ID ujian harus di-set sebelum Create()")
	}

	insertRes, err := r.mongoDB.Collection(KoleksiUjianEvents).InsertOne(ctx, event)
	if err != nil {
		return terjemahkanError(fmt.Errorf("mongo insert error: %w", err))
	}
	oid, ok := insertRes.InsertedID.(primitive.ObjectID)
	if !ok {
		return terjemahkanError(errors.New("mongo insert returned non-ObjectID"))
	}

	if err := r.pgDB.WithContext(ctx).Create(ujian).Error; err != nil {
		// rollback event Mongo jika insert Postgres gagal
		_, _ = r.mongoDB.Collection(KoleksiUjianEvents).DeleteOne(ctx, bson.M{"_id": oid})
		return terjemahkanError(fmt.Errorf("postgres insert error: %w", err))
	}
	return nil
}

func (r *ujianRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Ujian, error) {
	var u model.Ujian
	err := r.pgDB.WithContext(ctx).
		Preload("Mahasiswa.User").
		Preload("Pembimbing.User").
		Preload("DosenPenguji.User").
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, terjemahkanError(err)
	}
	return &u, nil
}

func (r *ujianRepository) FindUntukAktor(ctx context.Context, actor model.Actor) ([]model.Ujian, error) {
	var list []model.Ujian
	err := r.pgDB.WithContext(ctx).
		Scopes(UntukAktor(actor)).
		Preload("Mahasiswa.User").
		Preload("Pembimbing.User").
		Preload("DosenPenguji.User").
		Order("ujians.created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, terjemahkanError(err)
	}
	return list, nil
}

func (r *ujianRepository) FindDijadwalkanUntukAktor(ctx context.Context, actor model.Actor) ([]model.Ujian, error) {
	var list []model.Ujian
	err := r.pgDB.WithContext(ctx).
		Scopes(UntukAktor(actor)).
		Where("ujians.status = ? AND ujians.tanggal_ujian IS NOT NULL", model.StatusDijadwalkan).
		Preload("Mahasiswa.User").
		Preload("Pembimbing.User").
		Preload("DosenPenguji.User").
		Order("ujians.tanggal_ujian ASC").
		Find(&list).Error
	if err != nil {
		return nil, terjemahkanError(err)
	}
	return list, nil
}

// UpdateStatus menulis event ke Mongo lalu memindahkan status di Postgres.
// Baris dikunci (SELECT ... FOR UPDATE) dan status asal dicek ulang di dalam
// transaksi supaya tidak ada transisi dari state basi.
func (r *ujianRepository) UpdateStatus(ctx context.Context, id uuid.UUID, dari, ke model.StatusUjian, event *model.UjianEvent) error {
	if !model.StatusTersimpan(ke) {
		return model.ErrTransisiTidakValid
	}

	insertRes, err := r.mongoDB.Collection(KoleksiUjianEvents).InsertOne(ctx, event)
	if err != nil {
		return terjemahkanError(fmt.Errorf("mongo insert error: %w", err))
	}
	oid, _ := insertRes.InsertedID.(primitive.ObjectID)

	err = r.pgDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u model.Ujian
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&u, "id = ?", id).Error; err != nil {
			return err
		}
		if u.Status != dari || !model.TransisiDiizinkan(dari, ke) {
			return model.ErrTransisiTidakValid
		}
		return tx.Model(&model.Ujian{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     ke,
				"updated_at": time.Now(),
			}).Error
	})
	if err != nil {
		_, _ = r.mongoDB.Collection(KoleksiUjianEvents).DeleteOne(ctx, bson.M{"_id": oid})
		return terjemahkanError(err)
	}
	return nil
}

// kunciJadwalUjian adalah key pg_advisory_xact_lock yang menserialisasi
// seluruh penjadwalan. Row lock per-ujian tidak menutup baris lain yang
// dibaca pengecekan bentrok, jadi dua penjadwalan pada ujian berbeda yang
// berbagi ruangan atau orang harus antre di kunci ini.
const kunciJadwalUjian int64 = 941203

// Jadwalkan memindahkan DITERIMA → DIJADWALKAN dalam satu transaksi:
// ambil advisory lock, kunci baris, cek ulang status, cek bentrok terhadap
// state sekarang, baru tulis jadwal. Dua admin yang menjadwalkan slot yang
// sama secara bersamaan dijamin salah satunya gagal dengan ErrJadwalBentrok.
func (r *ujianRepository) Jadwalkan(ctx context.Context, id uuid.UUID, tanggal time.Time, ruangan string, event *model.UjianEvent) error {
	insertRes, err := r.mongoDB.Collection(KoleksiUjianEvents).InsertOne(ctx, event)
	if err != nil {
		return terjemahkanError(fmt.Errorf("mongo insert error: %w", err))
	}
	oid, _ := insertRes.InsertedID.(primitive.ObjectID)

	err = r.pgDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", kunciJadwalUjian).Error; err != nil {
			return err
		}

		var u model.Ujian
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&u, "id = ?", id).Error; err != nil {
			return err
		}
		if u.Status != model.StatusDiterima {
			return model.ErrTransisiTidakValid
		}

		// partisipan dosen: pembimbing + seluruh penguji terdaftar
		var pengujiIDs []uuid.UUID
		if err := tx.Table("ujian_penguji").
			Where("ujian_id = ?", id).
			Pluck("dosen_id", &pengujiIDs).Error; err != nil {
			return err
		}
		dosenIDs := append(pengujiIDs, u.DosenPembimbingID)

		// ambil kandidat di jendela waktu lalu evaluasi dengan predicate
		// yang sama dengan model.JadwalBentrok di seluruh sistem
		mulai := tanggal.Add(-model.DurasiUjian)
		selesai := tanggal.Add(model.DurasiUjian)

		var kandidat []model.Ujian
		if err := tx.Preload("DosenPenguji").
			Where("id <> ?", id).
			Where("status = ?", model.StatusDijadwalkan).
			Where("tanggal_ujian > ? AND tanggal_ujian < ?", mulai, selesai).
			Find(&kandidat).Error; err != nil {
			return err
		}
		for i := range kandidat {
			if model.JadwalBentrok(tanggal, ruangan, u.MahasiswaID, dosenIDs, &kandidat[i]) {
				return model.ErrJadwalBentrok
			}
		}

		return tx.Model(&model.Ujian{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":        model.StatusDijadwalkan,
				"tanggal_ujian": tanggal,
				"ruangan":       ruangan,
				"updated_at":    time.Now(),
			}).Error
	})
	if err != nil {
		_, _ = r.mongoDB.Collection(KoleksiUjianEvents).DeleteOne(ctx, bson.M{"_id": oid})
		return terjemahkanError(err)
	}
	return nil
}

// SetPenguji mengganti daftar penguji ujian. Hanya sah selama status DITERIMA
// (sebelum dijadwalkan); dicek di dalam transaksi dengan row lock.
func (r *ujianRepository) SetPenguji(ctx context.Context, id uuid.UUID, penguji []model.Dosen) error {
	err := r.pgDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u model.Ujian
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&u, "id = ?", id).Error; err != nil {
			return err
		}
		if u.Status != model.StatusDiterima {
			return model.ErrTransisiTidakValid
		}
		return tx.Model(&u).Association("DosenPenguji").Replace(penguji)
	})
	return terjemahkanError(err)
}

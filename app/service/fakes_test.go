package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"thesis-defense-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ==================================================================
// FAKE REPOSITORIES (in-memory, untuk unit test service)
// ==================================================================

type fakeUjianRepo struct {
	data   map[uuid.UUID]*model.Ujian
	events []*model.UjianEvent

	errFind      error
	errJadwalkan error
}

func newFakeUjianRepo() *fakeUjianRepo {
	return &fakeUjianRepo{data: map[uuid.UUID]*model.Ujian{}}
}

func (f *fakeUjianRepo) simpan(u *model.Ujian) { f.data[u.ID] = u }

func (f *fakeUjianRepo) Create(_ context.Context, ujian *model.Ujian, event *model.UjianEvent) error {
	f.data[ujian.ID] = ujian
	f.events = append(f.events, event)
	return nil
}

func (f *fakeUjianRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Ujian, error) {
	if f.errFind != nil {
		return nil, f.errFind
	}
	u, ok := f.data[id]
	if !ok {
		return nil, model.ErrTidakDitemukan
	}
	return u, nil
}

func (f *fakeUjianRepo) FindUntukAktor(_ context.Context, actor model.Actor) ([]model.Ujian, error) {
	if f.errFind != nil {
		return nil, f.errFind
	}
	var hasil []model.Ujian
	for _, u := range f.data {
		if u.VisibleTo(actor) {
			hasil = append(hasil, *u)
		}
	}
	return hasil, nil
}

func (f *fakeUjianRepo) FindDijadwalkanUntukAktor(_ context.Context, actor model.Actor) ([]model.Ujian, error) {
	var hasil []model.Ujian
	for _, u := range f.data {
		if u.Status == model.StatusDijadwalkan && u.VisibleTo(actor) {
			hasil = append(hasil, *u)
		}
	}
	return hasil, nil
}

func (f *fakeUjianRepo) UpdateStatus(_ context.Context, id uuid.UUID, dari, ke model.StatusUjian, event *model.UjianEvent) error {
	u, ok := f.data[id]
	if !ok {
		return model.ErrTidakDitemukan
	}
	if u.Status != dari {
		return fmt.Errorf("%w: status sudah berubah", model.ErrTransisiTidakValid)
	}
	u.Status = ke
	f.events = append(f.events, event)
	return nil
}

func (f *fakeUjianRepo) Jadwalkan(_ context.Context, id uuid.UUID, tanggal time.Time, ruangan string, event *model.UjianEvent) error {
	if f.errJadwalkan != nil {
		return f.errJadwalkan
	}
	u, ok := f.data[id]
	if !ok {
		return model.ErrTidakDitemukan
	}
	if u.Status != model.StatusDiterima {
		return fmt.Errorf("%w: hanya ujian DITERIMA yang bisa dijadwalkan", model.ErrTransisiTidakValid)
	}
	u.Status = model.StatusDijadwalkan
	u.TanggalUjian = &tanggal
	u.Ruangan = ruangan
	f.events = append(f.events, event)
	return nil
}

func (f *fakeUjianRepo) SetPenguji(_ context.Context, id uuid.UUID, penguji []model.Dosen) error {
	u, ok := f.data[id]
	if !ok {
		return model.ErrTidakDitemukan
	}
	if u.Status != model.StatusDiterima {
		return fmt.Errorf("%w: penguji hanya bisa diubah saat DITERIMA", model.ErrTransisiTidakValid)
	}
	u.DosenPenguji = penguji
	return nil
}

// ------------------------------------------------------------------

type fakeMahasiswaRepo struct {
	perUser map[uuid.UUID]*model.Mahasiswa
}

func newFakeMahasiswaRepo() *fakeMahasiswaRepo {
	return &fakeMahasiswaRepo{perUser: map[uuid.UUID]*model.Mahasiswa{}}
}

func (f *fakeMahasiswaRepo) FindAll() ([]model.Mahasiswa, error) {
	var hasil []model.Mahasiswa
	for _, m := range f.perUser {
		hasil = append(hasil, *m)
	}
	return hasil, nil
}

func (f *fakeMahasiswaRepo) FindByID(id uuid.UUID) (*model.Mahasiswa, error) {
	for _, m := range f.perUser {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMahasiswaRepo) FindByUserID(userID uuid.UUID) (*model.Mahasiswa, error) {
	m, ok := f.perUser[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeMahasiswaRepo) UpdateProfil(m *model.Mahasiswa) error {
	f.perUser[m.UserID] = m
	return nil
}

func (f *fakeMahasiswaRepo) UpdatePembimbing(mahasiswaID, dosenID uuid.UUID) error {
	for _, m := range f.perUser {
		if m.ID == mahasiswaID {
			id := dosenID
			m.DosenPembimbingID = &id
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ------------------------------------------------------------------

type fakeDosenRepo struct {
	list      []model.Dosen
	bimbingan map[uuid.UUID][]model.Mahasiswa
}

func (f *fakeDosenRepo) FindAll() ([]model.Dosen, error) { return f.list, nil }

func (f *fakeDosenRepo) FindByID(id uuid.UUID) (*model.Dosen, error) {
	for i := range f.list {
		if f.list[i].ID == id {
			return &f.list[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDosenRepo) FindByUserID(userID uuid.UUID) (*model.Dosen, error) {
	for i := range f.list {
		if f.list[i].UserID == userID {
			return &f.list[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDosenRepo) FindByIDs(ids []uuid.UUID) ([]model.Dosen, error) {
	var hasil []model.Dosen
	for _, id := range ids {
		for i := range f.list {
			if f.list[i].ID == id {
				hasil = append(hasil, f.list[i])
			}
		}
	}
	return hasil, nil
}

func (f *fakeDosenRepo) FindBimbingan(dosenID uuid.UUID) ([]model.Mahasiswa, error) {
	return f.bimbingan[dosenID], nil
}

// ------------------------------------------------------------------

// fakeEventRepo menerapkan aturan visibilitas yang sama dengan
// repository.FilterEventUntukAktor, tetapi dievaluasi in-memory.
type fakeEventRepo struct {
	events []model.UjianEvent
	err    error
}

func (f *fakeEventRepo) FindUntukAktor(_ context.Context, actor model.Actor, page, pageSize int) ([]model.UjianEvent, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}

	var visible []model.UjianEvent
	for _, ev := range f.events {
		switch actor.Role {
		case model.RoleAdmin:
			visible = append(visible, ev)
		case model.RoleMahasiswa:
			if ev.MahasiswaID == actor.MahasiswaID.String() {
				visible = append(visible, ev)
			}
		case model.RoleDosen:
			if ev.DosenPembimbingID == actor.DosenID.String() {
				visible = append(visible, ev)
				continue
			}
			for _, p := range ev.DosenPengujiIDs {
				if p == actor.DosenID.String() {
					visible = append(visible, ev)
					break
				}
			}
		}
	}

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})

	total := int64(len(visible))
	mulai := (page - 1) * pageSize
	if mulai >= len(visible) {
		return nil, total, nil
	}
	akhir := mulai + pageSize
	if akhir > len(visible) {
		akhir = len(visible)
	}
	return visible[mulai:akhir], total, nil
}

// ------------------------------------------------------------------

type fakeKalender struct {
	terhubung   bool
	perluReauth bool
	err         error
}

func (f *fakeKalender) StatusAkses(_ context.Context, _ uuid.UUID) (bool, bool, error) {
	return f.terhubung, f.perluReauth, f.err
}

// ==================================================================
// HELPER PEMBUAT DATA
// ==================================================================

func mahasiswaLengkap(userID uuid.UUID, pembimbingID uuid.UUID) *model.Mahasiswa {
	return &model.Mahasiswa{
		ID:                uuid.New(),
		UserID:            userID,
		NIM:               "230001",
		Prodi:             "Teknik Informatika",
		Departemen:        "Teknik Informatika",
		Telepon:           "0812000111",
		Email:             "mhs@kampus.ac.id",
		DosenPembimbingID: &pembimbingID,
		User:              model.User{ID: userID, FullName: "Mahasiswa Satu"},
	}
}

func ujianDenganStatus(status model.StatusUjian, mhs *model.Mahasiswa) *model.Ujian {
	return &model.Ujian{
		ID:                uuid.New(),
		Judul:             "Sistem Penjadwalan Sidang",
		BerkasURL:         "https://berkas.kampus.ac.id/ta.pdf",
		MahasiswaID:       mhs.ID,
		Mahasiswa:         *mhs,
		DosenPembimbingID: *mhs.DosenPembimbingID,
		Status:            status,
	}
}

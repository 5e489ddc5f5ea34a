package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"thesis-defense-backend/app/model"

	"github.com/google/uuid"
)

// waktuTes adalah "sekarang" yang dibekukan supaya cek tanggal deterministik.
var waktuTes = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func buatUjianService(ujianRepo *fakeUjianRepo, mhsRepo *fakeMahasiswaRepo, dosenRepo *fakeDosenRepo) *ujianService {
	return &ujianService{
		ujianRepo:     ujianRepo,
		mahasiswaRepo: mhsRepo,
		dosenRepo:     dosenRepo,
		now:           func() time.Time { return waktuTes },
	}
}

func TestAjukanBerhasil(t *testing.T) {
	userID := uuid.New()
	pembimbingID := uuid.New()

	mhsRepo := newFakeMahasiswaRepo()
	mhs := mahasiswaLengkap(userID, pembimbingID)
	mhsRepo.perUser[userID] = mhs

	ujianRepo := newFakeUjianRepo()
	s := buatUjianService(ujianRepo, mhsRepo, &fakeDosenRepo{})

	actor := model.Actor{UserID: userID, MahasiswaID: mhs.ID, Role: model.RoleMahasiswa}
	u, err := s.Ajukan(context.Background(), actor, AjukanUjianInput{
		Judul:     "Deteksi Anomali Jaringan",
		BerkasURL: "https://berkas.kampus.ac.id/ta.pdf",
	})
	if err != nil {
		t.Fatalf("Ajukan error: %v", err)
	}

	if u.Status != model.StatusMenungguVerifikasi {
		t.Errorf("status awal = %s, mau MENUNGGU_VERIFIKASI", u.Status)
	}
	if u.MahasiswaID != mhs.ID || u.DosenPembimbingID != pembimbingID {
		t.Error("pemilik / pembimbing tidak terpasang dari profil")
	}

	// event pembuatan tercatat dengan StatusLama kosong dan atribusi pelaku
	if len(ujianRepo.events) != 1 {
		t.Fatalf("jumlah event = %d, mau 1", len(ujianRepo.events))
	}
	ev := ujianRepo.events[0]
	if ev.StatusLama != nil {
		t.Errorf("StatusLama event pembuatan = %v, mau nil", *ev.StatusLama)
	}
	if ev.StatusBaru != string(model.StatusMenungguVerifikasi) {
		t.Errorf("StatusBaru = %s, mau MENUNGGU_VERIFIKASI", ev.StatusBaru)
	}
	if ev.DiubahOleh != userID.String() || ev.RolePengubah != string(model.RoleMahasiswa) {
		t.Error("atribusi pelaku event salah")
	}
	if !ev.CreatedAt.Equal(waktuTes) {
		t.Errorf("CreatedAt event = %v, mau jam service %v", ev.CreatedAt, waktuTes)
	}
}

func TestAjukanBukanMahasiswa(t *testing.T) {
	s := buatUjianService(newFakeUjianRepo(), newFakeMahasiswaRepo(), &fakeDosenRepo{})

	for _, role := range []model.Role{model.RoleAdmin, model.RoleDosen} {
		actor := model.Actor{UserID: uuid.New(), Role: role}
		_, err := s.Ajukan(context.Background(), actor, AjukanUjianInput{Judul: "x", BerkasURL: "y"})
		if !errors.Is(err, model.ErrTidakBerwenang) {
			t.Errorf("role %s: err = %v, mau ErrTidakBerwenang", role, err)
		}
	}
}

func TestAjukanProfilBelumLengkap(t *testing.T) {
	userID := uuid.New()
	mhsRepo := newFakeMahasiswaRepo()
	mhs := mahasiswaLengkap(userID, uuid.New())
	mhs.Telepon = "" // satu field kosong sudah cukup untuk menolak
	mhsRepo.perUser[userID] = mhs

	ujianRepo := newFakeUjianRepo()
	s := buatUjianService(ujianRepo, mhsRepo, &fakeDosenRepo{})

	actor := model.Actor{UserID: userID, MahasiswaID: mhs.ID, Role: model.RoleMahasiswa}
	_, err := s.Ajukan(context.Background(), actor, AjukanUjianInput{Judul: "x", BerkasURL: "y"})
	if !errors.Is(err, model.ErrProfilBelumLengkap) {
		t.Fatalf("err = %v, mau ErrProfilBelumLengkap", err)
	}

	// penolakan terjadi sebelum ada baris tertulis
	if len(ujianRepo.data) != 0 || len(ujianRepo.events) != 0 {
		t.Error("pengajuan dengan profil belum lengkap tidak boleh menulis apa pun")
	}
}

func TestAjukanProfilBelumDibuat(t *testing.T) {
	s := buatUjianService(newFakeUjianRepo(), newFakeMahasiswaRepo(), &fakeDosenRepo{})

	actor := model.Actor{UserID: uuid.New(), Role: model.RoleMahasiswa}
	_, err := s.Ajukan(context.Background(), actor, AjukanUjianInput{Judul: "x", BerkasURL: "y"})
	if !errors.Is(err, model.ErrProfilBelumLengkap) {
		t.Fatalf("err = %v, mau ErrProfilBelumLengkap", err)
	}
}

func TestTransisiVerifikasiDanTolak(t *testing.T) {
	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}

	for _, target := range []model.StatusUjian{model.StatusDiterima, model.StatusDitolak} {
		mhs := mahasiswaLengkap(uuid.New(), uuid.New())
		ujianRepo := newFakeUjianRepo()
		u := ujianDenganStatus(model.StatusMenungguVerifikasi, mhs)
		ujianRepo.simpan(u)

		s := buatUjianService(ujianRepo, newFakeMahasiswaRepo(), &fakeDosenRepo{})

		hasil, err := s.Transisi(context.Background(), admin, u.ID, target, nil)
		if err != nil {
			t.Fatalf("Transisi ke %s error: %v", target, err)
		}
		if hasil.Status != target {
			t.Errorf("status = %s, mau %s", hasil.Status, target)
		}

		ev := ujianRepo.events[len(ujianRepo.events)-1]
		if ev.StatusLama == nil || *ev.StatusLama != string(model.StatusMenungguVerifikasi) {
			t.Error("StatusLama event transisi tidak tercatat")
		}
		if ev.StatusBaru != string(target) {
			t.Errorf("StatusBaru event = %s, mau %s", ev.StatusBaru, target)
		}
	}
}

func TestTransisiOlehNonAdmin(t *testing.T) {
	mhs := mahasiswaLengkap(uuid.New(), uuid.New())
	ujianRepo := newFakeUjianRepo()
	u := ujianDenganStatus(model.StatusMenungguVerifikasi, mhs)
	ujianRepo.simpan(u)

	s := buatUjianService(ujianRepo, newFakeMahasiswaRepo(), &fakeDosenRepo{})

	pelaku := []model.Actor{
		{UserID: uuid.New(), MahasiswaID: mhs.ID, Role: model.RoleMahasiswa}, // bahkan pemilik
		{UserID: uuid.New(), DosenID: *mhs.DosenPembimbingID, Role: model.RoleDosen},
	}
	for _, actor := range pelaku {
		_, err := s.Transisi(context.Background(), actor, u.ID, model.StatusDiterima, nil)
		if !errors.Is(err, model.ErrTidakBerwenang) {
			t.Errorf("role %s: err = %v, mau ErrTidakBerwenang", actor.Role, err)
		}
	}

	if u.Status != model.StatusMenungguVerifikasi {
		t.Error("transisi yang ditolak tidak boleh mengubah status")
	}
}

func TestTransisiTidakValid(t *testing.T) {
	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}

	cases := []struct {
		dari   model.StatusUjian
		target model.StatusUjian
	}{
		{model.StatusMenungguVerifikasi, model.StatusDijadwalkan}, // lompat
		{model.StatusDitolak, model.StatusDiterima},               // DITOLAK terminal
		{model.StatusDitolak, model.StatusMenungguVerifikasi},
		{model.StatusDijadwalkan, model.StatusDiterima}, // mundur
		{model.StatusDiterima, model.StatusDitolak},
	}

	for _, c := range cases {
		mhs := mahasiswaLengkap(uuid.New(), uuid.New())
		ujianRepo := newFakeUjianRepo()
		u := ujianDenganStatus(c.dari, mhs)
		ujianRepo.simpan(u)

		s := buatUjianService(ujianRepo, newFakeMahasiswaRepo(), &fakeDosenRepo{})

		_, err := s.Transisi(context.Background(), admin, u.ID, c.target, nil)
		if !errors.Is(err, model.ErrTransisiTidakValid) {
			t.Errorf("%s → %s: err = %v, mau ErrTransisiTidakValid", c.dari, c.target, err)
		}
		if u.Status != c.dari {
			t.Errorf("%s → %s: status berubah padahal transisi ditolak", c.dari, c.target)
		}
	}
}

func TestJadwalkanBerhasil(t *testing.T) {
	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}

	mhs := mahasiswaLengkap(uuid.New(), uuid.New())
	ujianRepo := newFakeUjianRepo()
	u := ujianDenganStatus(model.StatusDiterima, mhs)
	ujianRepo.simpan(u)

	s := buatUjianService(ujianRepo, newFakeMahasiswaRepo(), &fakeDosenRepo{})

	tanggal := waktuTes.Add(48 * time.Hour)
	hasil, err := s.Transisi(context.Background(), admin, u.ID, model.StatusDijadwalkan,
		&JadwalPayload{TanggalUjian: tanggal, Ruangan: "R-301"})
	if err != nil {
		t.Fatalf("Jadwalkan error: %v", err)
	}

	if hasil.Status != model.StatusDijadwalkan {
		t.Errorf("status = %s, mau DIJADWALKAN", hasil.Status)
	}
	if hasil.TanggalUjian == nil || !hasil.TanggalUjian.Equal(tanggal) || hasil.Ruangan != "R-301" {
		t.Error("tanggal/ruangan tidak tersimpan")
	}

	ev := ujianRepo.events[len(ujianRepo.events)-1]
	if ev.TanggalUjian == nil || ev.Ruangan != "R-301" {
		t.Error("event penjadwalan harus membawa tanggal & ruangan")
	}
}

func TestJadwalkanPayloadTidakLengkap(t *testing.T) {
	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}

	mhs := mahasiswaLengkap(uuid.New(), uuid.New())
	ujianRepo := newFakeUjianRepo()
	u := ujianDenganStatus(model.StatusDiterima, mhs)
	ujianRepo.simpan(u)

	s := buatUjianService(ujianRepo, newFakeMahasiswaRepo(), &fakeDosenRepo{})

	cases := map[string]*JadwalPayload{
		"tanpa payload":  nil,
		"tanpa ruangan":  {TanggalUjian: waktuTes.Add(24 * time.Hour)},
		"tanpa tanggal":  {Ruangan: "R-301"},
		"tanggal lampau": {TanggalUjian: waktuTes.Add(-time.Hour), Ruangan: "R-301"},
	}

	for nama, jadwal := range cases {
		_, err := s.Transisi(context.Background(), admin, u.ID, model.StatusDijadwalkan, jadwal)
		if !errors.Is(err, model.ErrTransisiTidakValid) {
			t.Errorf("%s: err = %v, mau ErrTransisiTidakValid", nama, err)
		}
		if u.Status != model.StatusDiterima {
			t.Errorf("%s: status berubah padahal payload ditolak", nama)
		}
	}
}

func TestJadwalkanBentrok(t *testing.T) {
	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}

	mhs := mahasiswaLengkap(uuid.New(), uuid.New())
	ujianRepo := newFakeUjianRepo()
	ujianRepo.errJadwalkan = model.ErrJadwalBentrok
	u := ujianDenganStatus(model.StatusDiterima, mhs)
	ujianRepo.simpan(u)

	s := buatUjianService(ujianRepo, newFakeMahasiswaRepo(), &fakeDosenRepo{})

	_, err := s.Transisi(context.Background(), admin, u.ID, model.StatusDijadwalkan,
		&JadwalPayload{TanggalUjian: waktuTes.Add(24 * time.Hour), Ruangan: "R-301"})
	if !errors.Is(err, model.ErrJadwalBentrok) {
		t.Fatalf("err = %v, mau ErrJadwalBentrok", err)
	}
	if u.Status != model.StatusDiterima || u.TanggalUjian != nil {
		t.Error("penjadwalan bentrok tidak boleh mengubah apa pun")
	}
}

func TestTetapkanPenguji(t *testing.T) {
	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}

	p1 := model.Dosen{ID: uuid.New(), NIDN: "001"}
	p2 := model.Dosen{ID: uuid.New(), NIDN: "002"}
	dosenRepo := &fakeDosenRepo{list: []model.Dosen{p1, p2}}

	mhs := mahasiswaLengkap(uuid.New(), uuid.New())
	ujianRepo := newFakeUjianRepo()
	u := ujianDenganStatus(model.StatusDiterima, mhs)
	ujianRepo.simpan(u)

	s := buatUjianService(ujianRepo, newFakeMahasiswaRepo(), dosenRepo)

	if err := s.TetapkanPenguji(context.Background(), admin, u.ID, []uuid.UUID{p1.ID, p2.ID}); err != nil {
		t.Fatalf("TetapkanPenguji error: %v", err)
	}
	if len(u.DosenPenguji) != 2 {
		t.Errorf("jumlah penguji = %d, mau 2", len(u.DosenPenguji))
	}

	// id dosen tidak dikenal
	err := s.TetapkanPenguji(context.Background(), admin, u.ID, []uuid.UUID{p1.ID, uuid.New()})
	if !errors.Is(err, model.ErrTidakDitemukan) {
		t.Errorf("id asing: err = %v, mau ErrTidakDitemukan", err)
	}

	// bukan admin
	dosen := model.Actor{UserID: uuid.New(), DosenID: p1.ID, Role: model.RoleDosen}
	err = s.TetapkanPenguji(context.Background(), dosen, u.ID, []uuid.UUID{p1.ID})
	if !errors.Is(err, model.ErrTidakBerwenang) {
		t.Errorf("non-admin: err = %v, mau ErrTidakBerwenang", err)
	}
}

func TestDetailUjianDiLuarScope(t *testing.T) {
	mhs := mahasiswaLengkap(uuid.New(), uuid.New())
	ujianRepo := newFakeUjianRepo()
	u := ujianDenganStatus(model.StatusMenungguVerifikasi, mhs)
	ujianRepo.simpan(u)

	s := buatUjianService(ujianRepo, newFakeMahasiswaRepo(), &fakeDosenRepo{})

	// dosen yang tidak terlibat: tidak dibedakan dari ujian yang tidak ada
	asing := model.Actor{UserID: uuid.New(), DosenID: uuid.New(), Role: model.RoleDosen}
	_, err := s.DetailUjian(context.Background(), asing, u.ID)
	if !errors.Is(err, model.ErrTidakDitemukan) {
		t.Fatalf("err = %v, mau ErrTidakDitemukan", err)
	}

	// pemiliknya sendiri tetap bisa
	pemilik := model.Actor{UserID: mhs.UserID, MahasiswaID: mhs.ID, Role: model.RoleMahasiswa}
	detail, err := s.DetailUjian(context.Background(), pemilik, u.ID)
	if err != nil {
		t.Fatalf("pemilik gagal melihat detail: %v", err)
	}
	if detail.ID != u.ID {
		t.Error("detail salah ujian")
	}
}

func TestDaftarUjianTersaring(t *testing.T) {
	pembimbingID := uuid.New()
	pengujiID := uuid.New()

	mhsA := mahasiswaLengkap(uuid.New(), pembimbingID)
	mhsB := mahasiswaLengkap(uuid.New(), uuid.New())

	ujianRepo := newFakeUjianRepo()
	uA := ujianDenganStatus(model.StatusMenungguVerifikasi, mhsA)
	uB := ujianDenganStatus(model.StatusDiterima, mhsB)
	uB.DosenPenguji = []model.Dosen{{ID: pengujiID}}
	ujianRepo.simpan(uA)
	ujianRepo.simpan(uB)

	s := buatUjianService(ujianRepo, newFakeMahasiswaRepo(), &fakeDosenRepo{})

	cases := []struct {
		nama  string
		actor model.Actor
		mau   int
	}{
		{"admin melihat semua", model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}, 2},
		{"mahasiswa A hanya miliknya", model.Actor{UserID: mhsA.UserID, MahasiswaID: mhsA.ID, Role: model.RoleMahasiswa}, 1},
		{"pembimbing A", model.Actor{UserID: uuid.New(), DosenID: pembimbingID, Role: model.RoleDosen}, 1},
		{"penguji B", model.Actor{UserID: uuid.New(), DosenID: pengujiID, Role: model.RoleDosen}, 1},
		{"dosen asing", model.Actor{UserID: uuid.New(), DosenID: uuid.New(), Role: model.RoleDosen}, 0},
	}

	for _, c := range cases {
		t.Run(c.nama, func(t *testing.T) {
			list, err := s.DaftarUjian(context.Background(), c.actor)
			if err != nil {
				t.Fatalf("DaftarUjian error: %v", err)
			}
			if len(list) != c.mau {
				t.Errorf("jumlah ujian = %d, mau %d", len(list), c.mau)
			}
		})
	}
}

package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"thesis-defense-backend/app/model"

	"github.com/google/uuid"
)

func eventUji(i int, mhsID, pembimbingID uuid.UUID, pengujiIDs ...uuid.UUID) model.UjianEvent {
	penguji := make([]string, 0, len(pengujiIDs))
	for _, id := range pengujiIDs {
		penguji = append(penguji, id.String())
	}
	lama := string(model.StatusMenungguVerifikasi)
	return model.UjianEvent{
		Judul:             fmt.Sprintf("Skripsi %d", i),
		UjianID:           uuid.New().String(),
		MahasiswaID:       mhsID.String(),
		DosenPembimbingID: pembimbingID.String(),
		DosenPengujiIDs:   penguji,
		StatusLama:        &lama,
		StatusBaru:        string(model.StatusDiterima),
		CreatedAt:         waktuTes.Add(time.Duration(i) * time.Minute),
	}
}

func TestTimelinePaginasi(t *testing.T) {
	mhsID := uuid.New()
	repo := &fakeEventRepo{}
	for i := 0; i < 25; i++ {
		repo.events = append(repo.events, eventUji(i, mhsID, uuid.New()))
	}

	s := &notificationService{eventRepo: repo}
	actor := model.Actor{UserID: uuid.New(), MahasiswaID: mhsID, Role: model.RoleMahasiswa}

	hal1, err := s.Timeline(context.Background(), actor, 1, 10)
	if err != nil {
		t.Fatalf("Timeline error: %v", err)
	}
	if len(hal1.Events) != 10 || hal1.Total != 25 || !hal1.HasMore {
		t.Errorf("hal 1: %d event, total %d, hasMore %v, mau 10/25/true",
			len(hal1.Events), hal1.Total, hal1.HasMore)
	}

	// terbaru lebih dulu
	for i := 1; i < len(hal1.Events); i++ {
		if hal1.Events[i].Waktu.After(hal1.Events[i-1].Waktu) {
			t.Fatal("timeline tidak terurut terbaru lebih dulu")
		}
	}

	hal3, err := s.Timeline(context.Background(), actor, 3, 10)
	if err != nil {
		t.Fatalf("Timeline hal 3 error: %v", err)
	}
	if len(hal3.Events) != 5 || hal3.HasMore {
		t.Errorf("hal 3: %d event, hasMore %v, mau 5/false", len(hal3.Events), hal3.HasMore)
	}

	// halaman melewati akhir: kosong, bukan error
	hal9, err := s.Timeline(context.Background(), actor, 9, 10)
	if err != nil {
		t.Fatalf("Timeline hal 9 error: %v", err)
	}
	if len(hal9.Events) != 0 || hal9.HasMore {
		t.Error("halaman melewati akhir harus kosong tanpa hasMore")
	}
}

func TestTimelineKosong(t *testing.T) {
	s := &notificationService{eventRepo: &fakeEventRepo{}}

	hasil, err := s.Timeline(context.Background(),
		model.Actor{UserID: uuid.New(), MahasiswaID: uuid.New(), Role: model.RoleMahasiswa}, 1, 10)
	if err != nil {
		t.Fatalf("timeline kosong tidak boleh error: %v", err)
	}
	if len(hasil.Events) != 0 || hasil.Total != 0 || hasil.HasMore {
		t.Error("timeline kosong harus menghasilkan daftar kosong tanpa hasMore")
	}
}

func TestTimelineKlampParameter(t *testing.T) {
	mhsID := uuid.New()
	repo := &fakeEventRepo{events: []model.UjianEvent{eventUji(0, mhsID, uuid.New())}}
	s := &notificationService{eventRepo: repo}
	actor := model.Actor{UserID: uuid.New(), MahasiswaID: mhsID, Role: model.RoleMahasiswa}

	hasil, err := s.Timeline(context.Background(), actor, 0, -3)
	if err != nil {
		t.Fatalf("Timeline error: %v", err)
	}
	if hasil.Page != 1 || hasil.PageSize != defaultPageSize {
		t.Errorf("page/pageSize = %d/%d, mau 1/%d", hasil.Page, hasil.PageSize, defaultPageSize)
	}

	hasil, err = s.Timeline(context.Background(), actor, 1, 1000)
	if err != nil {
		t.Fatalf("Timeline error: %v", err)
	}
	if hasil.PageSize != maxPageSize {
		t.Errorf("pageSize = %d, mau klamp ke %d", hasil.PageSize, maxPageSize)
	}
}

func TestTimelineTersaringPerRole(t *testing.T) {
	mhsA := uuid.New()
	mhsB := uuid.New()
	pembimbing := uuid.New()
	penguji := uuid.New()

	repo := &fakeEventRepo{events: []model.UjianEvent{
		eventUji(0, mhsA, pembimbing),
		eventUji(1, mhsB, uuid.New(), penguji),
	}}
	s := &notificationService{eventRepo: repo}

	cases := []struct {
		nama  string
		actor model.Actor
		mau   int
	}{
		{"admin", model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}, 2},
		{"mahasiswa A", model.Actor{UserID: uuid.New(), MahasiswaID: mhsA, Role: model.RoleMahasiswa}, 1},
		{"pembimbing", model.Actor{UserID: uuid.New(), DosenID: pembimbing, Role: model.RoleDosen}, 1},
		{"penguji", model.Actor{UserID: uuid.New(), DosenID: penguji, Role: model.RoleDosen}, 1},
		{"dosen asing", model.Actor{UserID: uuid.New(), DosenID: uuid.New(), Role: model.RoleDosen}, 0},
	}

	for _, c := range cases {
		t.Run(c.nama, func(t *testing.T) {
			hasil, err := s.Timeline(context.Background(), c.actor, 1, 10)
			if err != nil {
				t.Fatalf("Timeline error: %v", err)
			}
			if len(hasil.Events) != c.mau {
				t.Errorf("jumlah event = %d, mau %d", len(hasil.Events), c.mau)
			}
		})
	}
}

func TestNarasiPerRole(t *testing.T) {
	mhsID := uuid.New()
	pembimbingID := uuid.New()
	pengujiID := uuid.New()

	ev := eventUji(0, mhsID, pembimbingID, pengujiID)

	mhs := narasiUntuk(model.Actor{MahasiswaID: mhsID, Role: model.RoleMahasiswa}, ev)
	if !strings.Contains(mhs, "saya") || !strings.Contains(mhs, string(model.StatusDiterima)) {
		t.Errorf("narasi mahasiswa kurang tepat: %q", mhs)
	}

	bimbingan := narasiUntuk(model.Actor{DosenID: pembimbingID, Role: model.RoleDosen}, ev)
	if !strings.Contains(bimbingan, "bimbingan") {
		t.Errorf("narasi pembimbing harus menyebut bimbingan: %q", bimbingan)
	}

	pengujian := narasiUntuk(model.Actor{DosenID: pengujiID, Role: model.RoleDosen}, ev)
	if !strings.Contains(pengujian, "pengujian") {
		t.Errorf("narasi penguji harus menyebut pengujian: %q", pengujian)
	}

	adm := narasiUntuk(model.Actor{Role: model.RoleAdmin}, ev)
	if !strings.Contains(adm, "diterima") {
		t.Errorf("narasi admin untuk DITERIMA kurang tepat: %q", adm)
	}

	// event pembuatan (StatusLama nil) dinarasikan sebagai pengajuan baru
	buat := ev
	buat.StatusLama = nil
	buat.StatusBaru = string(model.StatusMenungguVerifikasi)
	narasiBuat := narasiUntuk(model.Actor{MahasiswaID: mhsID, Role: model.RoleMahasiswa}, buat)
	if !strings.Contains(narasiBuat, "menunggu verifikasi") {
		t.Errorf("narasi pembuatan kurang tepat: %q", narasiBuat)
	}
}

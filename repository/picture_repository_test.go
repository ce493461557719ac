package repository

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ffremont/astackbackend/database"
	"github.com/ffremont/astackbackend/media"
	"github.com/ffremont/astackbackend/models"
)

func newTestPictureRepo(t *testing.T) *PictureRepository {
	t.Helper()
	dir := t.TempDir()

	db, err := database.InitGormDB(filepath.Join(dir, "pictures.db"))
	if err != nil {
		t.Fatalf("InitGormDB: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		t.Fatalf("AutoMigrateModels: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	store, err := media.NewLocalStorage(filepath.Join(dir, "media"))
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return NewPictureRepository(db, store)
}

func TestPictureRepositoryCreateAndGet(t *testing.T) {
	repo := newTestPictureRepo(t)
	ctx := context.Background()

	p := &models.Picture{Name: "M31", Tags: []string{"galaxy", "lrgb"}, Weather: models.WeatherClear, Constellation: "And"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == "" || p.State != models.PictureStatePending || p.CreatedAt == 0 {
		t.Fatalf("defaults not set: %+v", p)
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Name != "M31" || strings.Join(got.Tags, ",") != "galaxy,lrgb" || got.Weather != models.WeatherClear {
		t.Fatalf("got %+v", got)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("GetAll returned %d pictures", len(all))
	}
}

func TestPictureRepositoryGetByIDMissing(t *testing.T) {
	repo := newTestPictureRepo(t)

	got, err := repo.GetByID(context.Background(), "missing")
	if err != nil || got != nil {
		t.Fatalf("GetByID = %+v, %v; want nil, nil", got, err)
	}
}

func TestPictureRepositoryRefresh(t *testing.T) {
	repo := newTestPictureRepo(t)
	ctx := context.Background()

	p := &models.Picture{ID: "ngc7000", Name: "before", State: models.PictureStateDone}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	p.Name = "North America"
	p.Tags = []string{"ha"}
	if err := repo.Refresh(ctx, p); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	got, err := repo.GetByID(ctx, "ngc7000")
	if err != nil || got == nil {
		t.Fatalf("GetByID: %+v, %v", got, err)
	}
	if got.Name != "North America" || got.State != models.PictureStateDone || len(got.Tags) != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestPictureRepositoryRemove(t *testing.T) {
	repo := newTestPictureRepo(t)
	ctx := context.Background()

	p := &models.Picture{ID: "m42"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Store.Save("m42", media.AssetPicture, strings.NewReader("jpeg")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := repo.Remove(ctx, "m42"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got, _ := repo.GetByID(ctx, "m42"); got != nil {
		t.Errorf("picture still present: %+v", got)
	}
	if _, _, err := repo.GetBin(ctx, "m42", media.AssetPicture); !errors.Is(err, ErrNotFound) {
		t.Errorf("asset still readable: %v", err)
	}

	if err := repo.Remove(ctx, "m42"); err != nil {
		t.Errorf("second Remove: %v", err)
	}
}

func TestPictureRepositoryGetBin(t *testing.T) {
	repo := newTestPictureRepo(t)
	ctx := context.Background()

	if _, err := repo.Store.Save("m1", media.AssetAnnotated, strings.NewReader("annotated-jpeg")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rc, info, err := repo.GetBin(ctx, "m1", media.AssetAnnotated)
	if err != nil {
		t.Fatalf("GetBin: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "annotated-jpeg" || info.Size() != int64(len(data)) {
		t.Errorf("read %q size %d", data, info.Size())
	}

	if _, _, err := repo.GetBin(ctx, "m1", media.AssetRaw); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing raw err = %v, want ErrNotFound", err)
	}
}

func TestPictureRepositoryIDsWithDots(t *testing.T) {
	repo := newTestPictureRepo(t)
	ctx := context.Background()

	if err := repo.Remove(ctx, "m31..v2"); err != nil {
		t.Fatalf("Remove of unknown id: %v", err)
	}

	if err := repo.Create(ctx, &models.Picture{ID: "ngc..1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, _, err := repo.GetBin(ctx, "ngc..1", media.AssetThumb); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBin err = %v, want ErrNotFound", err)
	}
	if err := repo.Remove(ctx, "ngc..1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got, _ := repo.GetByID(ctx, "ngc..1"); got != nil {
		t.Errorf("picture still present: %+v", got)
	}

	for _, id := range []string{"..", "a/b"} {
		if err := repo.Remove(ctx, id); err != nil {
			t.Errorf("Remove(%q) = %v, want nil", id, err)
		}
		if _, _, err := repo.GetBin(ctx, id, media.AssetPicture); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetBin(%q) err = %v, want ErrNotFound", id, err)
		}
	}
}

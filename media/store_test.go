package media

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorageSaveGetDelete(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocalStorage(base)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	rel, err := store.Save("p1", AssetRaw, strings.NewReader("SIMPLE  =                    T"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if rel != "p1/raw.fits" {
		t.Errorf("relative path = %q, want p1/raw.fits", rel)
	}

	rc, info, err := store.Get("p1", AssetRaw)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if info.Size() != int64(len(data)) || !strings.HasPrefix(string(data), "SIMPLE") {
		t.Errorf("read %q (size %d)", data, info.Size())
	}

	if err := store.DeleteDir("p1"); err != nil {
		t.Fatalf("DeleteDir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "p1")); !os.IsNotExist(err) {
		t.Errorf("picture directory still present: %v", err)
	}
	if err := store.DeleteDir("p1"); err != nil {
		t.Errorf("second DeleteDir: %v", err)
	}
}

func TestLocalStorageGetMissing(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	_, _, err = store.Get("nope", AssetThumb)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}

func TestLocalStorageUnaddressableIDsAreAbsent(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocalStorage(base)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	for _, id := range []string{"", ".", "..", "../x", "a/b", `a\b`} {
		if _, _, err := store.Get(id, AssetPicture); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Get(%q) err = %v, want os.ErrNotExist", id, err)
		}
		if err := store.DeleteDir(id); err != nil {
			t.Errorf("DeleteDir(%q) = %v, want nil", id, err)
		}
		if _, err := store.Save(id, AssetPicture, strings.NewReader("x")); err == nil {
			t.Errorf("Save(%q) succeeded", id)
		}
	}
	if _, err := os.Stat(base); err != nil {
		t.Fatalf("base directory removed: %v", err)
	}
	if _, err := store.Save("p1", AssetKind("EXE"), strings.NewReader("x")); err == nil {
		t.Errorf("Save with unknown kind succeeded")
	}
}

func TestLocalStorageIDWithDots(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	if _, err := store.Save("m31..v2", AssetThumb, strings.NewReader("thumb")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	rc, _, err := store.Get("m31..v2", AssetThumb)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	rc.Close()
	if err := store.DeleteDir("m31..v2"); err != nil {
		t.Fatalf("DeleteDir: %v", err)
	}
	if _, _, err := store.Get("m31..v2", AssetThumb); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Get after delete err = %v", err)
	}
}

func TestAssetKindContentType(t *testing.T) {
	if AssetRaw.ContentType() != "image/fits" {
		t.Errorf("raw content type = %s", AssetRaw.ContentType())
	}
	for _, k := range []AssetKind{AssetPicture, AssetThumb, AssetAnnotated} {
		if k.ContentType() != "image/jpeg" {
			t.Errorf("%s content type = %s", k, k.ContentType())
		}
	}
}

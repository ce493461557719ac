package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ffremont/astackbackend/logging"
)

// Store defines the interface for saving, retrieving, and deleting picture assets
type Store interface {
	// Save stores data as the given asset of a picture, returns the relative path used
	Save(pictureID string, kind AssetKind, data io.Reader) (string, error)
	// Get retrieves a reader for an asset. The error wraps os.ErrNotExist when the file is missing
	Get(pictureID string, kind AssetKind) (io.ReadCloser, os.FileInfo, error)
	// DeleteDir removes every asset of a picture
	DeleteDir(pictureID string) error
	// GetFullPath returns the absolute filesystem path for a relative asset path
	GetFullPath(relativePath string) (string, error)
}

// LocalStorage implements the Store interface using the local filesystem.
// Assets live in <basePath>/<pictureID>/<asset filename>.
type LocalStorage struct {
	basePath string // absolute path to the MEDIA_STORAGE_PATH
}

// NewLocalStorage creates a new local filesystem store
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	absBasePath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("invalid base storage path '%s': %w", basePath, err)
	}

	if err := os.MkdirAll(absBasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base storage directory '%s': %w", absBasePath, err)
	}

	logging.Info().Str("path", absBasePath).Msg("media.store: initialized LocalStorage")
	return &LocalStorage{basePath: absBasePath}, nil
}

// errInvalidID wraps os.ErrNotExist: an id the store cannot address has no assets
var errInvalidID = fmt.Errorf("picture id cannot map to an asset directory: %w", os.ErrNotExist)

func validPictureID(pictureID string) error {
	if pictureID == "" || pictureID == "." || pictureID == ".." || strings.ContainsAny(pictureID, `/\`) {
		return fmt.Errorf("invalid picture id '%s': %w", pictureID, errInvalidID)
	}
	return nil
}

func (ls *LocalStorage) assetPath(pictureID string, kind AssetKind) (string, error) {
	if err := validPictureID(pictureID); err != nil {
		return "", err
	}
	if !kind.Valid() {
		return "", fmt.Errorf("unknown asset kind '%s'", kind)
	}
	return ls.GetFullPath(filepath.Join(pictureID, kind.Filename()))
}

// Save writes data to the asset file, replacing any previous content.
// Assets are produced by ingestion outside this service; Save is used to seed
// the store and by tests
func (ls *LocalStorage) Save(pictureID string, kind AssetKind, data io.Reader) (string, error) {
	fullSavePath, err := ls.assetPath(pictureID, kind)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullSavePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create picture directory for '%s': %w", pictureID, err)
	}

	outFile, err := os.Create(fullSavePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file '%s': %w", fullSavePath, err)
	}
	defer outFile.Close()

	if _, err = io.Copy(outFile, data); err != nil {
		outFile.Close()
		os.Remove(fullSavePath)
		return "", fmt.Errorf("failed to write data to '%s': %w", fullSavePath, err)
	}

	relativePath, err := filepath.Rel(ls.basePath, fullSavePath)
	if err != nil {
		return "", fmt.Errorf("internal error calculating relative path: %w", err)
	}

	logging.Debug().Str("path", fullSavePath).Msg("media.store: saved asset")
	return filepath.ToSlash(relativePath), nil
}

func (ls *LocalStorage) Get(pictureID string, kind AssetKind) (io.ReadCloser, os.FileInfo, error) {
	fullPath, err := ls.assetPath(pictureID, kind)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("asset %s not found for picture '%s': %w", kind, pictureID, err)
		}
		return nil, nil, fmt.Errorf("failed to open asset %s for picture '%s': %w", kind, pictureID, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, fmt.Errorf("failed to stat asset %s for picture '%s': %w", kind, pictureID, err)
	}

	return file, info, nil
}

// DeleteDir removes the picture directory. A missing directory, or an id
// that cannot name one, is not an error
func (ls *LocalStorage) DeleteDir(pictureID string) error {
	if validPictureID(pictureID) != nil {
		return nil
	}
	dir, err := ls.GetFullPath(pictureID)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete assets of picture '%s': %w", pictureID, err)
	}
	logging.Debug().Str("path", dir).Msg("media.store: deleted picture directory")
	return nil
}

// GetFullPath calculates the absolute path and performs security check
func (ls *LocalStorage) GetFullPath(relativePath string) (string, error) {
	cleanRelativePath := filepath.Clean(relativePath)

	absFullPath, err := filepath.Abs(filepath.Join(ls.basePath, cleanRelativePath))
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for '%s': %w", relativePath, err)
	}

	if absFullPath == ls.basePath || !strings.HasPrefix(absFullPath, ls.basePath+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid path: access denied for '%s'", relativePath)
	}

	return absFullPath, nil
}

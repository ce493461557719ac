package repository

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/ffremont/astackbackend/media"
	"github.com/ffremont/astackbackend/models"
)

// ErrNotFound is returned when a requested asset does not exist
var ErrNotFound = errors.New("not found")

// PictureRepositoryInterface defines the methods for picture data operations
type PictureRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Picture, error)
	// GetByID returns (nil, nil) when no picture has this id
	GetByID(ctx context.Context, id string) (*models.Picture, error)
	// Remove deletes the record and its assets, succeeding when the id is unknown
	Remove(ctx context.Context, id string) error
	Refresh(ctx context.Context, picture *models.Picture) error
	// GetBin opens an asset of the picture, the error wraps ErrNotFound when it is missing
	GetBin(ctx context.Context, id string, kind media.AssetKind) (io.ReadCloser, os.FileInfo, error)
}

// CatalogRepositoryInterface defines the deep-sky catalog lookups
type CatalogRepositoryInterface interface {
	// GetConstellationByAbr returns (nil, nil) when the catalog has no entry
	GetConstellationByAbr(ctx context.Context, abbreviation string) (*models.Constellation, error)
}

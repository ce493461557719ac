package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ffremont/astackbackend/media"
	"github.com/ffremont/astackbackend/models"
)

// PictureRepository handles database operations for Picture entities and
// gives access to their binary assets
type PictureRepository struct {
	DB    *gorm.DB
	Store media.Store
}

// NewPictureRepository creates a new instance of PictureRepository
func NewPictureRepository(db *gorm.DB, store media.Store) *PictureRepository {
	return &PictureRepository{DB: db, Store: store}
}

// Create inserts a new picture. An id is generated when none is set.
// Pictures are ingested outside this service; Create is used to seed the
// database and by tests
func (r *PictureRepository) Create(ctx context.Context, picture *models.Picture) error {
	if picture.ID == "" {
		picture.ID = uuid.NewString()
	}
	if picture.State == "" {
		picture.State = models.PictureStatePending
	}
	now := time.Now().Unix()
	if picture.CreatedAt == 0 {
		picture.CreatedAt = now
	}
	picture.UpdatedAt = now

	if err := r.DB.WithContext(ctx).Create(picture).Error; err != nil {
		return fmt.Errorf("failed to create picture %s: %w", picture.ID, err)
	}
	return nil
}

// GetAll retrieves every picture
func (r *PictureRepository) GetAll(ctx context.Context) ([]models.Picture, error) {
	var pictures []models.Picture
	if err := r.DB.WithContext(ctx).Find(&pictures).Error; err != nil {
		return nil, fmt.Errorf("failed to list pictures: %w", err)
	}
	return pictures, nil
}

// GetByID retrieves a picture by its id, nil when it does not exist
func (r *PictureRepository) GetByID(ctx context.Context, id string) (*models.Picture, error) {
	var picture models.Picture
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&picture).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get picture by id %s: %w", id, err)
	}
	return &picture, nil
}

// Remove deletes the picture row then its asset directory
func (r *PictureRepository) Remove(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Picture{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete picture %s: %w", id, result.Error)
	}

	if err := r.Store.DeleteDir(id); err != nil {
		return fmt.Errorf("failed to delete assets of picture %s: %w", id, err)
	}
	return nil
}

// Refresh writes every column of the picture
func (r *PictureRepository) Refresh(ctx context.Context, picture *models.Picture) error {
	picture.UpdatedAt = time.Now().Unix()
	if err := r.DB.WithContext(ctx).Save(picture).Error; err != nil {
		return fmt.Errorf("failed to refresh picture %s: %w", picture.ID, err)
	}
	return nil
}

// GetBin opens one of the picture assets. The caller closes the reader
func (r *PictureRepository) GetBin(ctx context.Context, id string, kind media.AssetKind) (io.ReadCloser, os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	rc, info, err := r.Store.Get(id, kind)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, nil, err
	}
	return rc, info, nil
}

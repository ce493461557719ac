package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ffremont/astackbackend/database"
	"github.com/ffremont/astackbackend/models"
)

// CatalogRepository reads the deep-sky catalog tables
type CatalogRepository struct {
	DB *sql.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) GetConstellationByAbr(ctx context.Context, abbreviation string) (*models.Constellation, error) {
	c, err := database.GetConstellationByAbr(ctx, r.DB, abbreviation)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

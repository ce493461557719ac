package handlers

import (
	"context"
	"net/http"

	"github.com/ffremont/astackbackend/logging"
	"github.com/ffremont/astackbackend/models"
	"github.com/ffremont/astackbackend/repository"
)

const weatherLabelSuffix = " météo"

// BuildTags collects the tag picker entries of all pictures: persisted tags,
// location, weather, moon phase and constellation. Entries with an empty
// label or code are dropped and duplicates keep their first position.
func BuildTags(ctx context.Context, pictures []models.Picture, catalog repository.CatalogRepositoryInterface) ([]models.WebTag, error) {
	seen := make(map[models.WebTag]struct{})
	tags := make([]models.WebTag, 0)
	add := func(t models.WebTag) {
		if t.Label == "" || t.Code == "" {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}

	// constellation labels looked up during this call
	labels := make(map[string]string)

	for _, p := range pictures {
		for _, t := range p.Tags {
			add(models.WebTag{Label: t, Code: t})
		}
		add(models.WebTag{Label: p.Location, Code: p.Location})
		if p.Weather != "" {
			add(models.WebTag{Label: p.Weather.Label() + weatherLabelSuffix, Code: string(p.Weather)})
		}
		add(models.WebTag{Label: p.MoonPhase.Label(), Code: string(p.MoonPhase)})

		if p.Constellation == "" {
			continue
		}
		label, ok := labels[p.Constellation]
		if !ok {
			c, err := catalog.GetConstellationByAbr(ctx, p.Constellation)
			if err != nil {
				return nil, err
			}
			label = p.Constellation
			if c != nil && c.Label != "" {
				label = c.Label
			}
			labels[p.Constellation] = label
		}
		add(models.WebTag{Label: label, Code: p.Constellation})
	}

	return tags, nil
}

// ListTags returns the distinct tags across all pictures.
func (ph *PictureHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	pictures, err := ph.Pictures.GetAll(r.Context())
	if err != nil {
		logging.Error().Err(err).Msg("error listing pictures for tags")
		WriteAPIError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to retrieve tags")
		return
	}

	tags, err := BuildTags(r.Context(), pictures, ph.Catalog)
	if err != nil {
		logging.Error().Err(err).Msg("error resolving constellation labels")
		WriteAPIError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to retrieve tags")
		return
	}

	writeJSON(w, http.StatusOK, tags)
}

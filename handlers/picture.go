package handlers

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/ffremont/astackbackend/logging"
	"github.com/ffremont/astackbackend/media"
	"github.com/ffremont/astackbackend/metrics"
	"github.com/ffremont/astackbackend/models"
	"github.com/ffremont/astackbackend/repository"
)

// PictureHandler serves the /api/pictures endpoints. It holds no state of
// its own; every request is delegated to the two repositories.
type PictureHandler struct {
	Pictures     repository.PictureRepositoryInterface
	Catalog      repository.CatalogRepositoryInterface
	CacheSeconds int
}

// NewPictureHandler creates a PictureHandler backed by the given repositories
func NewPictureHandler(pictures repository.PictureRepositoryInterface, catalog repository.CatalogRepositoryInterface) *PictureHandler {
	return &PictureHandler{Pictures: pictures, Catalog: catalog}
}

// RegisterPictureRoutes mounts the picture endpoints on r, typically at /api/pictures.
func RegisterPictureRoutes(r chi.Router, ph *PictureHandler) {
	r.Get("/", ph.ListPictures)
	r.Get("/tags", ph.ListTags)
	r.Get("/status", ph.Status)
	r.Put("/{id}", ph.UpdatePicture)
	r.Delete("/{id}", ph.DeletePicture)
	r.Get("/images/{id}", ph.ServeAsset(media.AssetPicture))
	r.Get("/raws/{id}", ph.ServeAsset(media.AssetRaw))
	r.Get("/thumbs/{id}", ph.ServeAsset(media.AssetThumb))
	r.Get("/annotated/{id}", ph.ServeAsset(media.AssetAnnotated))
}

// ListPictures returns every picture with its webTags, newest first.
func (ph *PictureHandler) ListPictures(w http.ResponseWriter, r *http.Request) {
	pictures, err := ph.Pictures.GetAll(r.Context())
	if err != nil {
		logging.Error().Err(err).Msg("error listing pictures")
		WriteAPIError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to retrieve pictures")
		return
	}

	out := make([]models.Picture, 0, len(pictures))
	for _, p := range pictures {
		out = append(out, p.WithWebTags())
	}
	slices.SortStableFunc(out, func(a, b models.Picture) int {
		return b.Compare(a)
	})

	writeJSON(w, http.StatusOK, out)
}

// Status reports DONE when every requested picture is DONE. Unknown ids count as DONE.
func (ph *PictureHandler) Status(w http.ResponseWriter, r *http.Request) {
	ids := r.URL.Query()["id"]
	if len(ids) == 0 {
		WriteAPIError(w, http.StatusBadRequest, ErrCodeMissingID, "At least one 'id' query parameter is required")
		return
	}

	state := models.PictureStateDone
	for _, id := range ids {
		picture, err := ph.Pictures.GetByID(r.Context(), id)
		if err != nil {
			logging.Error().Err(err).Str("id", id).Msg("error fetching picture for status check")
			WriteAPIError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to retrieve picture status")
			return
		}
		if picture != nil && picture.State != models.PictureStateDone {
			state = models.PictureStatePending
			break
		}
	}

	metrics.StatusChecks.WithLabelValues(string(state)).Inc()
	writeJSON(w, http.StatusOK, models.NovaStatus{State: string(state)})
}

// DeletePicture removes a picture and its assets. Unknown ids are accepted silently.
func (ph *PictureHandler) DeletePicture(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := ph.Pictures.Remove(r.Context(), id); err != nil {
		logging.Error().Err(err).Str("id", id).Msg("error deleting picture")
		WriteAPIError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to delete picture")
		return
	}

	logging.Info().Str("id", id).Msg("picture removed")
	w.WriteHeader(http.StatusOK)
}

// UpdatePicture applies the editable fields of the body to the stored picture.
func (ph *PictureHandler) UpdatePicture(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.PicturePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteAPIError(w, http.StatusBadRequest, ErrCodeInvalidBody, "Invalid request body: "+err.Error())
		return
	}
	if err := validateStruct(patch); err != nil {
		WriteAPIError(w, http.StatusUnprocessableEntity, ErrCodeValidation, err.Error())
		return
	}

	original, err := ph.Pictures.GetByID(r.Context(), id)
	if err != nil {
		logging.Error().Err(err).Str("id", id).Msg("error fetching picture for update")
		WriteAPIError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to retrieve picture")
		return
	}
	if original == nil {
		WriteAPIError(w, http.StatusNotFound, ErrCodePictureNotFound, "Picture not found")
		return
	}

	patch.ApplyTo(original)

	if err := ph.Pictures.Refresh(r.Context(), original); err != nil {
		logging.Error().Err(err).Str("id", id).Msg("error refreshing picture")
		WriteAPIError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to update picture")
		return
	}

	w.WriteHeader(http.StatusOK)
}

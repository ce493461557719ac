package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ffremont/astackbackend/logging"
	"github.com/ffremont/astackbackend/media"
	"github.com/ffremont/astackbackend/metrics"
	"github.com/ffremont/astackbackend/repository"
)

// ServeAsset creates a handler streaming one asset kind of the picture named
// by the {id} route parameter. The body is copied from the store without
// buffering the whole file.
func (ph *PictureHandler) ServeAsset(kind media.AssetKind) http.HandlerFunc {
	kindLabel := string(kind)

	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		rc, info, err := ph.Pictures.GetBin(r.Context(), id, kind)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				metrics.AssetRequests.WithLabelValues(kindLabel, "not_found").Inc()
				WriteAPIError(w, http.StatusNotFound, ErrCodeAssetNotFound, fmt.Sprintf("No %s asset for picture '%s'", kindLabel, id))
				return
			}
			metrics.AssetRequests.WithLabelValues(kindLabel, "error").Inc()
			logging.Error().Err(err).Str("id", id).Str("kind", kindLabel).Msg("error opening asset")
			WriteAPIError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to retrieve asset")
			return
		}
		defer rc.Close()

		w.Header().Set("Content-Type", kind.ContentType())
		if info != nil {
			w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
		}
		if ph.CacheSeconds > 0 {
			w.Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", ph.CacheSeconds))
		}
		w.WriteHeader(http.StatusOK)

		n, err := io.Copy(w, rc)
		metrics.AssetBytesServed.WithLabelValues(kindLabel).Add(float64(n))
		metrics.AssetRequests.WithLabelValues(kindLabel, "ok").Inc()
		if err != nil {
			// headers already sent
			logging.Warn().Err(err).Str("id", id).Str("kind", kindLabel).Int64("written", n).Msg("error streaming asset")
		}
	}
}

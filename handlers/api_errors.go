package handlers

import (
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/ffremont/astackbackend/logging"
)

const (
	ErrCodeInvalidBody     = "INVALID_BODY"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeMissingID       = "MISSING_ID"
	ErrCodePictureNotFound = "PICTURE_NOT_FOUND"
	ErrCodeAssetNotFound   = "ASSET_NOT_FOUND"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// APIErrorDetail represents a single error in the standardized error response.
type APIErrorDetail struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// APIErrorResponse represents the standardized error response body.
type APIErrorResponse struct {
	Errors []APIErrorDetail `json:"errors"`
}

// WriteAPIError writes a standardized error response with the given HTTP status, code, and detail.
func WriteAPIError(w http.ResponseWriter, httpStatus int, code string, detail string) {
	resp := APIErrorResponse{
		Errors: []APIErrorDetail{
			{
				Code:   code,
				Status: strconv.Itoa(httpStatus),
				Detail: detail,
			},
		},
	}
	writeJSON(w, httpStatus, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			logging.Error().Err(err).Msg("error encoding JSON response")
		}
	}
}

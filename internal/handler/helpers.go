package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
	"github.com/forumhub-dev/forumhub/internal/validation"
)

// parseIntParam parses an integer parameter from a string and returns a meaningful error
func parseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}
	return val, nil
}

// parseForm parses a size-capped multipart form and checks that every
// required field is present and non-empty. Missing fields are enumerated in
// the returned 400.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request, required ...string) (map[string]string, error) {
	maxRequestSize := validation.CalculateMaxRequestSize(h.cfg.Public.MaxUploadSizeBytes, 1<<20)
	if err := validation.ValidateAndParseMultipart(r, w, maxRequestSize); err != nil {
		if errors.Is(err, validation.ErrPayloadTooLarge) {
			return nil, &internal_errors.ErrorWithStatusCode{
				Message:    err.Error(),
				StatusCode: http.StatusRequestEntityTooLarge,
			}
		}
		return nil, &internal_errors.ErrorWithStatusCode{Message: err.Error(), StatusCode: http.StatusBadRequest}
	}

	values := make(map[string]string, len(required))
	var missing []string
	for _, field := range required {
		v := r.FormValue(field)
		if v == "" {
			missing = append(missing, field)
			continue
		}
		values[field] = v
	}
	if len(missing) > 0 {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message:    "Required form fields missing: " + strings.Join(missing, ", "),
			StatusCode: http.StatusBadRequest,
		}
	}
	return values, nil
}

// imageFromForm validates the optional image part of an already parsed
// multipart form. Returns nil when the field is absent.
func (h *Handler) imageFromForm(r *http.Request, field string) (*domain.PendingFile, func(), error) {
	noop := func() {}
	if r.MultipartForm == nil {
		return nil, noop, nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil, noop, nil
	}

	pending, err := validation.ValidateImage(files[0], h.cfg.Public.AllowedImageMimeTypes)
	if err != nil {
		return nil, noop, &internal_errors.ErrorWithStatusCode{Message: err.Error(), StatusCode: http.StatusBadRequest}
	}

	cleanup := func() {
		if closer, ok := pending.Data.(interface{ Close() error }); ok {
			closer.Close()
		}
	}
	return pending, cleanup, nil
}

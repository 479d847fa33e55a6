package validation

import (
	"fmt"
	"net/http"
)

// ValidateAndParseMultipart validates request size and parses the multipart form.
// MaxBytesReader wraps the body and stops reading when the limit is exceeded,
// so an oversized upload cannot exhaust the server no matter the Content-Length.
func ValidateAndParseMultipart(r *http.Request, w http.ResponseWriter, maxSize int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		return fmt.Errorf("%w: failed to parse multipart form", ErrPayloadTooLarge)
	}

	return nil
}

// CalculateMaxRequestSize returns the maximum request size including a buffer
// (typically 1 MiB) for form fields and multipart overhead.
func CalculateMaxRequestSize(maxUploadSize int64, bufferSize int64) int64 {
	return maxUploadSize + bufferSize
}

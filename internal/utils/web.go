package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/forumhub-dev/forumhub/internal/errors"
	"github.com/forumhub-dev/forumhub/internal/logger"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		http.Error(w, err.Error(), e.StatusCode)
		return
	}
	// default error is 500
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeValidate decodes a JSON body into dst and validates it against its
// struct tags. Validation failures are reported as a 400 naming the
// offending fields.
func DecodeValidate(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json: " + err.Error(), StatusCode: http.StatusBadRequest}
	}
	if err := validate.Struct(dst); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
		}
		logger.Log.Debug("request body validation failed", "fields", fields)
		return &errors.ErrorWithStatusCode{
			Message:    "Required fields missing or invalid: " + strings.Join(fields, ", "),
			StatusCode: http.StatusBadRequest,
		}
	}
	return nil
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/regexbook/pkg/pattern"
	"github.com/dmitrymomot/regexbook/pkg/snippet"
	"github.com/dmitrymomot/regexbook/pkg/validator"
)

// Response is the JSON envelope for every endpoint.
type Response struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

var (
	errBadRequest = errors.New("malformed request body")
	errNotFound   = errors.New("not found")
)

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any, meta map[string]any) {
	writeJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// writeError maps err onto a status code and error envelope.
func writeError(w http.ResponseWriter, err error) {
	status, detail := errorToDetail(err)
	writeJSON(w, status, Response{Error: detail})
}

func errorToDetail(err error) (int, *ErrorDetail) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		details := make(map[string][]string, len(verrs))
		for _, field := range verrs.Fields() {
			details[field] = verrs.Get(field)
		}
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_error",
			Message: err.Error(),
			Details: details,
		}
	}

	switch {
	case errors.Is(err, pattern.ErrUnknownDomain):
		return http.StatusNotFound, &ErrorDetail{Code: "unknown_domain", Message: err.Error()}
	case errors.Is(err, pattern.ErrUnknownVariant):
		return http.StatusNotFound, &ErrorDetail{Code: "unknown_variant", Message: err.Error()}
	case errors.Is(err, snippet.ErrUnknownLanguage):
		return http.StatusNotFound, &ErrorDetail{Code: "unknown_language", Message: err.Error()}
	case errors.Is(err, errNotFound):
		return http.StatusNotFound, &ErrorDetail{Code: "not_found", Message: err.Error()}
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, &ErrorDetail{Code: "bad_request", Message: err.Error()}
	case errors.Is(err, pattern.ErrPatternCompile):
		return http.StatusInternalServerError, &ErrorDetail{Code: "pattern_compile_error", Message: err.Error()}
	default:
		return http.StatusInternalServerError, &ErrorDetail{Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/vocab/internal/vocab/service"
	"github.com/aussiebroadwan/vocab/pkg/httpx"
	"github.com/aussiebroadwan/vocab/pkg/slogx"
	"github.com/aussiebroadwan/vocab/pkg/vocabsdk"
)

// writeServiceError maps a service error onto the API error taxonomy.
// Anything unrecognised is logged and reported as a server error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		vocabsdk.ErrValidation.WithMessage(verr.Message).WriteError(w)
	case errors.Is(err, service.ErrValidation):
		vocabsdk.ErrValidation.WriteError(w)
	case errors.Is(err, service.ErrUnauthenticated):
		vocabsdk.ErrUnauthenticated.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		vocabsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		vocabsdk.ErrForbidden.WriteError(w)
	case errors.Is(err, service.ErrEmailTaken):
		vocabsdk.ErrEmailTaken.WriteError(w)
	case errors.Is(err, service.ErrConflict):
		vocabsdk.ErrConflict.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		vocabsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrSpeechUnavailable):
		slogx.FromContext(r.Context()).Warn("speech upstream failed", "err", err)
		vocabsdk.ErrSpeechUnavailable.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		vocabsdk.ErrServerError.WriteError(w)
	}
}

// decodeBody decodes a JSON body, writing a validation error on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		vocabsdk.ErrValidation.WithMessage(err.Error()).WriteError(w)
		return false
	}
	return true
}

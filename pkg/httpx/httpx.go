package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
	"github.com/dwikikusuma/comics-storefront/pkg/restclient"
)

// StatusFromError maps an error to the HTTP status, stable code and message the gateway reports.
func StatusFromError(err error) (int, string, string) {
	var reqErr *restclient.RequestError
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized, "UNAUTHENTICATED", "sign in required"
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", err.Error()
	case errors.Is(err, apperr.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT", err.Error()
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.As(err, &reqErr):
		return http.StatusBadGateway, "UPSTREAM", reqErr.Message
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Warn("write response failed", slog.Any("err", err))
	}
}

func WriteError(w http.ResponseWriter, err error) {
	status, code, msg := StatusFromError(err)
	if status == http.StatusInternalServerError {
		slog.Default().Error("request failed", slog.Any("err", err))
	}
	WriteJSON(w, status, map[string]string{"code": code, "error": msg})
}

// DecodeJSON reads the request body into v, reporting malformed input as ErrInvalidInput.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(apperr.ErrInvalidInput, err)
	}
	return nil
}

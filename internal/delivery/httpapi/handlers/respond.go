package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/craftlane/storefront-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrPromotionNotFound), errors.Is(err, domain.ErrProductNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrInvalidScope),
		errors.Is(err, domain.ErrInvalidReduction),
		errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrCodeRequired):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Aidos2284/Wish_Fund/pkg/apperrors"
	"github.com/sirupsen/logrus"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

// respondError maps service errors to status codes: NotFound to 404,
// Forbidden to 403, Invalid to 400, everything else is logged and
// becomes a generic 500 so internal details never leak.
func respondError(w http.ResponseWriter, err error, fallback string) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperrors.KindNotFound:
			http.Error(w, appErr.Message, http.StatusNotFound)
		case apperrors.KindForbidden:
			http.Error(w, appErr.Message, http.StatusForbidden)
		case apperrors.KindInvalid:
			http.Error(w, appErr.Message, http.StatusBadRequest)
		default:
			http.Error(w, appErr.Message, http.StatusInternalServerError)
		}
		return
	}

	logrus.WithError(err).Error(fallback)
	http.Error(w, fallback, http.StatusInternalServerError)
}

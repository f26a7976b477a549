package rpmdata

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/saulo-duarte/rpm-planner/internal/auth"
	"github.com/saulo-duarte/rpm-planner/internal/config"
)

const maxBlobSize = 8 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.UserID)
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBlobSize))
	if err != nil {
		log.WithError(err).Warn("Failed to read rpm data body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Upload(userID, body); err != nil {
		if errors.Is(err, ErrInvalidBlob) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to store rpm data")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.WithField("user_id", userID).Info("RPM data uploaded")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	blob, err := h.service.Download(userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load rpm data")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/Daniyar457/Legacy_Vault/internal/services"
	"github.com/Daniyar457/Legacy_Vault/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// WellBeingHandler handles check-ins and well-being settings.
type WellBeingHandler struct {
	Service *services.WellBeingService
}

// NewWellBeingHandler creates a new instance of WellBeingHandler.
func NewWellBeingHandler(service *services.WellBeingService) *WellBeingHandler {
	return &WellBeingHandler{Service: service}
}

// CheckInHandler records a well-being check-in, resetting the missed counter.
func (h *WellBeingHandler) CheckInHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if principal.IsAdministrator() {
		http.Error(w, "The administrator account has no check-ins", http.StatusForbidden)
		return
	}

	if err := h.Service.RecordCheckIn(r.Context(), principal.UserID); err != nil {
		log.WithError(err).Error("Failed to record check-in")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Check-in recorded"})
}

// GetSettingsHandler returns the authenticated user's well-being settings.
func (h *WellBeingHandler) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if principal.IsAdministrator() {
		http.Error(w, "The administrator account has no well-being settings", http.StatusForbidden)
		return
	}

	settings, err := h.Service.GetSettings(r.Context(), principal.UserID)
	if err != nil {
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

// UpdateSettingsHandler validates and applies a settings change.
func (h *WellBeingHandler) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if principal.IsAdministrator() {
		http.Error(w, "The administrator account has no well-being settings", http.StatusForbidden)
		return
	}

	var settings models.WellBeingSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.Service.UpdateSettings(r.Context(), principal.UserID, settings); err != nil {
		log.WithError(err).Warn("Failed to update well-being settings")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	updated, err := h.Service.GetSettings(r.Context(), principal.UserID)
	if err != nil {
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/Daniyar457/Legacy_Vault/internal/services"
	"github.com/Daniyar457/Legacy_Vault/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// MoodHandler handles HTTP requests for the wellness log.
type MoodHandler struct {
	Service *services.MoodService
}

// NewMoodHandler creates a new instance of MoodHandler.
func NewMoodHandler(service *services.MoodService) *MoodHandler {
	return &MoodHandler{Service: service}
}

// CreateMoodEntryHandler appends a mood entry.
func (h *MoodHandler) CreateMoodEntryHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var entry models.MoodEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.CreateEntry(r.Context(), principal, &entry)
	if err != nil {
		log.WithError(err).Warn("Failed to create mood entry")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetMoodEntriesHandler lists the authenticated user's mood entries,
// most recent first.
func (h *MoodHandler) GetMoodEntriesHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	entries, err := h.Service.GetEntries(r.Context(), principal, limit)
	if err != nil {
		http.Error(w, "Failed to get mood entries", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/Daniyar457/Legacy_Vault/internal/services"
	"github.com/Daniyar457/Legacy_Vault/pkg/middleware"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// NomineeHandler handles HTTP requests related to nominees.
type NomineeHandler struct {
	Service *services.NomineeService
}

// NewNomineeHandler creates a new instance of NomineeHandler.
func NewNomineeHandler(service *services.NomineeService) *NomineeHandler {
	return &NomineeHandler{Service: service}
}

// CreateNomineeHandler creates a nominee for the authenticated user.
func (h *NomineeHandler) CreateNomineeHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var nominee models.Nominee
	if err := json.NewDecoder(r.Body).Decode(&nominee); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.CreateNominee(r.Context(), principal, &nominee)
	if err != nil {
		log.WithError(err).Warn("Failed to create nominee")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetNomineesHandler lists the authenticated user's nominees.
func (h *NomineeHandler) GetNomineesHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	nominees, err := h.Service.GetNominees(r.Context(), principal)
	if err != nil {
		http.Error(w, "Failed to get nominees", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(nominees)
}

// GetNomineeHandler fetches a single nominee.
func (h *NomineeHandler) GetNomineeHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := parseObjectID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid nominee ID", http.StatusBadRequest)
		return
	}

	nominee, err := h.Service.GetNominee(r.Context(), principal, id)
	if err != nil {
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(nominee)
}

// UpdateNomineeHandler updates a nominee.
func (h *NomineeHandler) UpdateNomineeHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := parseObjectID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid nominee ID", http.StatusBadRequest)
		return
	}

	var update map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	nominee, err := h.Service.UpdateNominee(r.Context(), principal, id, update)
	if err != nil {
		log.WithError(err).Warn("Failed to update nominee")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(nominee)
}

// DeleteNomineeHandler deletes a nominee.
func (h *NomineeHandler) DeleteNomineeHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := parseObjectID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid nominee ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteNominee(r.Context(), principal, id); err != nil {
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Nominee deleted"})
}

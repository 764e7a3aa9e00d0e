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

// AssetHandler handles HTTP requests related to asset records.
type AssetHandler struct {
	Service *services.AssetService
}

// NewAssetHandler creates a new instance of AssetHandler.
func NewAssetHandler(service *services.AssetService) *AssetHandler {
	return &AssetHandler{Service: service}
}

// CreateAssetHandler creates an asset for the authenticated user.
func (h *AssetHandler) CreateAssetHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var asset models.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.CreateAsset(r.Context(), principal, &asset)
	if err != nil {
		log.WithError(err).Warn("Failed to create asset")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetAssetsHandler lists the authenticated user's assets.
func (h *AssetHandler) GetAssetsHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	assets, err := h.Service.GetAssets(r.Context(), principal)
	if err != nil {
		http.Error(w, "Failed to get assets", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(assets)
}

// GetAssetHandler fetches a single asset.
func (h *AssetHandler) GetAssetHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := parseObjectID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid asset ID", http.StatusBadRequest)
		return
	}

	asset, err := h.Service.GetAsset(r.Context(), principal, id)
	if err != nil {
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(asset)
}

// UpdateAssetHandler updates an asset.
func (h *AssetHandler) UpdateAssetHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := parseObjectID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid asset ID", http.StatusBadRequest)
		return
	}

	var update map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	asset, err := h.Service.UpdateAsset(r.Context(), principal, id, update)
	if err != nil {
		log.WithError(err).Warn("Failed to update asset")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(asset)
}

// DeleteAssetHandler deletes an asset.
func (h *AssetHandler) DeleteAssetHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := parseObjectID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid asset ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteAsset(r.Context(), principal, id); err != nil {
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Asset deleted"})
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/Daniyar457/Legacy_Vault/internal/services"
	"github.com/Daniyar457/Legacy_Vault/pkg/middleware"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// AdminHandler exposes the escalation review surface and the admin action log.
type AdminHandler struct {
	WellBeing *services.WellBeingService
	Admin     *services.AdminService
	Activity  *services.ActivityService
}

// NewAdminHandler creates a new instance of AdminHandler.
func NewAdminHandler(wellBeing *services.WellBeingService, admin *services.AdminService, activity *services.ActivityService) *AdminHandler {
	return &AdminHandler{
		WellBeing: wellBeing,
		Admin:     admin,
		Activity:  activity,
	}
}

// ListExceededHandler returns users whose missed counter has reached their
// threshold, for human review.
func (h *AdminHandler) ListExceededHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.WellBeing.ListExceeded(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list exceeded users")
		http.Error(w, "Failed to list exceeded users", http.StatusInternalServerError)
		return
	}

	type flagged struct {
		User            models.PublicUser `json:"user"`
		MissedCount     int               `json:"missed_count"`
		MaxMissedAlerts int               `json:"max_missed_alerts"`
	}

	out := make([]flagged, 0, len(users))
	for _, user := range users {
		out = append(out, flagged{
			User:            user.Public(),
			MissedCount:     user.WellBeing.MissedCount,
			MaxMissedAlerts: user.WellBeing.MaxMissedAlerts,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// CreateActionHandler records an administrative decision about a user.
func (h *AdminHandler) CreateActionHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		TargetID    string `json:"target_id"`
		ActionType  string `json:"action_type"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	targetID, err := parseObjectID(req.TargetID)
	if err != nil {
		http.Error(w, "Invalid target ID", http.StatusBadRequest)
		return
	}

	action, err := h.Admin.CreateAction(r.Context(), claims.Email, targetID, req.ActionType, req.Description)
	if err != nil {
		log.WithError(err).Warn("Failed to create admin action")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(action)
}

// ResolveActionHandler completes or cancels a pending action.
func (h *AdminHandler) ResolveActionHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := parseObjectID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid action ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	action, err := h.Admin.ResolveAction(r.Context(), claims.Email, id, req.Status)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve admin action")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(action)
}

// GetActionsHandler lists admin actions, optionally filtered by status.
func (h *AdminHandler) GetActionsHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	actions, err := h.Admin.GetActions(r.Context(), r.URL.Query().Get("status"), limit)
	if err != nil {
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(actions)
}

// GetUserActionsHandler lists the actions recorded against one user.
func (h *AdminHandler) GetUserActionsHandler(w http.ResponseWriter, r *http.Request) {
	targetID, err := parseObjectID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	actions, err := h.Admin.GetActionsForUser(r.Context(), targetID)
	if err != nil {
		http.Error(w, "Failed to get admin actions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(actions)
}

// GetActivityLogHandler lists audit trail entries for the admin dashboard.
func (h *AdminHandler) GetActivityLogHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	entries, err := h.Activity.GetEntries(r.Context(),
		r.URL.Query().Get("category"),
		r.URL.Query().Get("severity"),
		limit)
	if err != nil {
		http.Error(w, "Failed to get activity log", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Daniyar457/Legacy_Vault/internal/config"
	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/Daniyar457/Legacy_Vault/internal/services"
	jwtutil "github.com/Daniyar457/Legacy_Vault/pkg/jwt"
	"github.com/Daniyar457/Legacy_Vault/pkg/middleware"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// UserHandler handles HTTP requests related to accounts and authentication.
type UserHandler struct {
	Service *services.UserService
	Config  *config.Config
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(service *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		Service: service,
		Config:  cfg,
	}
}

// InitiateRegistrationHandler handles phase 1 of registration.
func (h *UserHandler) InitiateRegistrationHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"full_name"`
		Mobile   string `json:"mobile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	token, err := h.Service.InitiateRegistration(r.Context(), req.FullName, req.Mobile)
	if err != nil {
		log.WithError(err).Warn("Failed to initiate registration")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"registration_token": token})
}

// CompleteRegistrationHandler handles phase 2 of registration.
func (h *UserHandler) CompleteRegistrationHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RegistrationToken string `json:"registration_token"`
		Email             string `json:"email"`
		Password          string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	user, err := h.Service.CompleteRegistration(r.Context(), req.RegistrationToken, req.Email, req.Password)
	if err != nil {
		log.WithError(err).Warn("Failed to complete registration")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user.Public())
}

// LoginHandler authenticates a principal and issues a token.
func (h *UserHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	user, kind, err := h.Service.Authenticate(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		log.WithField("email", credentials.Email).Warn("Authentication failed")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	var token string
	if kind == models.PrincipalAdministrator {
		token, err = jwtutil.GenerateToken("", credentials.Email, "admin", string(kind), h.Config.JWTSecret, h.Config.TokenExpiry)
	} else {
		token, err = jwtutil.GenerateToken(user.ID.Hex(), user.Email, user.Role, string(kind), h.Config.JWTSecret, h.Config.TokenExpiry)
	}
	if err != nil {
		log.WithError(err).Error("Failed to generate JWT token")
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{"token": token}
	if user != nil {
		response["user"] = user.Public()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetMeHandler returns the profile of the authenticated user.
func (h *UserHandler) GetMeHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if principal.IsAdministrator() {
		// The administrator has no users document.
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"kind": string(models.PrincipalAdministrator), "email": claims.Email})
		return
	}

	user, err := h.Service.GetUser(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// UpdateMeHandler updates the authenticated user's profile.
func (h *UserHandler) UpdateMeHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if principal.IsAdministrator() {
		http.Error(w, "The administrator account has no profile", http.StatusForbidden)
		return
	}

	var req struct {
		FullName string `json:"full_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	user, err := h.Service.UpdateProfile(r.Context(), principal.UserID, req.FullName)
	if err != nil {
		log.WithError(err).Error("Failed to update profile")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// AdminGetAllUsersHandler lists every account for the admin dashboard.
func (h *UserHandler) AdminGetAllUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAllUsers(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to fetch users")
		http.Error(w, "Failed to retrieve users", http.StatusInternalServerError)
		return
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(public)
}

// AdminUpdateStatusHandler changes an account's status.
func (h *UserHandler) AdminUpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	targetID, err := parseObjectID(vars["id"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateStatus(r.Context(), targetID, req.Status, claims.Email); err != nil {
		log.WithError(err).Warn("Failed to update account status")
		http.Error(w, err.Error(), services.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": req.Status})
}

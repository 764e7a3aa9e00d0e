package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	mobileRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// UserStore is the persistence surface for user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByMobile(ctx context.Context, mobile string) (*models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) error
	GetAllUsers(ctx context.Context) ([]*models.User, error)
}

// RegistrationStore holds phase-1 registration payloads until phase 2
// consumes them or they expire.
type RegistrationStore interface {
	Save(ctx context.Context, token string, pending models.PendingRegistration) error
	Get(ctx context.Context, token string) (*models.PendingRegistration, error)
	Delete(ctx context.Context, token string) error
}

// ActivityRecorder appends audit trail entries.
type ActivityRecorder interface {
	Record(ctx context.Context, entry *models.ActivityLog) error
}

// UserService encapsulates registration, authentication and account logic.
type UserService struct {
	users         UserStore
	registrations RegistrationStore
	activity      ActivityRecorder
	adminEmail    string
	adminPassword string
}

// NewUserService creates a new instance of UserService. The admin credentials
// identify the platform administrator principal, which has no users document.
func NewUserService(users UserStore, registrations RegistrationStore, activity ActivityRecorder, adminEmail, adminPassword string) *UserService {
	return &UserService{
		users:         users,
		registrations: registrations,
		activity:      activity,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// InitiateRegistration runs phase 1 of registration: it validates the
// identity fields, rejects mobiles already in use, and returns a correlation
// token under which the payload is held until phase 2.
func (s *UserService) InitiateRegistration(ctx context.Context, fullName, mobile string) (string, error) {
	if fullName == "" {
		return "", ErrValidation("full_name is required")
	}
	if !mobileRegex.MatchString(mobile) {
		return "", ErrValidation("invalid mobile number")
	}

	existing, err := s.users.GetUserByMobile(ctx, mobile)
	if err != nil {
		return "", fmt.Errorf("failed to check mobile: %v", err)
	}
	if existing != nil {
		logrus.WithField("mobile", mobile).Warn("Mobile already registered")
		return "", ErrConflict("mobile number already registered")
	}

	token := uuid.NewString()
	pending := models.PendingRegistration{FullName: fullName, Mobile: mobile}
	if err := s.registrations.Save(ctx, token, pending); err != nil {
		return "", fmt.Errorf("failed to save pending registration: %v", err)
	}

	logrus.WithField("token", token).Info("Registration initiated")
	return token, nil
}

// CompleteRegistration runs phase 2: it resolves the correlation token,
// re-checks both uniqueness constraints, and creates the account. Both
// duplicate cases are rejected before any write, with distinguishable errors.
func (s *UserService) CompleteRegistration(ctx context.Context, token, email, password string) (*models.User, error) {
	pending, err := s.registrations.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up registration: %v", err)
	}
	if pending == nil {
		return nil, ErrValidation("registration expired or unknown, start over")
	}

	if !emailRegex.MatchString(email) {
		return nil, ErrValidation("invalid email format")
	}
	if len(password) < 8 {
		return nil, ErrValidation("password must be at least 8 characters")
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %v", err)
	}
	if existing != nil {
		return nil, ErrConflict("email already registered")
	}

	// The mobile may have been taken since phase 1.
	existing, err = s.users.GetUserByMobile(ctx, pending.Mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to check mobile: %v", err)
	}
	if existing != nil {
		return nil, ErrConflict("mobile number already registered")
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		FullName:       pending.FullName,
		Mobile:         pending.Mobile,
		Email:          email,
		HashedPassword: string(hashedPwd),
		Role:           "user",
		Status:         models.StatusActive,
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %v", err)
	}

	if err := s.registrations.Delete(ctx, token); err != nil {
		logrus.WithError(err).Warn("Failed to delete consumed registration token")
	}

	s.recordActivity(ctx, &models.ActivityLog{
		Category:    models.CategoryUser,
		Action:      "user_registered",
		Description: fmt.Sprintf("User %s completed registration", created.Email),
		UserID:      &created.ID,
	})

	logrus.WithField("userID", created.ID.Hex()).Info("User registered successfully")
	return created, nil
}

// Authenticate verifies credentials and returns the matching principal. The
// configured administrator credentials resolve to the administrator principal
// without touching the users collection.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, models.PrincipalKind, error) {
	if s.adminEmail != "" && email == s.adminEmail {
		if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1 {
			s.recordActivity(ctx, &models.ActivityLog{
				Category:   models.CategorySecurity,
				Action:     "admin_login",
				AdminEmail: s.adminEmail,
			})
			return nil, models.PrincipalAdministrator, nil
		}
		return nil, "", ErrUnauthorized("invalid credentials")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to authenticate: %v", err)
	}
	if user == nil {
		return nil, "", ErrUnauthorized("invalid credentials")
	}

	if user.Status != models.StatusActive {
		logrus.WithField("userID", user.ID.Hex()).Warn("Login attempt on non-active account")
		return nil, "", ErrForbidden("account is " + user.Status)
	}

	// OAuth-created accounts have no password and cannot log in this way.
	if user.HashedPassword == "" {
		return nil, "", ErrUnauthorized("account has no password, use your identity provider")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		s.recordActivity(ctx, &models.ActivityLog{
			Category:    models.CategorySecurity,
			Action:      "login_failed",
			Description: "Invalid password",
			Severity:    models.SeverityWarning,
			UserID:      &user.ID,
		})
		return nil, "", ErrUnauthorized("invalid credentials")
	}

	logrus.WithField("userID", user.ID.Hex()).Info("User authenticated successfully")
	return user, models.PrincipalUser, nil
}

// GetUser retrieves a user by hex ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrValidation("invalid user ID")
	}

	user, err := s.users.GetUserByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	if user == nil {
		return nil, ErrNotFound("user not found")
	}
	return user, nil
}

// UpdateProfile updates the mutable profile fields of a user.
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, fullName string) (*models.User, error) {
	if fullName == "" {
		return nil, ErrValidation("full_name is required")
	}

	if err := s.users.UpdateUser(ctx, id, map[string]interface{}{"full_name": fullName}); err != nil {
		return nil, fmt.Errorf("failed to update user: %v", err)
	}

	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %v", err)
	}
	if user == nil {
		return nil, ErrNotFound("user not found")
	}
	return user, nil
}

// UpdateStatus changes an account's status. Accounts are never hard-deleted;
// deactivation is a status flag.
func (s *UserService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, adminEmail string) error {
	switch status {
	case models.StatusActive, models.StatusSuspended, models.StatusDeactivated:
	default:
		return ErrValidation("status must be active, suspended or deactivated")
	}

	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load user: %v", err)
	}
	if user == nil {
		return ErrNotFound("user not found")
	}

	if err := s.users.UpdateUser(ctx, id, map[string]interface{}{"status": status}); err != nil {
		return fmt.Errorf("failed to update status: %v", err)
	}

	s.recordActivity(ctx, &models.ActivityLog{
		Category:    models.CategoryAdmin,
		Action:      "status_changed",
		Description: fmt.Sprintf("Account status changed from %s to %s", user.Status, status),
		Severity:    models.SeverityWarning,
		UserID:      &id,
		AdminEmail:  adminEmail,
	})

	logrus.WithFields(logrus.Fields{
		"userID": id.Hex(),
		"status": status,
	}).Info("Account status updated")
	return nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.GetAllUsers(ctx)
}

func (s *UserService) recordActivity(ctx context.Context, entry *models.ActivityLog) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Record(ctx, entry); err != nil {
		logrus.WithError(err).Warn("Failed to record activity entry")
	}
}

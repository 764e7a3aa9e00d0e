package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// NomineeStore is the persistence surface for nominees.
type NomineeStore interface {
	CreateNominee(ctx context.Context, nominee *models.Nominee) (*models.Nominee, error)
	GetNomineeByID(ctx context.Context, id primitive.ObjectID) (*models.Nominee, error)
	GetNomineesByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Nominee, error)
	UpdateNominee(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) error
	DeleteNominee(ctx context.Context, id primitive.ObjectID) error
}

// UserFinder is the minimal lookup needed for ownership existence checks.
type UserFinder interface {
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// NomineeService handles business logic for nominees.
type NomineeService struct {
	nominees NomineeStore
	users    UserFinder
}

// NewNomineeService creates a new instance of NomineeService.
func NewNomineeService(nominees NomineeStore, users UserFinder) *NomineeService {
	return &NomineeService{
		nominees: nominees,
		users:    users,
	}
}

// CreateNominee creates a nominee for the owning user. The owner must exist;
// nothing is written otherwise.
func (s *NomineeService) CreateNominee(ctx context.Context, principal models.Principal, nominee *models.Nominee) (*models.Nominee, error) {
	if principal.IsAdministrator() {
		return nil, ErrForbidden("the administrator account cannot own nominees")
	}

	if nominee.FullName == "" {
		return nil, ErrValidation("full_name is required")
	}
	if !mobileRegex.MatchString(nominee.Mobile) {
		return nil, ErrValidation("invalid mobile number")
	}
	if nominee.Email != "" && !emailRegex.MatchString(nominee.Email) {
		return nil, ErrValidation("invalid email format")
	}

	owner, err := s.users.GetUserByID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check owner: %v", err)
	}
	if owner == nil {
		return nil, ErrNotFound("user not found")
	}

	nominee.UserID = principal.UserID
	nominee.Verified = false

	created, err := s.nominees.CreateNominee(ctx, nominee)
	if err != nil {
		return nil, fmt.Errorf("failed to create nominee: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"nomineeID": created.ID.Hex(),
		"userID":    principal.UserID.Hex(),
	}).Info("Nominee created")
	return created, nil
}

// GetNominees returns all nominees owned by the principal. The administrator
// principal owns no per-user records, so the query short-circuits.
func (s *NomineeService) GetNominees(ctx context.Context, principal models.Principal) ([]models.Nominee, error) {
	if principal.IsAdministrator() {
		return []models.Nominee{}, nil
	}
	return s.nominees.GetNomineesByUser(ctx, principal.UserID)
}

// GetNominee returns a single nominee, enforcing ownership.
func (s *NomineeService) GetNominee(ctx context.Context, principal models.Principal, id primitive.ObjectID) (*models.Nominee, error) {
	if principal.IsAdministrator() {
		return nil, ErrNotFound("nominee not found")
	}

	nominee, err := s.nominees.GetNomineeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get nominee: %v", err)
	}
	if nominee == nil || nominee.UserID != principal.UserID {
		return nil, ErrNotFound("nominee not found")
	}
	return nominee, nil
}

// UpdateNominee updates a nominee's fields, enforcing ownership.
func (s *NomineeService) UpdateNominee(ctx context.Context, principal models.Principal, id primitive.ObjectID, update map[string]interface{}) (*models.Nominee, error) {
	if _, err := s.GetNominee(ctx, principal, id); err != nil {
		return nil, err
	}

	if mobile, ok := update["mobile"].(string); ok && !mobileRegex.MatchString(mobile) {
		return nil, ErrValidation("invalid mobile number")
	}

	// Ownership and verification are not user-writable.
	delete(update, "user_id")
	delete(update, "verified")

	err := s.nominees.UpdateNominee(ctx, id, update)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound("nominee not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update nominee: %v", err)
	}

	return s.GetNominee(ctx, principal, id)
}

// DeleteNominee removes a nominee, enforcing ownership.
func (s *NomineeService) DeleteNominee(ctx context.Context, principal models.Principal, id primitive.ObjectID) error {
	if _, err := s.GetNominee(ctx, principal, id); err != nil {
		return err
	}

	err := s.nominees.DeleteNominee(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound("nominee not found")
	}
	if err != nil {
		return fmt.Errorf("failed to delete nominee: %v", err)
	}
	return nil
}

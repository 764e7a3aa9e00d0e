package services

import (
	"context"
	"fmt"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminActionStore is the persistence surface for admin audit records.
type AdminActionStore interface {
	CreateAction(ctx context.Context, action *models.AdminAction) (*models.AdminAction, error)
	GetActionByID(ctx context.Context, id primitive.ObjectID) (*models.AdminAction, error)
	UpdateActionStatus(ctx context.Context, id primitive.ObjectID, status string) error
	GetActions(ctx context.Context, status string, limit int64) ([]models.AdminAction, error)
	GetActionsByTarget(ctx context.Context, targetID primitive.ObjectID) ([]models.AdminAction, error)
}

// AdminService records administrative decisions about flagged users. The
// system never acts on its own: escalation only surfaces candidates, and a
// human records the outcome here.
type AdminService struct {
	actions  AdminActionStore
	users    UserFinder
	activity ActivityRecorder
}

// NewAdminService creates a new instance of AdminService.
func NewAdminService(actions AdminActionStore, users UserFinder, activity ActivityRecorder) *AdminService {
	return &AdminService{
		actions:  actions,
		users:    users,
		activity: activity,
	}
}

// CreateAction records a pending administrative decision about a user.
func (s *AdminService) CreateAction(ctx context.Context, adminEmail string, targetID primitive.ObjectID, actionType, description string) (*models.AdminAction, error) {
	if actionType == "" {
		return nil, ErrValidation("action_type is required")
	}

	target, err := s.users.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to check target user: %v", err)
	}
	if target == nil {
		return nil, ErrNotFound("target user not found")
	}

	action := &models.AdminAction{
		TargetID:    targetID,
		AdminEmail:  adminEmail,
		ActionType:  actionType,
		Description: description,
		Status:      models.ActionPending,
	}

	created, err := s.actions.CreateAction(ctx, action)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin action: %v", err)
	}

	s.recordActivity(ctx, &models.ActivityLog{
		Category:    models.CategoryAdmin,
		Action:      "admin_action_created",
		Description: fmt.Sprintf("Admin action %s (%s) opened", created.ID.Hex(), actionType),
		UserID:      &targetID,
		AdminEmail:  adminEmail,
	})

	logrus.WithFields(logrus.Fields{
		"actionID": created.ID.Hex(),
		"targetID": targetID.Hex(),
		"type":     actionType,
	}).Info("Admin action created")
	return created, nil
}

// ResolveAction transitions an action from pending to completed or cancelled.
// Any other transition is rejected; actions are never deleted.
func (s *AdminService) ResolveAction(ctx context.Context, adminEmail string, id primitive.ObjectID, status string) (*models.AdminAction, error) {
	if status != models.ActionCompleted && status != models.ActionCancelled {
		return nil, ErrValidation("status must be completed or cancelled")
	}

	action, err := s.actions.GetActionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin action: %v", err)
	}
	if action == nil {
		return nil, ErrNotFound("admin action not found")
	}

	if action.Status != models.ActionPending {
		return nil, ErrValidation("only pending actions can be resolved")
	}

	if err := s.actions.UpdateActionStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to resolve admin action: %v", err)
	}

	s.recordActivity(ctx, &models.ActivityLog{
		Category:    models.CategoryAdmin,
		Action:      "admin_action_resolved",
		Description: fmt.Sprintf("Admin action %s resolved as %s", id.Hex(), status),
		UserID:      &action.TargetID,
		AdminEmail:  adminEmail,
	})

	action.Status = status
	return action, nil
}

// GetActions lists admin actions for review, newest first.
func (s *AdminService) GetActions(ctx context.Context, status string, limit int64) ([]models.AdminAction, error) {
	if status != "" && status != models.ActionPending && status != models.ActionCompleted && status != models.ActionCancelled {
		return nil, ErrValidation("invalid status filter")
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.actions.GetActions(ctx, status, limit)
}

// GetActionsForUser lists the decisions recorded against one user.
func (s *AdminService) GetActionsForUser(ctx context.Context, targetID primitive.ObjectID) ([]models.AdminAction, error) {
	return s.actions.GetActionsByTarget(ctx, targetID)
}

func (s *AdminService) recordActivity(ctx context.Context, entry *models.ActivityLog) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Record(ctx, entry); err != nil {
		logrus.WithError(err).Warn("Failed to record activity entry")
	}
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository handles database operations related to users.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

// CreateUser inserts a new user into the database.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert user into database")
		return nil, fmt.Errorf("failed to insert user: %v", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("failed to cast inserted ID")
	}
	user.ID = insertedID

	logrus.WithField("userID", user.ID.Hex()).Info("User inserted successfully")
	return user, nil
}

// GetUserByEmail retrieves a user by email. Returns (nil, nil) when no user
// has the given email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %v", err)
	}
	return &user, nil
}

// GetUserByMobile retrieves a user by mobile number. Returns (nil, nil) when
// no user has the given number.
func (r *UserRepository) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"mobile": mobile}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by mobile: %v", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by their ID. Returns (nil, nil) when the user
// does not exist.
func (r *UserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %v", err)
	}
	return &user, nil
}

// UpdateUser applies a partial update to a user document.
func (r *UserRepository) UpdateUser(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) error {
	update["updated_at"] = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"userID": id.Hex(),
			"error":  err,
		}).Error("Failed to update user")
		return fmt.Errorf("failed to update user: %v", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", id.Hex())
	}
	return nil
}

// ResetMissedCount atomically zeroes the missed counter and stamps the
// check-in time. This is the only operation that decreases the counter.
func (r *UserRepository) ResetMissedCount(ctx context.Context, id primitive.ObjectID, checkInAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"well_being.missed_count":    0,
		"well_being.last_check_in":   checkInAt,
		"well_being.last_alert_sent": time.Time{},
		"updated_at":                 time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to reset missed count: %v", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	logrus.WithField("userID", id.Hex()).Info("Missed count reset")
	return nil
}

// IncrementMissedCount atomically increments the missed counter by one.
func (r *UserRepository) IncrementMissedCount(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$inc": bson.M{"well_being.missed_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to increment missed count: %v", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// MarkAlertSent stamps the time of the last missed-alert reminder.
func (r *UserRepository) MarkAlertSent(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"well_being.last_alert_sent": at}})
	if err != nil {
		return fmt.Errorf("failed to mark alert sent: %v", err)
	}
	return nil
}

// UpdateWellBeingSettings persists the configuration fields of the embedded
// settings document. The missed counter and check-in timestamps are
// deliberately not part of the update.
func (r *UserRepository) UpdateWellBeingSettings(ctx context.Context, id primitive.ObjectID, settings models.WellBeingSettings) error {
	update := bson.M{"$set": bson.M{
		"well_being.configured":         true,
		"well_being.active":             settings.Active,
		"well_being.frequency":          settings.Frequency,
		"well_being.custom_days":        settings.CustomDays,
		"well_being.alert_time":         settings.AlertTime,
		"well_being.sms_enabled":        settings.SMSEnabled,
		"well_being.email_enabled":      settings.EmailEnabled,
		"well_being.max_missed_alerts":  settings.MaxMissedAlerts,
		"well_being.escalation_enabled": settings.EscalationEnabled,
		"updated_at":                    time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update well-being settings: %v", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	logrus.WithField("userID", id.Hex()).Info("Well-being settings updated")
	return nil
}

// FindEscalationCandidates returns users whose missed counter has reached
// their configured threshold, with escalation enabled and settings active.
func (r *UserRepository) FindEscalationCandidates(ctx context.Context) ([]models.User, error) {
	filter := bson.M{
		"well_being.configured":         true,
		"well_being.active":             true,
		"well_being.escalation_enabled": true,
		"well_being.max_missed_alerts":  bson.M{"$gt": 0},
		"$expr": bson.M{"$gte": bson.A{
			"$well_being.missed_count",
			"$well_being.max_missed_alerts",
		}},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query escalation candidates: %v", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode escalation candidates: %v", err)
	}
	return users, nil
}

// FindUsersWithActiveAlerts returns users with configured, active well-being
// settings, for the missed-alert sweep.
func (r *UserRepository) FindUsersWithActiveAlerts(ctx context.Context) ([]models.User, error) {
	filter := bson.M{
		"well_being.configured": true,
		"well_being.active":     true,
		"status":                models.StatusActive,
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query users with active alerts: %v", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %v", err)
	}
	return users, nil
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %v", err)
	}
	defer cursor.Close(ctx)

	var users []*models.User
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("failed to decode user: %v", err)
		}
		users = append(users, &user)
	}

	return users, nil
}

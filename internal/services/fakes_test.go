package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memUserStore is an in-memory stand-in for the user repository. It
// implements the UserStore, WellBeingStore and UserFinder surfaces.
type memUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newMemUserStore(users ...*models.User) *memUserStore {
	store := &memUserStore{users: make(map[primitive.ObjectID]*models.User)}
	for _, user := range users {
		if user.ID.IsZero() {
			user.ID = primitive.NewObjectID()
		}
		store.users[user.ID] = user
	}
	return store
}

func (m *memUserStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	copied := *user
	m.users[user.ID] = &copied
	return user, nil
}

func (m *memUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Mobile == mobile {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *memUserStore) UpdateUser(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if fullName, ok := update["full_name"].(string); ok {
		user.FullName = fullName
	}
	if status, ok := update["status"].(string); ok {
		user.Status = status
	}
	user.UpdatedAt = time.Now()
	return nil
}

func (m *memUserStore) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.User, 0, len(m.users))
	for _, user := range m.users {
		copied := *user
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memUserStore) ResetMissedCount(ctx context.Context, id primitive.ObjectID, checkInAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.WellBeing.MissedCount = 0
	user.WellBeing.LastCheckIn = checkInAt
	user.WellBeing.LastAlertSent = time.Time{}
	return nil
}

func (m *memUserStore) IncrementMissedCount(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.WellBeing.MissedCount++
	return nil
}

func (m *memUserStore) UpdateWellBeingSettings(ctx context.Context, id primitive.ObjectID, settings models.WellBeingSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	// Mirror the repository: configuration fields only, counter untouched.
	wb := &user.WellBeing
	wb.Configured = true
	wb.Active = settings.Active
	wb.Frequency = settings.Frequency
	wb.CustomDays = settings.CustomDays
	wb.AlertTime = settings.AlertTime
	wb.SMSEnabled = settings.SMSEnabled
	wb.EmailEnabled = settings.EmailEnabled
	wb.MaxMissedAlerts = settings.MaxMissedAlerts
	wb.EscalationEnabled = settings.EscalationEnabled
	return nil
}

func (m *memUserStore) FindEscalationCandidates(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, user := range m.users {
		wb := user.WellBeing
		if wb.Configured && wb.Active && wb.EscalationEnabled && wb.MaxMissedAlerts > 0 && wb.MissedCount >= wb.MaxMissedAlerts {
			out = append(out, *user)
		}
	}
	return out, nil
}

// memRegistrationStore is an in-memory pending-registration store with
// explicit expiry control.
type memRegistrationStore struct {
	mu      sync.Mutex
	pending map[string]models.PendingRegistration
}

func newMemRegistrationStore() *memRegistrationStore {
	return &memRegistrationStore{pending: make(map[string]models.PendingRegistration)}
}

func (m *memRegistrationStore) Save(ctx context.Context, token string, pending models.PendingRegistration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[token] = pending
	return nil
}

func (m *memRegistrationStore) Get(ctx context.Context, token string) (*models.PendingRegistration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pending, ok := m.pending[token]
	if !ok {
		return nil, nil
	}
	return &pending, nil
}

func (m *memRegistrationStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, token)
	return nil
}

func (m *memRegistrationStore) expire(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, token)
}

// memActivityRecorder collects recorded audit entries.
type memActivityRecorder struct {
	mu      sync.Mutex
	entries []models.ActivityLog
}

func (m *memActivityRecorder) Record(ctx context.Context, entry *models.ActivityLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *entry)
	return nil
}

// memNomineeStore is an in-memory nominee repository.
type memNomineeStore struct {
	mu       sync.Mutex
	nominees map[primitive.ObjectID]*models.Nominee
}

func newMemNomineeStore() *memNomineeStore {
	return &memNomineeStore{nominees: make(map[primitive.ObjectID]*models.Nominee)}
}

func (m *memNomineeStore) CreateNominee(ctx context.Context, nominee *models.Nominee) (*models.Nominee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	nominee.ID = primitive.NewObjectID()
	copied := *nominee
	m.nominees[nominee.ID] = &copied
	return nominee, nil
}

func (m *memNomineeStore) GetNomineeByID(ctx context.Context, id primitive.ObjectID) (*models.Nominee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	nominee, ok := m.nominees[id]
	if !ok {
		return nil, nil
	}
	copied := *nominee
	return &copied, nil
}

func (m *memNomineeStore) GetNomineesByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Nominee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Nominee
	for _, nominee := range m.nominees {
		if nominee.UserID == userID {
			out = append(out, *nominee)
		}
	}
	return out, nil
}

func (m *memNomineeStore) UpdateNominee(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	nominee, ok := m.nominees[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if fullName, ok := update["full_name"].(string); ok {
		nominee.FullName = fullName
	}
	if mobile, ok := update["mobile"].(string); ok {
		nominee.Mobile = mobile
	}
	return nil
}

func (m *memNomineeStore) DeleteNominee(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.nominees[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.nominees, id)
	return nil
}

func (m *memNomineeStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.nominees)
}

// memActionStore is an in-memory admin action repository.
type memActionStore struct {
	mu      sync.Mutex
	actions map[primitive.ObjectID]*models.AdminAction
}

func newMemActionStore() *memActionStore {
	return &memActionStore{actions: make(map[primitive.ObjectID]*models.AdminAction)}
}

func (m *memActionStore) CreateAction(ctx context.Context, action *models.AdminAction) (*models.AdminAction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	action.ID = primitive.NewObjectID()
	action.CreatedAt = time.Now()
	copied := *action
	m.actions[action.ID] = &copied
	return action, nil
}

func (m *memActionStore) GetActionByID(ctx context.Context, id primitive.ObjectID) (*models.AdminAction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	action, ok := m.actions[id]
	if !ok {
		return nil, nil
	}
	copied := *action
	return &copied, nil
}

func (m *memActionStore) UpdateActionStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	action, ok := m.actions[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	action.Status = status
	return nil
}

func (m *memActionStore) GetActions(ctx context.Context, status string, limit int64) ([]models.AdminAction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.AdminAction
	for _, action := range m.actions {
		if status == "" || action.Status == status {
			out = append(out, *action)
		}
	}
	return out, nil
}

func (m *memActionStore) GetActionsByTarget(ctx context.Context, targetID primitive.ObjectID) ([]models.AdminAction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.AdminAction
	for _, action := range m.actions {
		if action.TargetID == targetID {
			out = append(out, *action)
		}
	}
	return out, nil
}

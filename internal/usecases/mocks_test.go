package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sparkier.backend/internal/domain/entities"
	"sparkier.backend/pkg/redis"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) ListUnverifiedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entities.User, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) Purge(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetBySlug(ctx context.Context, slug string) (*entities.Profile, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateRoles(ctx context.Context, id uuid.UUID, roles []string) error {
	args := m.Called(ctx, id, roles)
	return args.Error(0)
}

func (m *MockProfileRepository) SlugTaken(ctx context.Context, slug, excludeSlug string) (bool, error) {
	args := m.Called(ctx, slug, excludeSlug)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) ListByRole(ctx context.Context, role, search string, limit, offset int) ([]*entities.Profile, int64, error) {
	args := m.Called(ctx, role, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Profile), args.Get(1).(int64), args.Error(2)
}

func (m *MockProfileRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileRepository) SoftDeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Mock ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) ListByConsultant(ctx context.Context, consultantID uuid.UUID) ([]*entities.Review, error) {
	args := m.Called(ctx, consultantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) Insert(ctx context.Context, review *entities.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entities.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id, consultantID uuid.UUID) error {
	args := m.Called(ctx, id, consultantID)
	return args.Error(0)
}

// Mock MissionRepository
type MockMissionRepository struct {
	mock.Mock
}

func (m *MockMissionRepository) ListByConsultant(ctx context.Context, consultantID uuid.UUID) ([]*entities.Mission, error) {
	args := m.Called(ctx, consultantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Mission), args.Error(1)
}

func (m *MockMissionRepository) Insert(ctx context.Context, mission *entities.Mission) error {
	args := m.Called(ctx, mission)
	return args.Error(0)
}

func (m *MockMissionRepository) UpdateByTitle(ctx context.Context, mission *entities.Mission) error {
	args := m.Called(ctx, mission)
	return args.Error(0)
}

func (m *MockMissionRepository) DeleteByTitle(ctx context.Context, consultantID uuid.UUID, title string) error {
	args := m.Called(ctx, consultantID, title)
	return args.Error(0)
}

// Mock SparkRepository
type MockSparkRepository struct {
	mock.Mock
}

func (m *MockSparkRepository) Create(ctx context.Context, spark *entities.Spark) error {
	args := m.Called(ctx, spark)
	return args.Error(0)
}

func (m *MockSparkRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Spark, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Spark), args.Error(1)
}

func (m *MockSparkRepository) GetByURL(ctx context.Context, url string) (*entities.Spark, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Spark), args.Error(1)
}

func (m *MockSparkRepository) Update(ctx context.Context, spark *entities.Spark) error {
	args := m.Called(ctx, spark)
	return args.Error(0)
}

func (m *MockSparkRepository) URLTaken(ctx context.Context, url, excludeURL string) (bool, error) {
	args := m.Called(ctx, url, excludeURL)
	return args.Bool(0), args.Error(1)
}

func (m *MockSparkRepository) ListByConsultant(ctx context.Context, consultantID uuid.UUID) ([]*entities.Spark, error) {
	args := m.Called(ctx, consultantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Spark), args.Error(1)
}

func (m *MockSparkRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.Spark, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Spark), args.Get(1).(int64), args.Error(2)
}

func (m *MockSparkRepository) SoftDelete(ctx context.Context, id, consultantID uuid.UUID) error {
	args := m.Called(ctx, id, consultantID)
	return args.Error(0)
}

// Mock ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *entities.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Client), args.Error(1)
}

func (m *MockClientRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Client, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, client *entities.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.Client, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Client), args.Get(1).(int64), args.Error(2)
}

func (m *MockClientRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error {
	args := m.Called(ctx, sessionID, data, expiration)
	return args.Error(0)
}

func (m *MockSessionStore) GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redis.SessionData), args.Error(1)
}

func (m *MockSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/repository/contract"
	"brand-chatbot-be/internal/repository/specification"
	"brand-chatbot-be/internal/repository/unitofwork"
	"brand-chatbot-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) (*gorm.DB, unitofwork.RepositoryFactory) {
	t.Helper()

	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "Failed to connect to DB")

	return gormDB, unitofwork.NewRepositoryFactory(gormDB)
}

func createTestBrand(t *testing.T, uow unitofwork.UnitOfWork) *entity.Brand {
	t.Helper()
	ctx := context.Background()

	brand := &entity.Brand{
		Id:          uuid.New(),
		BrandKey:    "it-brand-" + uuid.NewString(),
		DisplayName: "Integration Brand",
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, uow.BrandRepository().Create(ctx, brand))

	t.Cleanup(func() {
		_ = uow.BrandRepository().Delete(ctx, brand.Id)
	})
	return brand
}

func createTestSession(t *testing.T, uow unitofwork.UnitOfWork, brandId uuid.UUID, lastActivity time.Time) *entity.Session {
	t.Helper()
	ctx := context.Background()

	session := &entity.Session{
		Id:           uuid.New(),
		SessionKey:   "it-sess-" + uuid.NewString(),
		BrandId:      brandId,
		Status:       entity.SessionStatusActive,
		StartedAt:    lastActivity,
		LastActivity: lastActivity,
	}
	require.NoError(t, uow.SessionRepository().Create(ctx, session))
	return session
}

func TestSessionLifecycle(t *testing.T) {
	_, factory := setupDB(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	brand := createTestBrand(t, uow)
	session := createTestSession(t, uow, brand.Id, time.Now())

	t.Run("Touch advances activity and counters", func(t *testing.T) {
		now := time.Now()
		touched, err := uow.SessionRepository().Touch(ctx, session.SessionKey, contract.TouchUpdate{
			Role:         entity.MessageRoleUser,
			InputTokens:  7,
			OutputTokens: 0,
		}, now)
		assert.NoError(t, err)
		assert.True(t, touched)

		got, err := uow.SessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: session.SessionKey})
		assert.NoError(t, err)
		assert.Equal(t, 1, got.MessageCount)
		assert.Equal(t, 1, got.UserMessageCount)
		assert.Equal(t, 7, got.TotalInputTokens)
		assert.WithinDuration(t, now, got.LastActivity, 2*time.Second)
	})

	t.Run("Close fills ended_at and duration", func(t *testing.T) {
		now := time.Now()
		closed, err := uow.SessionRepository().Close(ctx, session.SessionKey, entity.SessionStatusEnded, now)
		assert.NoError(t, err)
		assert.True(t, closed)

		got, err := uow.SessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: session.SessionKey})
		assert.NoError(t, err)
		assert.Equal(t, entity.SessionStatusEnded, got.Status)
		assert.NotNil(t, got.EndedAt)
		assert.NotNil(t, got.DurationSeconds)
	})

	t.Run("Close is idempotent on terminal sessions", func(t *testing.T) {
		closed, err := uow.SessionRepository().Close(ctx, session.SessionKey, entity.SessionStatusEnded, time.Now())
		assert.NoError(t, err)
		assert.False(t, closed)
	})

	t.Run("Touch refuses terminal sessions", func(t *testing.T) {
		touched, err := uow.SessionRepository().Touch(ctx, session.SessionKey, contract.TouchUpdate{
			Role: entity.MessageRoleUser,
		}, time.Now())
		assert.NoError(t, err)
		assert.False(t, touched)
	})
}

func TestReaperCloseStale(t *testing.T) {
	_, factory := setupDB(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	brand := createTestBrand(t, uow)
	stale := createTestSession(t, uow, brand.Id, time.Now().Add(-30*time.Minute))
	fresh := createTestSession(t, uow, brand.Id, time.Now())

	now := time.Now()
	cutoff := now.Add(-5 * time.Minute)

	// The stale gauge the dashboard reports must agree with what the sweep is
	// about to close for this brand.
	pending, err := uow.SessionRepository().Count(ctx,
		specification.StaleSince{Cutoff: cutoff},
		specification.ByBrandID{BrandID: brand.Id},
	)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), pending)

	reaped, err := uow.SessionRepository().CloseStale(ctx, cutoff, now)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, reaped, int64(1))

	remaining, err := uow.SessionRepository().Count(ctx,
		specification.StaleSince{Cutoff: cutoff},
		specification.ByBrandID{BrandID: brand.Id},
	)
	assert.NoError(t, err)
	assert.Zero(t, remaining)

	gotStale, err := uow.SessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: stale.SessionKey})
	assert.NoError(t, err)
	assert.Equal(t, entity.SessionStatusTimeout, gotStale.Status)
	assert.NotNil(t, gotStale.EndedAt)
	assert.NotNil(t, gotStale.DurationSeconds)

	gotFresh, err := uow.SessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: fresh.SessionKey})
	assert.NoError(t, err)
	assert.Equal(t, entity.SessionStatusActive, gotFresh.Status)
}

func TestBrandDeleteCascadesSessions(t *testing.T) {
	_, factory := setupDB(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	brand := createTestBrand(t, uow)
	session := createTestSession(t, uow, brand.Id, time.Now())

	require.NoError(t, uow.BrandRepository().Delete(ctx, brand.Id))

	got, err := uow.SessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: session.SessionKey})
	assert.NoError(t, err)
	assert.Nil(t, got, "session should be gone after brand delete")
}

func TestInteractionRollupIsAdditive(t *testing.T) {
	_, factory := setupDB(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	brand := createTestBrand(t, uow)
	user := &entity.User{
		Id:        uuid.New(),
		Email:     "it-user-" + uuid.NewString() + "@example.com",
		FirstSeen: time.Now(),
		LastSeen:  time.Now(),
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	t.Cleanup(func() {
		_ = uow.UserRepository().Delete(ctx, user.Id)
	})

	require.NoError(t, uow.AnalyticsRepository().IncrementInteraction(ctx, user.Id, brand.Id,
		contract.InteractionDelta{Sessions: 1, Messages: 2, InputTokens: 10, OutputTokens: 5}))
	require.NoError(t, uow.AnalyticsRepository().IncrementInteraction(ctx, user.Id, brand.Id,
		contract.InteractionDelta{Messages: 3, EmailsSent: 1, OutputTokens: 5}))

	got, err := uow.AnalyticsRepository().GetInteraction(ctx, user.Id, brand.Id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.TotalSessions)
	assert.Equal(t, 5, got.TotalMessages)
	assert.Equal(t, 1, got.TotalEmailsSent)
	assert.Equal(t, 10, got.TotalInputTokens)
	assert.Equal(t, 10, got.TotalOutputTokens)
	assert.Equal(t, 20, got.TotalTokens)
}

func TestUserDeleteNullsSessionUser(t *testing.T) {
	_, factory := setupDB(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	brand := createTestBrand(t, uow)
	session := createTestSession(t, uow, brand.Id, time.Now())

	user := &entity.User{
		Id:        uuid.New(),
		Email:     "it-user-" + uuid.NewString() + "@example.com",
		FirstSeen: time.Now(),
		LastSeen:  time.Now(),
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	require.NoError(t, uow.SessionRepository().AssignUser(ctx, session.Id, user.Id))

	require.NoError(t, uow.UserRepository().Delete(ctx, user.Id))

	got, err := uow.SessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: session.SessionKey})
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Nil(t, got.UserId, "user_id should be nulled, not cascaded")
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/repository/contract"
	"brand-chatbot-be/internal/repository/specification"
	"brand-chatbot-be/internal/repository/unitofwork"
	"brand-chatbot-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubBrandRepository struct {
	contract.BrandRepository

	brand *entity.Brand
}

func (s *stubBrandRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Brand, error) {
	return s.brand, nil
}

type stubAnalyticsRepository struct {
	contract.AnalyticsRepository

	upsertCalled bool
	gotBrandId   uuid.UUID
	gotDate      time.Time
}

func (s *stubAnalyticsRepository) UpsertDailySummary(ctx context.Context, brandId uuid.UUID, date time.Time) error {
	s.upsertCalled = true
	s.gotBrandId = brandId
	s.gotDate = date
	return nil
}

type analyticsStubUOW struct {
	unitofwork.UnitOfWork

	brands    *stubBrandRepository
	analytics *stubAnalyticsRepository
}

func (u *analyticsStubUOW) BrandRepository() contract.BrandRepository {
	return u.brands
}

func (u *analyticsStubUOW) AnalyticsRepository() contract.AnalyticsRepository {
	return u.analytics
}

type analyticsStubFactory struct {
	uow *analyticsStubUOW
}

func (f *analyticsStubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newAnalyticsConsumerForTest(brand *entity.Brand) (*analyticsConsumerService, *stubAnalyticsRepository) {
	analytics := &stubAnalyticsRepository{}
	factory := &analyticsStubFactory{uow: &analyticsStubUOW{
		brands:    &stubBrandRepository{brand: brand},
		analytics: analytics,
	}}
	return &analyticsConsumerService{
		uowFactory: factory,
		sysLogs:    noopLogger{},
	}, analytics
}

func TestAnalyticsConsumerRollsUpEndedSession(t *testing.T) {
	brand := &entity.Brand{Id: uuid.New(), BrandKey: "demo"}
	svc, analytics := newAnalyticsConsumerForTest(brand)

	occurred := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	err := svc.handleSessionEnded(context.Background(), events.BaseEvent{
		Type:       events.TypeSessionEnded,
		Data:       map[string]interface{}{"session_key": "sk-1", "brand_key": "demo"},
		OccurredAt: occurred,
	})

	assert.NoError(t, err)
	assert.True(t, analytics.upsertCalled)
	assert.Equal(t, brand.Id, analytics.gotBrandId)
	assert.Equal(t, occurred, analytics.gotDate)
}

func TestAnalyticsConsumerIgnoresUnknownBrand(t *testing.T) {
	svc, analytics := newAnalyticsConsumerForTest(nil)

	err := svc.handleSessionEnded(context.Background(), events.BaseEvent{
		Type:       events.TypeSessionEnded,
		Data:       map[string]interface{}{"brand_key": "gone"},
		OccurredAt: time.Now(),
	})

	// Acked, not retried: the brand will not reappear.
	assert.NoError(t, err)
	assert.False(t, analytics.upsertCalled)
}

func TestAnalyticsConsumerIgnoresMalformedPayload(t *testing.T) {
	svc, analytics := newAnalyticsConsumerForTest(&entity.Brand{Id: uuid.New()})

	err := svc.handleSessionEnded(context.Background(), events.BaseEvent{
		Type:       events.TypeSessionEnded,
		Data:       map[string]interface{}{"reaped": 3},
		OccurredAt: time.Now(),
	})

	assert.NoError(t, err)
	assert.False(t, analytics.upsertCalled)
}

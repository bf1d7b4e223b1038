package service

import (
	"context"
	"testing"
	"time"

	"brand-chatbot-be/internal/config"
	"brand-chatbot-be/internal/constant"
	"brand-chatbot-be/internal/pkg/logger"
	"brand-chatbot-be/internal/repository/contract"
	"brand-chatbot-be/internal/repository/unitofwork"
	"brand-chatbot-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

// stubSessionRepository records CloseStale calls and returns a canned count.
type stubSessionRepository struct {
	contract.SessionRepository

	closeStaleCount  int64
	gotCutoff        time.Time
	closeStaleCalled bool
}

func (s *stubSessionRepository) CloseStale(ctx context.Context, cutoff, now time.Time) (int64, error) {
	s.closeStaleCalled = true
	s.gotCutoff = cutoff
	return s.closeStaleCount, nil
}

type stubUnitOfWork struct {
	unitofwork.UnitOfWork

	sessions *stubSessionRepository
}

func (u *stubUnitOfWork) SessionRepository() contract.SessionRepository {
	return u.sessions
}

type stubFactory struct {
	uow *stubUnitOfWork
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type capturingPublisher struct {
	topics []string
	events []events.Event
}

func (p *capturingPublisher) PublishSessionEvent(ctx context.Context, topic string, event events.Event) {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
func (noopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

func newReaperForTest(repo *stubSessionRepository, pub *capturingPublisher, cfg config.ReaperConfig) IReaperService {
	factory := &stubFactory{uow: &stubUnitOfWork{sessions: repo}}
	return NewReaperService(factory, nil, pub, noopLogger{}, cfg)
}

func TestReaperSweepClosesStaleSessions(t *testing.T) {
	repo := &stubSessionRepository{closeStaleCount: 3}
	pub := &capturingPublisher{}
	cfg := config.ReaperConfig{Interval: time.Minute, IdleTimeout: 5 * time.Minute}

	reaped, err := newReaperForTest(repo, pub, cfg).Sweep(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), reaped)
	assert.True(t, repo.closeStaleCalled)

	// Cutoff must be now minus the configured idle timeout.
	wantCutoff := time.Now().Add(-cfg.IdleTimeout)
	assert.WithinDuration(t, wantCutoff, repo.gotCutoff, 2*time.Second)

	if assert.Len(t, pub.topics, 1) {
		assert.Equal(t, constant.TopicSessionTimeout, pub.topics[0])
		assert.Equal(t, events.TypeSessionTimeout, pub.events[0].EventType())
	}
}

func TestReaperSweepQuietWhenNothingStale(t *testing.T) {
	repo := &stubSessionRepository{closeStaleCount: 0}
	pub := &capturingPublisher{}
	cfg := config.ReaperConfig{Interval: time.Minute, IdleTimeout: 5 * time.Minute}

	reaped, err := newReaperForTest(repo, pub, cfg).Sweep(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, reaped)
	assert.Empty(t, pub.topics)
}

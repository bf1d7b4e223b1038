package service

import (
	"context"
	"time"

	"brand-chatbot-be/internal/config"
	"brand-chatbot-be/internal/constant"
	"brand-chatbot-be/internal/pkg/logger"
	"brand-chatbot-be/internal/repository/unitofwork"
	"brand-chatbot-be/pkg/events"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// IReaperService closes sessions that stopped talking. It never races chat
// traffic: the closing statement is a single conditional UPDATE whose
// predicate (active AND idle past the cutoff) is re-evaluated by the
// database, so a message recorded after the reaper's scan simply makes the
// row no longer match.
type IReaperService interface {
	// Run blocks until ctx is cancelled, sweeping once per configured
	// interval.
	Run(ctx context.Context)
	// Sweep performs one pass and reports how many sessions were timed out.
	Sweep(ctx context.Context) (int64, error)
}

type reaperService struct {
	uowFactory       unitofwork.RepositoryFactory
	redisClient      *redis.Client
	publisherService IPublisherService
	sysLogs          logger.ILogger
	cfg              config.ReaperConfig
	instanceId       string
}

func NewReaperService(
	uowFactory unitofwork.RepositoryFactory,
	redisClient *redis.Client,
	publisherService IPublisherService,
	sysLogs logger.ILogger,
	cfg config.ReaperConfig,
) IReaperService {
	return &reaperService{
		uowFactory:       uowFactory,
		redisClient:      redisClient,
		publisherService: publisherService,
		sysLogs:          sysLogs,
		cfg:              cfg,
		instanceId:       uuid.NewString(),
	}
}

func (s *reaperService) Run(ctx context.Context) {
	s.sysLogs.Info("Reaper", "Session reaper started", map[string]interface{}{
		"interval":     s.cfg.Interval.String(),
		"idle_timeout": s.cfg.IdleTimeout.String(),
	})

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.sysLogs.Info("Reaper", "Session reaper stopped", nil)
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.sysLogs.Error("Reaper", "Sweep failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}
}

func (s *reaperService) Sweep(ctx context.Context) (int64, error) {
	if !s.acquireLease(ctx) {
		return 0, nil
	}

	now := time.Now()
	cutoff := now.Add(-s.cfg.IdleTimeout)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	reaped, err := uow.SessionRepository().CloseStale(ctx, cutoff, now)
	if err != nil {
		return 0, err
	}

	if reaped > 0 {
		s.sysLogs.Info("Reaper", "Timed out stale sessions", map[string]interface{}{
			"reaped": reaped,
			"cutoff": cutoff.Format(time.RFC3339),
		})

		ev := events.BaseEvent{
			Type: events.TypeSessionTimeout,
			Data: map[string]interface{}{
				"reaped": reaped,
				"cutoff": cutoff.Format(time.RFC3339),
			},
			OccurredAt: now,
		}
		s.publisherService.PublishSessionEvent(ctx, constant.TopicSessionTimeout, ev)
	}

	return reaped, nil
}

// acquireLease takes a short Redis lock so only one replica sweeps per tick.
// Losing the race is not an error, and a missing Redis degrades to every
// replica sweeping, which the conditional UPDATE keeps correct.
func (s *reaperService) acquireLease(ctx context.Context) bool {
	if s.redisClient == nil {
		return true
	}

	ok, err := s.redisClient.SetNX(ctx, constant.ReaperLeaseKey, s.instanceId, s.cfg.Interval/2).Result()
	if err != nil {
		s.sysLogs.Warn("Reaper", "Lease check failed, sweeping anyway", map[string]interface{}{
			"error": err.Error(),
		})
		return true
	}
	return ok
}

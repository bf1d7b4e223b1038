package implementation

import (
	"context"
	"errors"
	"time"

	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/mapper"
	"brand-chatbot-be/internal/model"
	"brand-chatbot-be/internal/repository/contract"
	"brand-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewSessionRepository(db *gorm.DB) contract.SessionRepository {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *SessionRepositoryImpl) Create(ctx context.Context, session *entity.Session) error {
	m := r.mapper.SessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.SessionToEntity(m)
	return nil
}

func (r *SessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	var m model.Session
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionToEntity(&m), nil
}

func (r *SessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	var models []*model.Session
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Session, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SessionToEntity(m)
	}
	return entities, nil
}

func (r *SessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Session{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SessionRepositoryImpl) Touch(ctx context.Context, sessionKey string, upd contract.TouchUpdate, now time.Time) (bool, error) {
	total := upd.InputTokens + upd.OutputTokens

	values := map[string]interface{}{
		"last_activity":       now,
		"message_count":       gorm.Expr("message_count + 1"),
		"last_input_tokens":   upd.InputTokens,
		"last_output_tokens":  upd.OutputTokens,
		"last_token_usage":    total,
		"total_input_tokens":  gorm.Expr("total_input_tokens + ?", upd.InputTokens),
		"total_output_tokens": gorm.Expr("total_output_tokens + ?", upd.OutputTokens),
		"total_tokens":        gorm.Expr("total_tokens + ?", total),
	}
	switch upd.Role {
	case entity.MessageRoleUser:
		values["user_message_count"] = gorm.Expr("user_message_count + 1")
	case entity.MessageRoleAssistant:
		values["assistant_message_count"] = gorm.Expr("assistant_message_count + 1")
	}

	// status='active' in the WHERE clause is the whole contract: a terminal
	// session matches zero rows and stays untouched.
	res := r.db.WithContext(ctx).Model(&model.Session{}).
		Where("session_key = ? AND status = ?", sessionKey, string(entity.SessionStatusActive)).
		Updates(values)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SessionRepositoryImpl) Close(ctx context.Context, sessionKey string, status entity.SessionStatus, now time.Time) (bool, error) {
	if !status.Terminal() {
		return false, errors.New("close requires a terminal status")
	}

	res := r.db.WithContext(ctx).Model(&model.Session{}).
		Where("session_key = ? AND status = ?", sessionKey, string(entity.SessionStatusActive)).
		Updates(map[string]interface{}{
			"status":           string(status),
			"ended_at":         now,
			"duration_seconds": gorm.Expr("EXTRACT(EPOCH FROM (?::timestamptz - started_at))::int", now),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SessionRepositoryImpl) CloseStale(ctx context.Context, cutoff, now time.Time) (int64, error) {
	// One conditional statement. The database re-evaluates last_activity at
	// execution time, so a session touched during this tick is simply not
	// matched.
	res := r.db.WithContext(ctx).Model(&model.Session{}).
		Where("status = ? AND last_activity < ?", string(entity.SessionStatusActive), cutoff).
		Updates(map[string]interface{}{
			"status":           string(entity.SessionStatusTimeout),
			"ended_at":         now,
			"duration_seconds": gorm.Expr("EXTRACT(EPOCH FROM (?::timestamptz - started_at))::int", now),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *SessionRepositoryImpl) AssignUser(ctx context.Context, sessionId, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Session{}).
		Where("id = ?", sessionId).
		Update("user_id", userId).Error
}

func (r *SessionRepositoryImpl) MarkEmailSent(ctx context.Context, sessionId uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Session{}).
		Where("id = ?", sessionId).
		Updates(map[string]interface{}{
			"email_sent":    true,
			"email_sent_at": at,
		}).Error
}

func (r *SessionRepositoryImpl) DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status = ? AND started_at < ?", string(entity.SessionStatusEnded), cutoff).
		Delete(&model.Session{})
	return res.RowsAffected, res.Error
}

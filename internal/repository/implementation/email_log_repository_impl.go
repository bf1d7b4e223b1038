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

type EmailLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmailMapper
}

func NewEmailLogRepository(db *gorm.DB) contract.EmailLogRepository {
	return &EmailLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmailMapper(),
	}
}

func (r *EmailLogRepositoryImpl) Create(ctx context.Context, log *entity.EmailLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *EmailLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EmailLog, error) {
	var m model.EmailLog
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EmailLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmailLog, error) {
	var models []*model.EmailLog
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.EmailLog, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *EmailLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.EmailLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EmailLogRepositoryImpl) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.EmailLog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        string(entity.EmailStatusSent),
			"sent_at":       at,
			"attempt_count": gorm.Expr("attempt_count + 1"),
			"error_message": "",
		}).Error
}

func (r *EmailLogRepositoryImpl) MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error {
	return r.db.WithContext(ctx).Model(&model.EmailLog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        string(entity.EmailStatusFailed),
			"attempt_count": gorm.Expr("attempt_count + 1"),
			"error_message": errorMessage,
		}).Error
}

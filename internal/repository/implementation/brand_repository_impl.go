package implementation

import (
	"context"
	"errors"

	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/mapper"
	"brand-chatbot-be/internal/model"
	"brand-chatbot-be/internal/repository/contract"
	"brand-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BrandRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BrandMapper
}

func NewBrandRepository(db *gorm.DB) contract.BrandRepository {
	return &BrandRepositoryImpl{
		db:     db,
		mapper: mapper.NewBrandMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BrandRepositoryImpl) Create(ctx context.Context, brand *entity.Brand) error {
	m := r.mapper.BrandToModel(brand)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*brand = *r.mapper.BrandToEntity(m)
	return nil
}

func (r *BrandRepositoryImpl) Update(ctx context.Context, brand *entity.Brand) error {
	m := r.mapper.BrandToModel(brand)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*brand = *r.mapper.BrandToEntity(m)
	return nil
}

func (r *BrandRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Brand{}, id).Error
}

func (r *BrandRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Brand, error) {
	var m model.Brand
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BrandToEntity(&m), nil
}

func (r *BrandRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Brand, error) {
	var models []*model.Brand
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Brand, len(models))
	for i, m := range models {
		entities[i] = r.mapper.BrandToEntity(m)
	}
	return entities, nil
}

func (r *BrandRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Brand{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type BrandRecipientRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BrandMapper
}

func NewBrandRecipientRepository(db *gorm.DB) contract.BrandRecipientRepository {
	return &BrandRecipientRepositoryImpl{
		db:     db,
		mapper: mapper.NewBrandMapper(),
	}
}

func (r *BrandRecipientRepositoryImpl) Create(ctx context.Context, recipient *entity.BrandRecipient) error {
	m := r.mapper.RecipientToModel(recipient)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*recipient = *r.mapper.RecipientToEntity(m)
	return nil
}

func (r *BrandRecipientRepositoryImpl) Update(ctx context.Context, recipient *entity.BrandRecipient) error {
	m := r.mapper.RecipientToModel(recipient)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*recipient = *r.mapper.RecipientToEntity(m)
	return nil
}

func (r *BrandRecipientRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BrandRecipient{}, id).Error
}

func (r *BrandRecipientRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BrandRecipient, error) {
	var m model.BrandRecipient
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.RecipientToEntity(&m), nil
}

func (r *BrandRecipientRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BrandRecipient, error) {
	var models []*model.BrandRecipient
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.BrandRecipient, len(models))
	for i, m := range models {
		entities[i] = r.mapper.RecipientToEntity(m)
	}
	return entities, nil
}

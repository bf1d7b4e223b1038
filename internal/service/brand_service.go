package service

import (
	"context"
	"errors"
	"time"

	"brand-chatbot-be/internal/dto"
	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/pkg/serverutils"
	"brand-chatbot-be/internal/repository/memory"
	"brand-chatbot-be/internal/repository/specification"
	"brand-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IBrandService interface {
	Create(ctx context.Context, req *dto.CreateBrandRequest) (*dto.BrandResponse, error)
	Update(ctx context.Context, req *dto.UpdateBrandRequest) (*dto.BrandResponse, error)
	// Delete hard-deletes the brand and everything hanging off it. The API
	// prefers deactivation via Update(is_active=false); delete exists for
	// operator cleanup of test tenants.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*dto.BrandResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	// GetActiveByKey resolves a brand for the public chat path. Unknown and
	// deactivated brands are indistinguishable to the caller.
	GetActiveByKey(ctx context.Context, brandKey string) (*entity.Brand, error)

	AddRecipient(ctx context.Context, brandId uuid.UUID, req *dto.AddRecipientRequest) (*dto.RecipientResponse, error)
	ListRecipients(ctx context.Context, brandId uuid.UUID) ([]*dto.RecipientResponse, error)
	ToggleRecipient(ctx context.Context, brandId, recipientId uuid.UUID, isActive bool) (*dto.RecipientResponse, error)
	RemoveRecipient(ctx context.Context, brandId, recipientId uuid.UUID) error
	// ActiveRecipientEmails is the mailing list for conversation summaries,
	// falling back to the brand contact email when the list is empty.
	ActiveRecipientEmails(ctx context.Context, brandId uuid.UUID) ([]string, error)
}

type brandService struct {
	uowFactory unitofwork.RepositoryFactory
	brandCache *memory.BrandCache
}

func NewBrandService(uowFactory unitofwork.RepositoryFactory, brandCache *memory.BrandCache) IBrandService {
	return &brandService{
		uowFactory: uowFactory,
		brandCache: brandCache,
	}
}

func (s *brandService) Create(ctx context.Context, req *dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = uow.Rollback()
		}
	}()

	brand := &entity.Brand{
		Id:            uuid.New(),
		BrandKey:      req.BrandKey,
		DisplayName:   req.DisplayName,
		Email:         req.Email,
		VectorStoreId: req.VectorStoreId,
		Instructions:  req.Instructions,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
	if err := uow.BrandRepository().Create(ctx, brand); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, serverutils.NewConflictError("brand_key already exists")
		}
		return nil, err
	}

	for _, email := range req.Recipients {
		recipient := &entity.BrandRecipient{
			Id:        uuid.New(),
			BrandId:   brand.Id,
			Email:     email,
			IsActive:  true,
			CreatedAt: time.Now(),
		}
		if err := uow.BrandRecipientRepository().Create(ctx, recipient); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	committed = true

	return toBrandResponse(brand), nil
}

func (s *brandService) Update(ctx context.Context, req *dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	brand, err := uow.BrandRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, serverutils.NewNotFoundError("brand not found")
	}

	if req.DisplayName != nil {
		brand.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		brand.Email = *req.Email
	}
	if req.VectorStoreId != nil {
		brand.VectorStoreId = *req.VectorStoreId
	}
	if req.Instructions != nil {
		brand.Instructions = *req.Instructions
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}
	now := time.Now()
	brand.UpdatedAt = &now

	if err := uow.BrandRepository().Update(ctx, brand); err != nil {
		return nil, err
	}

	s.brandCache.Invalidate(brand.BrandKey)

	return toBrandResponse(brand), nil
}

func (s *brandService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	brand, err := uow.BrandRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if brand == nil {
		return serverutils.NewNotFoundError("brand not found")
	}

	if err := uow.BrandRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.brandCache.Invalidate(brand.BrandKey)
	return nil
}

func (s *brandService) List(ctx context.Context) ([]*dto.BrandResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	brands, err := uow.BrandRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.BrandResponse, 0, len(brands))
	for _, brand := range brands {
		responses = append(responses, toBrandResponse(brand))
	}
	return responses, nil
}

func (s *brandService) GetById(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.BrandRepository().FindOne(ctx, specification.ByID{ID: id})
}

func (s *brandService) GetActiveByKey(ctx context.Context, brandKey string) (*entity.Brand, error) {
	if brand, found := s.brandCache.Get(brandKey); found {
		if !brand.IsActive {
			return nil, serverutils.NewNotFoundError("brand not found")
		}
		return brand, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	brand, err := uow.BrandRepository().FindOne(ctx, specification.ByBrandKey{BrandKey: brandKey})
	if err != nil {
		return nil, err
	}
	if brand == nil || !brand.IsActive {
		return nil, serverutils.NewNotFoundError("brand not found")
	}

	s.brandCache.Save(brand)
	return brand, nil
}

func (s *brandService) AddRecipient(ctx context.Context, brandId uuid.UUID, req *dto.AddRecipientRequest) (*dto.RecipientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	brand, err := uow.BrandRepository().FindOne(ctx, specification.ByID{ID: brandId})
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, serverutils.NewNotFoundError("brand not found")
	}

	recipient := &entity.BrandRecipient{
		Id:        uuid.New(),
		BrandId:   brandId,
		Email:     req.Email,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uow.BrandRecipientRepository().Create(ctx, recipient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, serverutils.NewConflictError("recipient already exists for this brand")
		}
		return nil, err
	}

	return toRecipientResponse(recipient), nil
}

func (s *brandService) ListRecipients(ctx context.Context, brandId uuid.UUID) ([]*dto.RecipientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recipients, err := uow.BrandRecipientRepository().FindAll(ctx,
		specification.ByBrandID{BrandID: brandId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.RecipientResponse, 0, len(recipients))
	for _, recipient := range recipients {
		responses = append(responses, toRecipientResponse(recipient))
	}
	return responses, nil
}

func (s *brandService) ToggleRecipient(ctx context.Context, brandId, recipientId uuid.UUID, isActive bool) (*dto.RecipientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recipient, err := uow.BrandRecipientRepository().FindOne(ctx,
		specification.ByID{ID: recipientId},
		specification.ByBrandID{BrandID: brandId},
	)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, serverutils.NewNotFoundError("recipient not found")
	}

	recipient.IsActive = isActive
	if err := uow.BrandRecipientRepository().Update(ctx, recipient); err != nil {
		return nil, err
	}
	return toRecipientResponse(recipient), nil
}

func (s *brandService) RemoveRecipient(ctx context.Context, brandId, recipientId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recipient, err := uow.BrandRecipientRepository().FindOne(ctx,
		specification.ByID{ID: recipientId},
		specification.ByBrandID{BrandID: brandId},
	)
	if err != nil {
		return err
	}
	if recipient == nil {
		return serverutils.NewNotFoundError("recipient not found")
	}

	return uow.BrandRecipientRepository().Delete(ctx, recipientId)
}

func (s *brandService) ActiveRecipientEmails(ctx context.Context, brandId uuid.UUID) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recipients, err := uow.BrandRecipientRepository().FindAll(ctx,
		specification.ByBrandID{BrandID: brandId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		emails = append(emails, recipient.Email)
	}
	if len(emails) > 0 {
		return emails, nil
	}

	brand, err := uow.BrandRepository().FindOne(ctx, specification.ByID{ID: brandId})
	if err != nil {
		return nil, err
	}
	if brand != nil && brand.Email != "" {
		return []string{brand.Email}, nil
	}
	return nil, nil
}

func toBrandResponse(brand *entity.Brand) *dto.BrandResponse {
	return &dto.BrandResponse{
		Id:            brand.Id,
		BrandKey:      brand.BrandKey,
		DisplayName:   brand.DisplayName,
		Email:         brand.Email,
		VectorStoreId: brand.VectorStoreId,
		Instructions:  brand.Instructions,
		IsActive:      brand.IsActive,
		CreatedAt:     brand.CreatedAt,
	}
}

func toRecipientResponse(recipient *entity.BrandRecipient) *dto.RecipientResponse {
	return &dto.RecipientResponse{
		Id:       recipient.Id,
		Email:    recipient.Email,
		IsActive: recipient.IsActive,
	}
}

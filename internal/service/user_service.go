package service

import (
	"context"
	"time"

	"brand-chatbot-be/internal/dto"
	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/repository/specification"
	"brand-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	// GetOrCreate upserts a chat visitor by email. Fields present in the
	// request overwrite the stored profile; absent fields keep their old
	// values. last_seen is refreshed on every call.
	GetOrCreate(ctx context.Context, req *dto.CaptureContactRequest) (*entity.User, error)
	// RecordConversation bumps the visitor's conversation counter when a
	// session gets attributed to them.
	RecordConversation(ctx context.Context, userId uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) GetOrCreate(ctx context.Context, req *dto.CaptureContactRequest) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &entity.User{
			Id:           uuid.New(),
			Email:        req.Email,
			Name:         req.Name,
			Phone:        req.Phone,
			BusinessName: req.BusinessName,
			Website:      req.Website,
			Location:     req.Location,
			IpAddress:    req.IpAddress,
			City:         req.City,
			Region:       req.Region,
			Country:      req.Country,
			FirstSeen:    now,
			LastSeen:     now,
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	applyIfSet(&user.Name, req.Name)
	applyIfSet(&user.Phone, req.Phone)
	applyIfSet(&user.BusinessName, req.BusinessName)
	applyIfSet(&user.Website, req.Website)
	applyIfSet(&user.Location, req.Location)
	applyIfSet(&user.IpAddress, req.IpAddress)
	applyIfSet(&user.City, req.City)
	applyIfSet(&user.Region, req.Region)
	applyIfSet(&user.Country, req.Country)
	user.LastSeen = now

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) RecordConversation(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	user.TotalConversations++
	user.LastSeen = time.Now()
	return uow.UserRepository().Update(ctx, user)
}

func (s *userService) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	users, err := uow.UserRepository().FindAll(ctx,
		specification.OrderBy{Field: "last_seen", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func applyIfSet(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

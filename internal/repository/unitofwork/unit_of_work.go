package unitofwork

import (
	"context"

	"brand-chatbot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	BrandRepository() contract.BrandRepository
	BrandRecipientRepository() contract.BrandRecipientRepository
	UserRepository() contract.UserRepository
	SessionRepository() contract.SessionRepository
	MessageRepository() contract.MessageRepository
	EmailLogRepository() contract.EmailLogRepository
	AnalyticsRepository() contract.AnalyticsRepository
}

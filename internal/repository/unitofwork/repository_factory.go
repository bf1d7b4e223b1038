package unitofwork

import "context"

// RepositoryFactory hands out units of work. Services hold the factory, not
// the *gorm.DB, so transactional and auto-commit paths share one code shape.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}

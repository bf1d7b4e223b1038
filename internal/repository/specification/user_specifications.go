package specification

import "gorm.io/gorm"

// ByEmail filters users by their unique email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByBrandKey filters brands by their unique key.
type ByBrandKey struct {
	BrandKey string
}

func (s ByBrandKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("brand_key = ?", s.BrandKey)
}

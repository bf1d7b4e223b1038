package specification

import "gorm.io/gorm"

// Specification is a composable query predicate. Repositories apply them in
// order, so an OrderBy or Pagination can follow any number of filters.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

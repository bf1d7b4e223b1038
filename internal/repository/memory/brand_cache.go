package memory

import (
	"time"

	"brand-chatbot-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// BrandCache keeps brand lookups by brand_key out of the hot path. Brands are
// read on every chat request and change rarely; a short TTL bounds staleness
// after an operator edit.
type BrandCache struct {
	cache *cache.Cache
}

func NewBrandCache() *BrandCache {
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &BrandCache{
		cache: c,
	}
}

func (r *BrandCache) Save(brand *entity.Brand) {
	r.cache.Set(brand.BrandKey, brand, cache.DefaultExpiration)
}

func (r *BrandCache) Get(brandKey string) (*entity.Brand, bool) {
	if x, found := r.cache.Get(brandKey); found {
		return x.(*entity.Brand), true
	}
	return nil, false
}

func (r *BrandCache) Invalidate(brandKey string) {
	r.cache.Delete(brandKey)
}

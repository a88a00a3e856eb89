package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"furniture-store/internal/domain"
	"furniture-store/internal/repository"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"
)

const (
	productCacheTTL     = time.Minute
	productListCacheTTL = 10 * time.Second
	productListCacheKey = "products:all"
)

// CatalogService serves product reads through a redis cache and owns the
// admin product create/delete path. The cache is best effort: a nil or
// unreachable redis client degrades to direct repository reads.
type CatalogService struct {
	products    repository.ProductRepository
	orders      repository.OrderRepository
	redisClient *redis.Client
	group       singleflight.Group
}

func NewCatalogService(products repository.ProductRepository, orders repository.OrderRepository) *CatalogService {
	return &CatalogService{products: products, orders: orders}
}

func (s *CatalogService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func productCacheKey(id string) string {
	return "product:" + id
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.ProductDetail, error) {
	key := productCacheKey(id)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, key).Result()
		if err == nil {
			var d domain.ProductDetail
			if err := json.Unmarshal([]byte(cached), &d); err == nil {
				return &d, nil
			}
		}
	}

	// singleflight collapses a stampede of concurrent misses for the same
	// product into one repository read.
	v, err, _ := s.group.Do(key, func() (any, error) {
		d, err := s.products.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		s.cacheSet(ctx, key, d, productCacheTTL)
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.ProductDetail), nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.ProductDetail, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, productListCacheKey).Result()
		if err == nil {
			var out []domain.ProductDetail
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return out, nil
			}
		}
	}

	v, err, _ := s.group.Do(productListCacheKey, func() (any, error) {
		out, err := s.products.List(ctx)
		if err != nil {
			return nil, err
		}
		s.cacheSet(ctx, productListCacheKey, out, productListCacheTTL)
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.ProductDetail), nil
}

func (s *CatalogService) ListTypes(ctx context.Context) ([]domain.FurnitureType, error) {
	return s.products.ListTypes(ctx)
}

func (s *CatalogService) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	return s.products.ListMaterials(ctx)
}

func (s *CatalogService) CreateProduct(ctx context.Context, p domain.Product) error {
	if p.ID == "" {
		return &domain.ValidationError{Field: "id", Reason: "required"}
	}
	if p.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "required"}
	}
	if p.TypeID == 0 {
		return &domain.ValidationError{Field: "typeId", Reason: "required"}
	}
	if p.MaterialID == 0 {
		return &domain.ValidationError{Field: "materialId", Reason: "required"}
	}
	if p.Stock < 0 {
		return &domain.ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	if !p.Price.IsPositive() {
		return &domain.ValidationError{Field: "price", Reason: "must be positive"}
	}

	if err := s.products.Create(ctx, &p); err != nil {
		return err
	}
	s.InvalidateProduct(ctx, p.ID)
	return nil
}

// DeleteProduct removes a product unless order lines still reference it
// (the repository surfaces that as ErrProductReferenced).
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.InvalidateProduct(ctx, id)
	return nil
}

func (s *CatalogService) OrderHistory(ctx context.Context) ([]domain.OrderWithCustomer, error) {
	return s.orders.History(ctx)
}

func (s *CatalogService) OrderHistoryDetails(ctx context.Context) ([]domain.OrderLineDetail, error) {
	return s.orders.HistoryDetails(ctx)
}

// InvalidateProduct drops the cached entries touched by a product or stock
// mutation.
func (s *CatalogService) InvalidateProduct(ctx context.Context, id string) {
	if s.redisClient == nil {
		return
	}
	s.redisClient.Del(ctx, productCacheKey(id), productListCacheKey)
}

func (s *CatalogService) WarmupProductCache(ctx context.Context) error {
	if s.redisClient == nil {
		return nil
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return err
	}

	for i := range products {
		s.cacheSet(ctx, productCacheKey(products[i].ID), &products[i], 5*time.Minute)
	}
	s.cacheSet(ctx, productListCacheKey, products, productListCacheTTL)
	return nil
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if s.redisClient == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Failed to marshal cache entry %s: %v", key, err)
		return
	}
	s.redisClient.Set(ctx, key, data, ttl)
}

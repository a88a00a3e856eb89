package repository

import (
	"context"

	"furniture-store/internal/domain"
)

// Tx is the transaction-scoped view of the store. Everything on it runs
// inside the transaction opened by Store.Atomically; in particular LockStock
// holds a FOR UPDATE row lock until that transaction commits or rolls back.
type Tx interface {
	// LockStock reads a product's stock under a pessimistic row lock.
	// Concurrent adjusters of the same product block here until the holding
	// transaction ends.
	LockStock(ctx context.Context, productID string) (int, error)
	// SetStock writes the stock level. Callers must have locked the row
	// first; the non-negative invariant is enforced above this layer.
	SetStock(ctx context.Context, productID string, stock int) error

	CreateCustomer(ctx context.Context, c *domain.Customer) error
	CreateOrder(ctx context.Context, o *domain.Order) error
	CreateOrderLine(ctx context.Context, l *domain.OrderLine) error
}

// Store owns the atomic boundary. A single Atomically call is the unit in
// which multi-entity order placement either fully happens or fully does not.
type Store interface {
	Atomically(ctx context.Context, fn func(tx Tx) error) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.ProductDetail, error)
	List(ctx context.Context) ([]domain.ProductDetail, error)
	Create(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	ListTypes(ctx context.Context) ([]domain.FurnitureType, error)
	ListMaterials(ctx context.Context) ([]domain.Material, error)
}

type OrderRepository interface {
	History(ctx context.Context) ([]domain.OrderWithCustomer, error)
	HistoryDetails(ctx context.Context) ([]domain.OrderLineDetail, error)
	// FindByIdempotencyKey returns (nil, nil) when no order carries the key.
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error)
	LinesByInvoice(ctx context.Context, invoiceID string) ([]domain.OrderLine, error)
}

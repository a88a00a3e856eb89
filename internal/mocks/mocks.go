package mocks

import (
	"context"

	"furniture-store/internal/domain"
	"furniture-store/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

// Atomically runs fn against the Tx configured via Return(tx, err). A nil tx
// skips fn, which models a transaction that fails to open.
func (m *MockStore) Atomically(ctx context.Context, fn func(tx repository.Tx) error) error {
	args := m.Called(ctx, fn)
	if tx, ok := args.Get(0).(repository.Tx); ok && tx != nil {
		if err := fn(tx); err != nil {
			return err
		}
	}
	return args.Error(1)
}

type MockTx struct {
	mock.Mock
}

func (m *MockTx) LockStock(ctx context.Context, productID string) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) SetStock(ctx context.Context, productID string, stock int) error {
	args := m.Called(ctx, productID, stock)
	return args.Error(0)
}

func (m *MockTx) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockTx) CreateOrder(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTx) CreateOrderLine(ctx context.Context, l *domain.OrderLine) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*domain.ProductDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductDetail), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]domain.ProductDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductDetail), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) ListTypes(ctx context.Context) ([]domain.FurnitureType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FurnitureType), args.Error(1)
}

func (m *MockProductRepository) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Material), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) History(ctx context.Context) ([]domain.OrderWithCustomer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderWithCustomer), args.Error(1)
}

func (m *MockOrderRepository) HistoryDetails(ctx context.Context) ([]domain.OrderLineDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderLineDetail), args.Error(1)
}

func (m *MockOrderRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) LinesByInvoice(ctx context.Context, invoiceID string) ([]domain.OrderLine, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderLine), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

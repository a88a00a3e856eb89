package mysql

import (
	"context"
	"errors"

	"furniture-store/internal/domain"
	"furniture-store/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) repository.Store {
	return &store{db: db}
}

func (s *store) Atomically(ctx context.Context, fn func(tx repository.Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&storeTx{db: tx})
	})
}

type storeTx struct {
	db *gorm.DB
}

func (t *storeTx) LockStock(ctx context.Context, productID string) (int, error) {
	var p domain.Product
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "stock").
		Where("id = ?", productID).
		Take(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrProductNotFound
		}
		return 0, err
	}
	return p.Stock, nil
}

func (t *storeTx) SetStock(ctx context.Context, productID string, stock int) error {
	// Row existence was established by the preceding LockStock in the same
	// transaction, so RowsAffected is not rechecked here (an update to the
	// current value legitimately reports zero affected rows).
	return t.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", productID).
		Update("stock", stock).Error
}

func (t *storeTx) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	if err := t.db.WithContext(ctx).Create(c).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (t *storeTx) CreateOrder(ctx context.Context, o *domain.Order) error {
	if err := t.db.WithContext(ctx).Create(o).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (t *storeTx) CreateOrderLine(ctx context.Context, l *domain.OrderLine) error {
	if err := t.db.WithContext(ctx).Create(l).Error; err != nil {
		return translateError(err)
	}
	return nil
}

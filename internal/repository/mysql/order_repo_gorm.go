package mysql

import (
	"context"
	"errors"

	"furniture-store/internal/domain"
	"furniture-store/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) History(ctx context.Context) ([]domain.OrderWithCustomer, error) {
	var out []domain.OrderWithCustomer
	err := r.db.WithContext(ctx).
		Table("orders AS o").
		Select(`o.invoice_id, o.customer_id, c.name AS customer_name, c.phone,
c.address, o.total_price, o.delivery_method, o.order_date`).
		Joins("LEFT JOIN customers c ON o.customer_id = c.id").
		Order("o.order_date DESC, o.invoice_id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) HistoryDetails(ctx context.Context) ([]domain.OrderLineDetail, error) {
	var out []domain.OrderLineDetail
	err := r.db.WithContext(ctx).
		Table("order_lines AS ol").
		Select(`ol.id, ol.invoice_id, ol.product_id, p.name AS product_name,
t.name AS type_name, m.name AS material_name, ol.qty, ol.price, ol.note,
p.image_url`).
		Joins("LEFT JOIN products p ON ol.product_id = p.id").
		Joins("LEFT JOIN furniture_types t ON p.type_id = t.id").
		Joins("LEFT JOIN materials m ON p.material_id = m.id").
		Order("ol.invoice_id, ol.id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Where("idempotency_key = ?", key).Take(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) LinesByInvoice(ctx context.Context, invoiceID string) ([]domain.OrderLine, error) {
	var out []domain.OrderLine
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

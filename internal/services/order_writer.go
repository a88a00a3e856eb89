package services

import (
	"context"
	"regexp"
	"time"

	"furniture-store/internal/domain"
	"furniture-store/internal/repository"

	"github.com/shopspring/decimal"
)

var phonePattern = regexp.MustCompile(`^[0-9]{9,10}$`)

const orderDateLayout = "2006-01-02"

type CreateOrderInput struct {
	InvoiceID      string
	CustomerID     string
	TotalPrice     decimal.Decimal
	DeliveryMethod string
	OrderDate      string
}

type CreateOrderLineInput struct {
	LineID    string
	InvoiceID string
	ProductID string
	Qty       int
	Price     decimal.Decimal
	Note      string
}

// OrderWriterService backs the standalone write endpoints kept for clients
// that still drive order creation step by step. Each call is atomic on its
// own; none of them guarantees cross-call consistency — that is what
// CheckoutService is for.
type OrderWriterService struct {
	store repository.Store
}

func NewOrderWriterService(store repository.Store) *OrderWriterService {
	return &OrderWriterService{store: store}
}

func (s *OrderWriterService) CreateCustomer(ctx context.Context, c domain.Customer) error {
	if c.ID == "" {
		return &domain.ValidationError{Field: "id", Reason: "required"}
	}
	if c.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "required"}
	}
	if !phonePattern.MatchString(c.Phone) {
		return &domain.ValidationError{Field: "phone", Reason: "must be 9-10 digits"}
	}

	return s.store.Atomically(ctx, func(tx repository.Tx) error {
		return tx.CreateCustomer(ctx, &c)
	})
}

func (s *OrderWriterService) CreateOrder(ctx context.Context, in CreateOrderInput) error {
	if in.InvoiceID == "" {
		return &domain.ValidationError{Field: "invoiceId", Reason: "required"}
	}
	if in.CustomerID == "" {
		return &domain.ValidationError{Field: "customerId", Reason: "required"}
	}
	if in.TotalPrice.IsNegative() {
		return &domain.ValidationError{Field: "totalPrice", Reason: "must not be negative"}
	}
	method := domain.DeliveryMethod(in.DeliveryMethod)
	if !method.Valid() {
		return &domain.ValidationError{Field: "deliveryMethod", Reason: "must be pickup or delivery"}
	}
	orderDate, err := time.Parse(orderDateLayout, in.OrderDate)
	if err != nil {
		return &domain.ValidationError{Field: "orderDate", Reason: "must be a YYYY-MM-DD date"}
	}

	order := domain.Order{
		InvoiceID:      in.InvoiceID,
		CustomerID:     in.CustomerID,
		TotalPrice:     in.TotalPrice,
		DeliveryMethod: method,
		OrderDate:      orderDate,
	}
	return s.store.Atomically(ctx, func(tx repository.Tx) error {
		return tx.CreateOrder(ctx, &order)
	})
}

func (s *OrderWriterService) CreateOrderLine(ctx context.Context, in CreateOrderLineInput) error {
	if in.LineID == "" {
		return &domain.ValidationError{Field: "lineId", Reason: "required"}
	}
	if in.InvoiceID == "" {
		return &domain.ValidationError{Field: "invoiceId", Reason: "required"}
	}
	if in.ProductID == "" {
		return &domain.ValidationError{Field: "productId", Reason: "required"}
	}
	if in.Qty <= 0 {
		return &domain.ValidationError{Field: "qty", Reason: "must be positive"}
	}
	if in.Price.IsNegative() {
		return &domain.ValidationError{Field: "price", Reason: "must not be negative"}
	}

	line := domain.OrderLine{
		ID:        in.LineID,
		InvoiceID: in.InvoiceID,
		ProductID: in.ProductID,
		Qty:       in.Qty,
		Price:     in.Price,
		Note:      in.Note,
	}
	return s.store.Atomically(ctx, func(tx repository.Tx) error {
		return tx.CreateOrderLine(ctx, &line)
	})
}

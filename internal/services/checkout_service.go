package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"furniture-store/internal/domain"
	rabbit "furniture-store/internal/infra/rabbitmq"
	"furniture-store/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerInput struct {
	Name    string
	Phone   string
	Address string
}

type LineItemInput struct {
	ProductID string
	Qty       int
	Price     decimal.Decimal
	Note      string
}

type PlaceOrderInput struct {
	Customer       CustomerInput
	Items          []LineItemInput
	DeliveryMethod domain.DeliveryMethod
	ShippingCost   decimal.Decimal
	// IdempotencyKey, when set, makes retries safe: a replayed checkout
	// returns the already placed order instead of selling twice.
	IdempotencyKey string
}

type PlacedOrder struct {
	Order    domain.Order
	Customer domain.Customer
	Lines    []domain.OrderLine
	Replayed bool
}

// CheckoutService is the order-placement orchestrator: customer, order,
// order lines and the stock decrements happen in one transaction or not at
// all. No partial state is ever observable to other transactions.
type CheckoutService struct {
	store     repository.Store
	orders    repository.OrderRepository
	publisher rabbit.PublisherInterface
}

func NewCheckoutService(store repository.Store, orders repository.OrderRepository, pub rabbit.PublisherInterface) *CheckoutService {
	return &CheckoutService{store: store, orders: orders, publisher: pub}
}

func (s *CheckoutService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlacedOrder, error) {
	if err := validatePlaceOrder(in); err != nil {
		return nil, err
	}

	if in.IdempotencyKey != "" {
		replay, err := s.replayByKey(ctx, in.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if replay != nil {
			return replay, nil
		}
	}

	placed := &PlacedOrder{
		Customer: domain.Customer{
			ID:      "C-" + uuid.NewString(),
			Name:    in.Customer.Name,
			Phone:   in.Customer.Phone,
			Address: in.Customer.Address,
		},
	}

	total := in.ShippingCost
	for _, item := range in.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}

	order := domain.Order{
		InvoiceID:      "INV-" + uuid.NewString(),
		CustomerID:     placed.Customer.ID,
		TotalPrice:     total,
		DeliveryMethod: in.DeliveryMethod,
		OrderDate:      time.Now(),
	}
	if in.IdempotencyKey != "" {
		key := in.IdempotencyKey
		order.IdempotencyKey = &key
	}

	err := s.store.Atomically(ctx, func(tx repository.Tx) error {
		// Lock and validate every line before writing anything, so an
		// unsatisfiable order fails without touching other rows. Locks are
		// taken in product-id order to keep concurrent checkouts that share
		// products from deadlocking.
		if err := checkStockAvailable(ctx, tx, in.Items); err != nil {
			return err
		}

		if err := tx.CreateCustomer(ctx, &placed.Customer); err != nil {
			return err
		}
		if err := tx.CreateOrder(ctx, &order); err != nil {
			return err
		}

		for _, item := range in.Items {
			line := domain.OrderLine{
				ID:        "OL-" + uuid.NewString(),
				InvoiceID: order.InvoiceID,
				ProductID: item.ProductID,
				Qty:       item.Qty,
				Price:     item.Price,
				Note:      item.Note,
			}
			if err := tx.CreateOrderLine(ctx, &line); err != nil {
				return err
			}
			placed.Lines = append(placed.Lines, line)

			if _, err := applyAdjustment(ctx, tx, item.ProductID, domain.StockDelta(-item.Qty)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		placed.Lines = nil
		// A duplicate on the idempotency key means a concurrent retry won
		// the race; hand back the order it placed.
		if in.IdempotencyKey != "" && errors.Is(err, domain.ErrDuplicateID) {
			if replay, rerr := s.replayByKey(ctx, in.IdempotencyKey); rerr == nil && replay != nil {
				return replay, nil
			}
		}
		return nil, err
	}

	placed.Order = order

	if s.publisher != nil {
		go s.publishOrderPlaced(context.Background(), placed)
	}

	return placed, nil
}

// checkStockAvailable locks every product once (sorted, deduplicated) and
// verifies the aggregate requested quantity can be satisfied.
func checkStockAvailable(ctx context.Context, tx repository.Tx, items []LineItemInput) error {
	required := make(map[string]int, len(items))
	for _, item := range items {
		required[item.ProductID] += item.Qty
	}

	ids := make([]string, 0, len(required))
	for id := range required {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		available, err := tx.LockStock(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				return fmt.Errorf("%w: product %s", domain.ErrInvalidReference, id)
			}
			return err
		}
		if available < required[id] {
			return &domain.InsufficientStockError{
				ProductID: id,
				Requested: required[id],
				Available: available,
			}
		}
	}
	return nil
}

func (s *CheckoutService) replayByKey(ctx context.Context, key string) (*PlacedOrder, error) {
	order, err := s.orders.FindByIdempotencyKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	lines, err := s.orders.LinesByInvoice(ctx, order.InvoiceID)
	if err != nil {
		return nil, err
	}
	return &PlacedOrder{Order: *order, Lines: lines, Replayed: true}, nil
}

func validatePlaceOrder(in PlaceOrderInput) error {
	if in.Customer.Name == "" {
		return &domain.ValidationError{Field: "customer.name", Reason: "required"}
	}
	if !phonePattern.MatchString(in.Customer.Phone) {
		return &domain.ValidationError{Field: "customer.phone", Reason: "must be 9-10 digits"}
	}
	if !in.DeliveryMethod.Valid() {
		return &domain.ValidationError{Field: "deliveryMethod", Reason: "must be pickup or delivery"}
	}
	if in.ShippingCost.IsNegative() {
		return &domain.ValidationError{Field: "shippingCost", Reason: "must not be negative"}
	}
	if len(in.Items) == 0 {
		return &domain.ValidationError{Field: "items", Reason: "at least one line item required"}
	}
	for i, item := range in.Items {
		if item.ProductID == "" {
			return &domain.ValidationError{Field: fmt.Sprintf("items[%d].productId", i), Reason: "required"}
		}
		if item.Qty <= 0 {
			return &domain.ValidationError{Field: fmt.Sprintf("items[%d].qty", i), Reason: "must be positive"}
		}
		if item.Price.IsNegative() {
			return &domain.ValidationError{Field: fmt.Sprintf("items[%d].price", i), Reason: "must not be negative"}
		}
	}
	return nil
}

func (s *CheckoutService) publishOrderPlaced(ctx context.Context, placed *PlacedOrder) {
	evt := domain.OrderPlacedEvent{
		InvoiceID:      placed.Order.InvoiceID,
		CustomerID:     placed.Order.CustomerID,
		TotalPrice:     placed.Order.TotalPrice,
		DeliveryMethod: placed.Order.DeliveryMethod,
		PlacedAt:       time.Now(),
	}
	for _, line := range placed.Lines {
		evt.Lines = append(evt.Lines, domain.PlacedLine{
			ProductID: line.ProductID,
			Qty:       line.Qty,
			Price:     line.Price,
		})
	}

	if err := s.publisher.Publish(ctx, "order.placed", evt); err != nil {
		log.Printf("Failed to publish order.placed event: %v", err)
	}
}

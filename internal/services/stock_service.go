package services

import (
	"context"
	"log"
	"time"

	"furniture-store/internal/domain"
	rabbit "furniture-store/internal/infra/rabbitmq"
	"furniture-store/internal/repository"
)

// StockService is the single authoritative path for mutating product stock.
// The admin stock editor calls Adjust directly; checkout applies the same
// adjustment logic inside its own transaction via applyAdjustment.
type StockService struct {
	store     repository.Store
	publisher rabbit.PublisherInterface
}

func NewStockService(store repository.Store, pub rabbit.PublisherInterface) *StockService {
	return &StockService{store: store, publisher: pub}
}

// Adjust applies a Set or Delta change under a pessimistic row lock and
// returns the resulting stock. Delta changes that would drive stock negative
// are rejected without writing.
func (s *StockService) Adjust(ctx context.Context, productID string, adj domain.StockAdjustment) (int, error) {
	var newStock int
	err := s.store.Atomically(ctx, func(tx repository.Tx) error {
		n, err := applyAdjustment(ctx, tx, productID, adj)
		if err != nil {
			return err
		}
		newStock = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	if s.publisher != nil {
		go s.publishStockAdjusted(context.Background(), productID, newStock)
	}
	return newStock, nil
}

// applyAdjustment is a transaction participant: it locks the product row
// within the caller's transaction, validates, and writes. It never opens or
// closes transactions itself, so its caller defines the atomic boundary.
func applyAdjustment(ctx context.Context, tx repository.Tx, productID string, adj domain.StockAdjustment) (int, error) {
	current, err := tx.LockStock(ctx, productID)
	if err != nil {
		return 0, err
	}

	var next int
	switch adj.Kind {
	case domain.AdjustSet:
		if adj.Amount < 0 {
			return 0, &domain.ValidationError{Field: "stock", Reason: "must not be negative"}
		}
		next = adj.Amount
	case domain.AdjustDelta:
		next = current + adj.Amount
		if next < 0 {
			return 0, &domain.InsufficientStockError{
				ProductID: productID,
				Requested: -adj.Amount,
				Available: current,
			}
		}
	default:
		return 0, &domain.ValidationError{Field: "adjustment", Reason: "unknown kind"}
	}

	if err := tx.SetStock(ctx, productID, next); err != nil {
		return 0, err
	}
	return next, nil
}

func (s *StockService) publishStockAdjusted(ctx context.Context, productID string, newStock int) {
	evt := domain.StockAdjustedEvent{
		ProductID:  productID,
		NewStock:   newStock,
		AdjustedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, "stock.adjusted", evt); err != nil {
		log.Printf("Failed to publish stock.adjusted event: %v", err)
	}
}

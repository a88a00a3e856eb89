package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderPlacedEvent struct {
	InvoiceID      string          `json:"invoiceId"`
	CustomerID     string          `json:"customerId"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	DeliveryMethod DeliveryMethod  `json:"deliveryMethod"`
	Lines          []PlacedLine    `json:"lines"`
	PlacedAt       time.Time       `json:"placedAt"`
}

type PlacedLine struct {
	ProductID string          `json:"productId"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
}

type StockAdjustedEvent struct {
	ProductID  string    `json:"productId"`
	NewStock   int       `json:"newStock"`
	AdjustedAt time.Time `json:"adjustedAt"`
}

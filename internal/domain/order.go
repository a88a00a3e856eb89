package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryMethod string

const (
	DeliveryPickup   DeliveryMethod = "pickup"
	DeliveryDelivery DeliveryMethod = "delivery"
)

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryPickup || m == DeliveryDelivery
}

// Order is one purchase invoice. Rows are immutable after creation; the
// total is captured at sale time and never recomputed from the lines.
type Order struct {
	InvoiceID      string          `json:"invoiceId" gorm:"primaryKey;size:48"`
	CustomerID     string          `json:"customerId" gorm:"size:48;not null;index"`
	Customer       *Customer       `json:"-" gorm:"foreignKey:CustomerID"`
	TotalPrice     decimal.Decimal `json:"totalPrice" gorm:"type:decimal(10,2);not null"`
	DeliveryMethod DeliveryMethod  `json:"deliveryMethod" gorm:"type:enum('pickup','delivery');not null"`
	OrderDate      time.Time       `json:"orderDate" gorm:"type:date;not null"`
	IdempotencyKey *string         `json:"-" gorm:"size:64;uniqueIndex"`
	CreatedAt      time.Time       `json:"createdAt" gorm:"autoCreateTime"`
}

// OrderLine captures the unit price at sale time so later price changes do
// not rewrite historical totals.
type OrderLine struct {
	ID        string          `json:"id" gorm:"primaryKey;size:48"`
	InvoiceID string          `json:"invoiceId" gorm:"size:48;not null;index"`
	Order     *Order          `json:"-" gorm:"foreignKey:InvoiceID"`
	ProductID string          `json:"productId" gorm:"size:32;not null;index"`
	Product   *Product        `json:"-" gorm:"foreignKey:ProductID"`
	Qty       int             `json:"qty" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Note      string          `json:"note,omitempty" gorm:"size:255"`
}

// OrderWithCustomer is the sales-history read shape.
type OrderWithCustomer struct {
	InvoiceID      string          `json:"invoiceId"`
	CustomerID     string          `json:"customerId"`
	CustomerName   string          `json:"customerName"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address,omitempty"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	DeliveryMethod DeliveryMethod  `json:"deliveryMethod"`
	OrderDate      time.Time       `json:"orderDate"`
}

// OrderLineDetail is an order line joined with its product's catalog info.
type OrderLineDetail struct {
	ID           string          `json:"id"`
	InvoiceID    string          `json:"invoiceId"`
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	TypeName     string          `json:"typeName"`
	MaterialName string          `json:"materialName"`
	Qty          int             `json:"qty"`
	Price        decimal.Decimal `json:"price"`
	Note         string          `json:"note,omitempty"`
	ImageURL     string          `json:"imageUrl"`
}

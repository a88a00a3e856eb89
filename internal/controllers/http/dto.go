package http

import "github.com/shopspring/decimal"

type CheckoutCustomer struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
}

type CheckoutItem struct {
	ProductID string          `json:"productId" binding:"required"`
	Qty       int             `json:"qty" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
	Note      string          `json:"note"`
}

type CheckoutRequest struct {
	Customer       CheckoutCustomer `json:"customer" binding:"required"`
	Items          []CheckoutItem   `json:"items" binding:"required,min=1,dive"`
	DeliveryMethod string           `json:"deliveryMethod" binding:"required,oneof=pickup delivery"`
	ShippingCost   decimal.Decimal  `json:"shippingCost"`
	IdempotencyKey string           `json:"idempotencyKey"`
}

type CheckoutLineResponse struct {
	LineID    string          `json:"lineId"`
	ProductID string          `json:"productId"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
}

type CheckoutResponse struct {
	InvoiceID  string                 `json:"invoiceId"`
	CustomerID string                 `json:"customerId"`
	TotalPrice decimal.Decimal        `json:"totalPrice"`
	Lines      []CheckoutLineResponse `json:"lines"`
}

type CreateCustomerRequest struct {
	ID      string `json:"id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
}

type CreateOrderRequest struct {
	InvoiceID      string          `json:"invoiceId" binding:"required"`
	CustomerID     string          `json:"customerId" binding:"required"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	DeliveryMethod string          `json:"deliveryMethod" binding:"required"`
	OrderDate      string          `json:"orderDate" binding:"required"`
}

type CreateOrderLineRequest struct {
	LineID    string          `json:"lineId" binding:"required"`
	InvoiceID string          `json:"invoiceId" binding:"required"`
	ProductID string          `json:"productId" binding:"required"`
	Qty       int             `json:"qty" binding:"required"`
	Price     decimal.Decimal `json:"price"`
	Note      string          `json:"note"`
}

// AdjustStockRequest carries exactly one of the two fields: stock replaces
// the level outright, stockChange applies a signed delta.
type AdjustStockRequest struct {
	Stock       *int `json:"stock"`
	StockChange *int `json:"stockChange"`
}

type CreateProductRequest struct {
	ID         string          `json:"id" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	TypeID     uint64          `json:"typeId" binding:"required"`
	MaterialID uint64          `json:"materialId" binding:"required"`
	Stock      int             `json:"stock"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   string          `json:"imageUrl"`
}

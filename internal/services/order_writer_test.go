package services

import (
	"context"
	"testing"

	"furniture-store/internal/domain"
	"furniture-store/internal/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderWriterService_CreateCustomer(t *testing.T) {
	tests := []struct {
		name          string
		customer      domain.Customer
		txError       error
		expectedField string
		expectedError error
	}{
		{
			name:     "valid customer",
			customer: domain.Customer{ID: "C001", Name: "Somchai", Phone: "0812345678"},
		},
		{
			name:     "valid customer with nine digit phone",
			customer: domain.Customer{ID: "C002", Name: "Malee", Phone: "021234567", Address: "Bangkok"},
		},
		{
			name:          "phone too short",
			customer:      domain.Customer{ID: "C003", Name: "Somchai", Phone: "12345"},
			expectedField: "phone",
		},
		{
			name:          "phone with letters",
			customer:      domain.Customer{ID: "C004", Name: "Somchai", Phone: "08-1234567"},
			expectedField: "phone",
		},
		{
			name:          "missing id",
			customer:      domain.Customer{Name: "Somchai", Phone: "0812345678"},
			expectedField: "id",
		},
		{
			name:          "missing name",
			customer:      domain.Customer{ID: "C005", Phone: "0812345678"},
			expectedField: "name",
		},
		{
			name:          "duplicate id",
			customer:      domain.Customer{ID: "C001", Name: "Somchai", Phone: "0812345678"},
			txError:       domain.ErrDuplicateID,
			expectedError: domain.ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(mocks.MockStore)
			mockTx := new(mocks.MockTx)

			mockTx.On("CreateCustomer", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(tt.txError).Maybe()
			mockStore.On("Atomically", mock.Anything, mock.Anything).Return(mockTx, nil).Maybe()

			service := NewOrderWriterService(mockStore)
			err := service.CreateCustomer(context.Background(), tt.customer)

			switch {
			case tt.expectedField != "":
				var validation *domain.ValidationError
				assert.ErrorAs(t, err, &validation)
				assert.Equal(t, tt.expectedField, validation.Field)
				mockStore.AssertNotCalled(t, "Atomically", mock.Anything, mock.Anything)
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			default:
				assert.NoError(t, err)
				mockTx.AssertCalled(t, "CreateCustomer", mock.Anything, mock.AnythingOfType("*domain.Customer"))
			}
		})
	}
}

func TestOrderWriterService_CreateOrder(t *testing.T) {
	valid := CreateOrderInput{
		InvoiceID:      "INV001",
		CustomerID:     "C001",
		TotalPrice:     decimal.NewFromInt(350),
		DeliveryMethod: "delivery",
		OrderDate:      "2026-09-01",
	}

	tests := []struct {
		name          string
		mutate        func(*CreateOrderInput)
		txError       error
		expectedField string
		expectedError error
	}{
		{
			name:   "valid order",
			mutate: func(in *CreateOrderInput) {},
		},
		{
			name:          "bad delivery method",
			mutate:        func(in *CreateOrderInput) { in.DeliveryMethod = "teleport" },
			expectedField: "deliveryMethod",
		},
		{
			name:          "negative total",
			mutate:        func(in *CreateOrderInput) { in.TotalPrice = decimal.NewFromInt(-1) },
			expectedField: "totalPrice",
		},
		{
			name:          "malformed date",
			mutate:        func(in *CreateOrderInput) { in.OrderDate = "01/09/2026" },
			expectedField: "orderDate",
		},
		{
			name:          "impossible calendar date",
			mutate:        func(in *CreateOrderInput) { in.OrderDate = "2026-13-45" },
			expectedField: "orderDate",
		},
		{
			name:          "unknown customer reference",
			mutate:        func(in *CreateOrderInput) { in.CustomerID = "C404" },
			txError:       domain.ErrInvalidReference,
			expectedError: domain.ErrInvalidReference,
		},
		{
			name:          "duplicate invoice id",
			mutate:        func(in *CreateOrderInput) {},
			txError:       domain.ErrDuplicateID,
			expectedError: domain.ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(mocks.MockStore)
			mockTx := new(mocks.MockTx)

			mockTx.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(tt.txError).Maybe()
			mockStore.On("Atomically", mock.Anything, mock.Anything).Return(mockTx, nil).Maybe()

			in := valid
			tt.mutate(&in)

			service := NewOrderWriterService(mockStore)
			err := service.CreateOrder(context.Background(), in)

			switch {
			case tt.expectedField != "":
				var validation *domain.ValidationError
				assert.ErrorAs(t, err, &validation)
				assert.Equal(t, tt.expectedField, validation.Field)
				mockStore.AssertNotCalled(t, "Atomically", mock.Anything, mock.Anything)
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderWriterService_CreateOrderLine(t *testing.T) {
	valid := CreateOrderLineInput{
		LineID:    "OL001",
		InvoiceID: "INV001",
		ProductID: "F001",
		Qty:       2,
		Price:     decimal.NewFromInt(100),
	}

	tests := []struct {
		name          string
		mutate        func(*CreateOrderLineInput)
		txError       error
		expectedField string
		expectedError error
	}{
		{
			name:   "valid line",
			mutate: func(in *CreateOrderLineInput) {},
		},
		{
			name:          "zero quantity",
			mutate:        func(in *CreateOrderLineInput) { in.Qty = 0 },
			expectedField: "qty",
		},
		{
			name:          "negative quantity",
			mutate:        func(in *CreateOrderLineInput) { in.Qty = -1 },
			expectedField: "qty",
		},
		{
			name:          "negative price",
			mutate:        func(in *CreateOrderLineInput) { in.Price = decimal.NewFromInt(-50) },
			expectedField: "price",
		},
		{
			name:          "unknown product reference",
			mutate:        func(in *CreateOrderLineInput) { in.ProductID = "F404" },
			txError:       domain.ErrInvalidReference,
			expectedError: domain.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(mocks.MockStore)
			mockTx := new(mocks.MockTx)

			mockTx.On("CreateOrderLine", mock.Anything, mock.AnythingOfType("*domain.OrderLine")).Return(tt.txError).Maybe()
			mockStore.On("Atomically", mock.Anything, mock.Anything).Return(mockTx, nil).Maybe()

			in := valid
			tt.mutate(&in)

			service := NewOrderWriterService(mockStore)
			err := service.CreateOrderLine(context.Background(), in)

			switch {
			case tt.expectedField != "":
				var validation *domain.ValidationError
				assert.ErrorAs(t, err, &validation)
				assert.Equal(t, tt.expectedField, validation.Field)
				mockStore.AssertNotCalled(t, "Atomically", mock.Anything, mock.Anything)
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

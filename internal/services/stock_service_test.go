package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"furniture-store/internal/domain"
	"furniture-store/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStockService_Adjust(t *testing.T) {
	tests := []struct {
		name          string
		productID     string
		adjustment    domain.StockAdjustment
		setupMocks    func(*mocks.MockTx)
		expectedStock int
		expectedError error
		noWrite       bool
	}{
		{
			name:       "set replaces stock regardless of prior value",
			productID:  "F001",
			adjustment: domain.StockSet(7),
			setupMocks: func(tx *mocks.MockTx) {
				tx.On("LockStock", mock.Anything, "F001").Return(10, nil)
				tx.On("SetStock", mock.Anything, "F001", 7).Return(nil)
			},
			expectedStock: 7,
		},
		{
			name:       "negative delta decrements",
			productID:  "F001",
			adjustment: domain.StockDelta(-3),
			setupMocks: func(tx *mocks.MockTx) {
				tx.On("LockStock", mock.Anything, "F001").Return(10, nil)
				tx.On("SetStock", mock.Anything, "F001", 7).Return(nil)
			},
			expectedStock: 7,
		},
		{
			name:       "positive delta increments",
			productID:  "F001",
			adjustment: domain.StockDelta(3),
			setupMocks: func(tx *mocks.MockTx) {
				tx.On("LockStock", mock.Anything, "F001").Return(7, nil)
				tx.On("SetStock", mock.Anything, "F001", 10).Return(nil)
			},
			expectedStock: 10,
		},
		{
			name:       "delta below zero is rejected without writing",
			productID:  "F001",
			adjustment: domain.StockDelta(-5),
			setupMocks: func(tx *mocks.MockTx) {
				tx.On("LockStock", mock.Anything, "F001").Return(3, nil)
			},
			expectedError: domain.ErrInsufficientStock,
			noWrite:       true,
		},
		{
			name:       "negative set is rejected without writing",
			productID:  "F001",
			adjustment: domain.StockSet(-1),
			setupMocks: func(tx *mocks.MockTx) {
				tx.On("LockStock", mock.Anything, "F001").Return(3, nil)
			},
			expectedError: &domain.ValidationError{},
			noWrite:       true,
		},
		{
			name:       "unknown product",
			productID:  "F999",
			adjustment: domain.StockDelta(-1),
			setupMocks: func(tx *mocks.MockTx) {
				tx.On("LockStock", mock.Anything, "F999").Return(0, domain.ErrProductNotFound)
			},
			expectedError: domain.ErrProductNotFound,
			noWrite:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(mocks.MockStore)
			mockTx := new(mocks.MockTx)
			mockPublisher := new(mocks.MockPublisher)

			tt.setupMocks(mockTx)
			mockStore.On("Atomically", mock.Anything, mock.Anything).Return(mockTx, nil)
			mockPublisher.On("Publish", mock.Anything, "stock.adjusted", mock.Anything).Return(nil).Maybe()

			service := NewStockService(mockStore, mockPublisher)
			newStock, err := service.Adjust(context.Background(), tt.productID, tt.adjustment)

			if tt.expectedError != nil {
				assert.Error(t, err)
				var ve *domain.ValidationError
				if errors.As(tt.expectedError, &ve) {
					assert.ErrorAs(t, err, &ve)
				} else {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStock, newStock)
			}

			if tt.noWrite {
				mockTx.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything, mock.Anything)
			}

			time.Sleep(50 * time.Millisecond)
			mockTx.AssertExpectations(t)
		})
	}
}

func TestStockService_SetDeltaEquivalence(t *testing.T) {
	mockStore := new(mocks.MockStore)
	mockTx := new(mocks.MockTx)

	// Starting at 10, Delta(-3) then Delta(+3) lands back on 10.
	mockTx.On("LockStock", mock.Anything, "F001").Return(10, nil).Once()
	mockTx.On("SetStock", mock.Anything, "F001", 7).Return(nil).Once()
	mockTx.On("LockStock", mock.Anything, "F001").Return(7, nil).Once()
	mockTx.On("SetStock", mock.Anything, "F001", 10).Return(nil).Once()
	mockStore.On("Atomically", mock.Anything, mock.Anything).Return(mockTx, nil)

	service := NewStockService(mockStore, nil)

	stock, err := service.Adjust(context.Background(), "F001", domain.StockDelta(-3))
	assert.NoError(t, err)
	assert.Equal(t, 7, stock)

	stock, err = service.Adjust(context.Background(), "F001", domain.StockDelta(3))
	assert.NoError(t, err)
	assert.Equal(t, 10, stock)

	mockTx.AssertExpectations(t)
}

func TestStockService_InsufficientDetail(t *testing.T) {
	mockStore := new(mocks.MockStore)
	mockTx := new(mocks.MockTx)

	mockTx.On("LockStock", mock.Anything, "F001").Return(3, nil)
	mockStore.On("Atomically", mock.Anything, mock.Anything).Return(mockTx, nil)

	service := NewStockService(mockStore, nil)
	_, err := service.Adjust(context.Background(), "F001", domain.StockDelta(-5))

	var insufficient *domain.InsufficientStockError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "F001", insufficient.ProductID)
	assert.Equal(t, 5, insufficient.Requested)
	assert.Equal(t, 3, insufficient.Available)
}

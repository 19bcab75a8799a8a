package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/kodipay/rentledger/pkg/models"
	"github.com/kodipay/rentledger/pkg/storage"
	"github.com/kodipay/rentledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAllocate(t *testing.T) {
	dues := &Dues{RentDue: 40000, UtilityDue: 3000, DepositDue: 10000}

	t.Run("Payment Smaller Than Direct Bucket", func(t *testing.T) {
		alloc := allocate(dues, 0, 30000, models.RENT)

		assert.Equal(t, int64(30000), alloc.rent)
		assert.Equal(t, int64(0), alloc.utility)
		assert.Equal(t, int64(0), alloc.deposit)
		assert.Equal(t, int64(0), alloc.wallet)
	})

	t.Run("Remainder Drains Rent Then Utility Then Deposit", func(t *testing.T) {
		alloc := allocate(dues, 0, 45000, models.RENT)

		assert.Equal(t, int64(40000), alloc.rent)
		assert.Equal(t, int64(3000), alloc.utility)
		assert.Equal(t, int64(2000), alloc.deposit)
		assert.Equal(t, int64(0), alloc.wallet)
	})

	t.Run("Surplus Stays In Wallet", func(t *testing.T) {
		alloc := allocate(dues, 0, 60000, models.RENT)

		assert.Equal(t, int64(40000), alloc.rent)
		assert.Equal(t, int64(3000), alloc.utility)
		assert.Equal(t, int64(10000), alloc.deposit)
		assert.Equal(t, int64(7000), alloc.wallet)
	})

	t.Run("Utility Payment Remainder Still Drains Rent First", func(t *testing.T) {
		alloc := allocate(dues, 0, 10000, models.UTILITY)

		assert.Equal(t, int64(3000), alloc.utility)
		assert.Equal(t, int64(7000), alloc.rent)
		assert.Equal(t, int64(0), alloc.deposit)
		assert.Equal(t, int64(0), alloc.wallet)
	})

	t.Run("Other Payment Goes Through The Wallet", func(t *testing.T) {
		alloc := allocate(dues, 0, 5000, models.OTHER)

		assert.Equal(t, int64(5000), alloc.rent)
		assert.Equal(t, int64(0), alloc.utility)
		assert.Equal(t, int64(0), alloc.wallet)
	})

	t.Run("Existing Wallet Balance Joins The Drain", func(t *testing.T) {
		alloc := allocate(dues, 50000, 10000, models.DEPOSIT)

		assert.Equal(t, int64(10000), alloc.deposit)
		assert.Equal(t, int64(40000), alloc.rent)
		assert.Equal(t, int64(3000), alloc.utility)
		assert.Equal(t, int64(7000), alloc.wallet)
	})

	t.Run("Money Is Conserved", func(t *testing.T) {
		for _, amount := range []int64{1, 2999, 43000, 53001, 99999} {
			wallet := int64(1234)
			alloc := allocate(dues, wallet, amount, models.RENT)
			moved := alloc.rent + alloc.utility + alloc.deposit + alloc.wallet - wallet
			assert.Equal(t, amount, moved, "amount %d", amount)
		}
	})
}

func TestApplyPayment(t *testing.T) {
	leaseStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	paymentDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	property := &models.Property{
		Id:              "property1",
		RentPaymentDate: 5,
		UnitTypes: []models.UnitType{
			{Id: "unit1", Price: 50000, Deposit: 30000, MonthlyUtility: 5000},
		},
	}
	tenant := func() *models.Tenant {
		return &models.Tenant{
			Id:               "tenant1",
			PropertyId:       "property1",
			UnitTypeId:       "unit1",
			Status:           models.ACTIVE,
			LeaseStart:       leaseStart,
			TotalRentPaid:    60000,
			TotalDepositPaid: 30000,
			Version:          3,
		}
	}
	payment := &models.Payment{
		Id:          "payment1",
		TenantId:    "tenant1",
		Amount:      45000,
		Type:        models.RENT,
		PaymentDate: paymentDate,
	}

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		allocator := NewAllocator(mockStorage)

		mockStorage.On("GetTenant", mock.Anything, "tenant1").Return(tenant(), nil)
		mockStorage.On("GetProperty", mock.Anything, "property1").Return(property, nil)
		mockStorage.On("ListPaymentsByTenant", mock.Anything, "tenant1").Return(nil, nil)

		var captured *models.LedgerUpdate
		mockStorage.On("UpdateTenantLedger", mock.Anything, mock.AnythingOfType("*models.LedgerUpdate")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*models.LedgerUpdate)
			}).
			Return(&models.Tenant{Id: "tenant1", Version: 4}, nil)

		updated, err := allocator.ApplyPayment(context.Background(), payment)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), updated.Version)

		// Dues as of the payment date: rent 40000, utility 5000, deposit 0.
		// 45000 covers rent directly and drains 5000 into utility.
		assert.Equal(t, int64(3), captured.ExpectedVersion)
		assert.Equal(t, int64(100000), captured.TotalRentPaid)
		assert.Equal(t, int64(5000), captured.TotalUtilityPaid)
		assert.Equal(t, int64(30000), captured.TotalDepositPaid)
		assert.Equal(t, int64(0), captured.WalletBalance)
		assert.Equal(t, models.CURRENT, captured.PaymentStanding)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Partial Payment Marks Tenant Overdue", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		allocator := NewAllocator(mockStorage)

		mockStorage.On("GetTenant", mock.Anything, "tenant1").Return(tenant(), nil)
		mockStorage.On("GetProperty", mock.Anything, "property1").Return(property, nil)
		mockStorage.On("ListPaymentsByTenant", mock.Anything, "tenant1").Return(nil, nil)

		var captured *models.LedgerUpdate
		mockStorage.On("UpdateTenantLedger", mock.Anything, mock.AnythingOfType("*models.LedgerUpdate")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*models.LedgerUpdate)
			}).
			Return(&models.Tenant{Id: "tenant1", Version: 4}, nil)

		small := *payment
		small.Amount = 10000
		_, err := allocator.ApplyPayment(context.Background(), &small)

		assert.NoError(t, err)
		assert.Equal(t, models.OVERDUE, captured.PaymentStanding)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Non-Positive Amount", func(t *testing.T) {
		allocator := NewAllocator(new(mocks.Storage))

		bad := *payment
		bad.Amount = 0
		_, err := allocator.ApplyPayment(context.Background(), &bad)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "amount", validationErr.Field)
	})

	t.Run("Unknown Payment Type", func(t *testing.T) {
		allocator := NewAllocator(new(mocks.Storage))

		bad := *payment
		bad.Type = "AIRTIME"
		_, err := allocator.ApplyPayment(context.Background(), &bad)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "type", validationErr.Field)
	})

	t.Run("Version Conflict Propagates", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		allocator := NewAllocator(mockStorage)

		mockStorage.On("GetTenant", mock.Anything, "tenant1").Return(tenant(), nil)
		mockStorage.On("GetProperty", mock.Anything, "property1").Return(property, nil)
		mockStorage.On("ListPaymentsByTenant", mock.Anything, "tenant1").Return(nil, nil)
		mockStorage.On("UpdateTenantLedger", mock.Anything, mock.Anything).Return(nil, storage.ErrConcurrencyConflict)

		_, err := allocator.ApplyPayment(context.Background(), payment)

		assert.ErrorIs(t, err, storage.ErrConcurrencyConflict)
		mockStorage.AssertExpectations(t)
	})
}

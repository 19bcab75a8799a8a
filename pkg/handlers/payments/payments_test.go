package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	storage_mocks "github.com/kodipay/rentledger/pkg/storage/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/kodipay/rentledger/pkg/api"
	"github.com/kodipay/rentledger/pkg/gateway"
	"github.com/kodipay/rentledger/pkg/ledger"
	"github.com/kodipay/rentledger/pkg/models"
	"github.com/kodipay/rentledger/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func confirmRequest(t *testing.T, body api.ConfirmPayment) *http.Request {
	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(raw))
}

// urlParamRequest builds a request whose chi route context carries one URL
// parameter, so handlers can be exercised without a full router.
func urlParamRequest(method, target, key, value string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestConfirmPayment(t *testing.T) {
	leaseStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tenant := &models.Tenant{
		Id:         "tenant1",
		PropertyId: "property1",
		UnitTypeId: "unit1",
		Status:     models.ACTIVE,
		LeaseStart: leaseStart,
		Version:    1,
	}
	property := &models.Property{
		Id:              "property1",
		RentPaymentDate: 5,
		UnitTypes: []models.UnitType{
			{Id: "unit1", Price: 50000, Deposit: 30000, MonthlyUtility: 5000},
		},
	}
	body := api.ConfirmPayment{
		TenantId:    "tenant1",
		PropertyId:  "property1",
		Amount:      50000,
		Type:        "RENT",
		PaymentDate: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Success", func(t *testing.T) {
		// 1. Setup
		mockStorage := new(storage_mocks.Storage)
		processor := ledger.NewPaymentProcessor(mockStorage, &gateway.NoOpClient{})
		handler := NewPaymentsHandler(mockStorage, processor)

		created := &models.Payment{Id: "payment1", TenantId: "tenant1", Amount: 50000, Type: models.RENT, Status: models.PENDING}
		settled := *created
		settled.Status = models.COMPLETED

		// 2. Mock expectations
		mockStorage.On("CreatePayment", mock.Anything, mock.AnythingOfType("*models.Payment")).Return(created, nil)
		mockStorage.On("GetTenant", mock.Anything, "tenant1").Return(tenant, nil)
		mockStorage.On("GetProperty", mock.Anything, "property1").Return(property, nil)
		mockStorage.On("ListPaymentsByTenant", mock.Anything, "tenant1").Return(nil, nil)
		mockStorage.On("UpdateTenantLedger", mock.Anything, mock.Anything).Return(&models.Tenant{Id: "tenant1", Version: 2}, nil)
		mockStorage.On("SettlePayment", mock.Anything, "payment1", models.COMPLETED).Return(&settled, nil)

		// 3. Execute
		rr := httptest.NewRecorder()
		handler.ConfirmPayment(rr, confirmRequest(t, body))

		// 4. Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var result api.PaymentResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "COMPLETED", result.Payment.Status)
		assert.NotNil(t, result.Tenant)
		assert.Equal(t, int64(2), result.Tenant.Version)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		handler := NewPaymentsHandler(new(storage_mocks.Storage), nil)

		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()
		handler.ConfirmPayment(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Validation Failure", func(t *testing.T) {
		mockStorage := new(storage_mocks.Storage)
		processor := ledger.NewPaymentProcessor(mockStorage, &gateway.NoOpClient{})
		handler := NewPaymentsHandler(mockStorage, processor)

		bad := body
		bad.Amount = 0

		rr := httptest.NewRecorder()
		handler.ConfirmPayment(rr, confirmRequest(t, bad))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Duplicate Transaction Id", func(t *testing.T) {
		mockStorage := new(storage_mocks.Storage)
		processor := ledger.NewPaymentProcessor(mockStorage, &gateway.NoOpClient{})
		handler := NewPaymentsHandler(mockStorage, processor)

		completed := &models.Payment{Id: "payment1", TenantId: "tenant1", Amount: 50000, Type: models.RENT, Status: models.COMPLETED, TransactionId: "MPESA123"}
		mockStorage.On("CreatePayment", mock.Anything, mock.Anything).Return(nil, storage.ErrDuplicateTransaction)
		mockStorage.On("GetPaymentByTransactionId", mock.Anything, "MPESA123").Return(completed, nil)

		withTx := body
		withTx.TransactionId = "MPESA123"

		rr := httptest.NewRecorder()
		handler.ConfirmPayment(rr, confirmRequest(t, withTx))

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Tenant Not Found", func(t *testing.T) {
		mockStorage := new(storage_mocks.Storage)
		processor := ledger.NewPaymentProcessor(mockStorage, &gateway.NoOpClient{})
		handler := NewPaymentsHandler(mockStorage, processor)

		created := &models.Payment{Id: "payment1", TenantId: "tenant1", Amount: 50000, Type: models.RENT, Status: models.PENDING}
		mockStorage.On("CreatePayment", mock.Anything, mock.Anything).Return(created, nil)
		mockStorage.On("GetTenant", mock.Anything, "tenant1").Return(nil, storage.ErrTenantNotFound)

		rr := httptest.NewRecorder()
		handler.ConfirmPayment(rr, confirmRequest(t, body))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Exhausted Retries Map To Conflict", func(t *testing.T) {
		mockStorage := new(storage_mocks.Storage)
		processor := ledger.NewPaymentProcessor(mockStorage, &gateway.NoOpClient{})
		handler := NewPaymentsHandler(mockStorage, processor)

		created := &models.Payment{Id: "payment1", TenantId: "tenant1", Amount: 50000, Type: models.RENT, Status: models.PENDING}
		mockStorage.On("CreatePayment", mock.Anything, mock.Anything).Return(created, nil)
		mockStorage.On("GetTenant", mock.Anything, "tenant1").Return(tenant, nil)
		mockStorage.On("GetProperty", mock.Anything, "property1").Return(property, nil)
		mockStorage.On("ListPaymentsByTenant", mock.Anything, "tenant1").Return(nil, nil)
		mockStorage.On("UpdateTenantLedger", mock.Anything, mock.Anything).Return(nil, storage.ErrConcurrencyConflict)

		rr := httptest.NewRecorder()
		handler.ConfirmPayment(rr, confirmRequest(t, body))

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestGetPaymentById(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(storage_mocks.Storage)
		handler := NewPaymentsHandler(mockStorage, nil)

		payment := &models.Payment{Id: "payment1", TenantId: "tenant1", Amount: 50000, Status: models.COMPLETED}
		mockStorage.On("GetPayment", mock.Anything, "payment1").Return(payment, nil)

		req := urlParamRequest(http.MethodGet, "/payments/payment1", "paymentId", "payment1")
		rr := httptest.NewRecorder()
		handler.GetPaymentById(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got api.Payment
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "payment1", got.Id)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockStorage := new(storage_mocks.Storage)
		handler := NewPaymentsHandler(mockStorage, nil)

		mockStorage.On("GetPayment", mock.Anything, "missing").Return(nil, storage.ErrPaymentNotFound)

		req := urlParamRequest(http.MethodGet, "/payments/missing", "paymentId", "missing")
		rr := httptest.NewRecorder()
		handler.GetPaymentById(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/dto"
	"github.com/GlebRadaev/campuspay/internal/memstore"
	"github.com/GlebRadaev/campuspay/internal/service/paymentservice"
	"github.com/GlebRadaev/campuspay/internal/substrate"
	"github.com/GlebRadaev/campuspay/pkg/auth"
	"github.com/GlebRadaev/campuspay/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func newRequest(method, target, body, caller string, params ...string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := req.Context()
	if caller != "" {
		ctx = context.WithValue(ctx, auth.AddressKey, caller)
	}
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(params); i += 2 {
		rctx.URLParams.Add(params[i], params[i+1])
	}
	return req.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	var resp utils.Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Message
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		caller        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful deposit",
			body:   `{"payment":{"receiver":"APP-PAYMENT","amount":100}}`,
			caller: "alice",
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), domain.Address("alice"), &substrate.Payment{Receiver: domain.PaymentApp, Amount: 100}).
					Return(uint64(100), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Payment to wrong receiver",
			body:   `{"payment":{"receiver":"mallory","amount":100}}`,
			caller: "alice",
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), domain.Address("alice"), gomock.Any()).
					Return(uint64(0), paymentservice.ErrPaymentReceiver)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: paymentservice.ErrPaymentReceiver.Error(),
		},
		{
			name:          "Missing payment",
			body:          `{}`,
			caller:        "alice",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "payment is required",
		},
		{
			name:          "Unauthorized",
			body:          `{"payment":{"receiver":"APP-PAYMENT","amount":100}}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Deposit(rr, newRequest("POST", "/api/payment/deposit", tt.body, tt.caller))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
				return
			}
			var resp dto.BalanceResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, dto.BalanceResponseDTO{Address: "alice", Balance: 100}, resp)
		})
	}
}

func TestTransferHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful transfer",
			body: `{"recipient":"bob","amount":25,"note":"pizza"}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), domain.Address("alice"), domain.Address("bob"), uint64(25), "pizza").
					Return(uint64(3), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"recipient":"bob","amount":500}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), domain.Address("alice"), domain.Address("bob"), uint64(500), "").
					Return(uint64(0), paymentservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: paymentservice.ErrInsufficientBalance.Error(),
		},
		{
			name:          "Missing recipient",
			body:          `{"amount":5}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "recipient is required",
		},
		{
			name:          "Recipient too long",
			body:          `{"recipient":"` + strings.Repeat("x", 65) + `","amount":5}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "recipient must be at most 64",
		},
		{
			name: "Storage failure",
			body: `{"recipient":"bob","amount":5}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uint64(0), errors.New("connection reset"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Transfer(rr, newRequest("POST", "/api/payment/transfer", tt.body, "alice"))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
				return
			}
			var resp dto.IDResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, dto.IDResponseDTO{ID: 3}, resp)
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Withdraw(gomock.Any(), domain.Address("alice"), uint64(40)).Return(nil)
	rr := httptest.NewRecorder()
	handler.Withdraw(rr, newRequest("POST", "/api/payment/withdraw", `{"amount":40}`, "alice"))
	assert.Equal(t, http.StatusAccepted, rr.Code)

	service.EXPECT().Withdraw(gomock.Any(), domain.Address("alice"), uint64(0)).Return(paymentservice.ErrAmountNotPositive)
	rr = httptest.NewRecorder()
	handler.Withdraw(rr, newRequest("POST", "/api/payment/withdraw", `{"amount":0}`, "alice"))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = httptest.NewRecorder()
	handler.Withdraw(rr, newRequest("POST", "/api/payment/withdraw", `{`, "alice"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifyCampusHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().VerifyCampus(gomock.Any(), domain.Address("admin"), domain.Address("alice"), "north").Return(true, nil)
	rr := httptest.NewRecorder()
	handler.VerifyCampus(rr, newRequest("POST", "/api/payment/verify", `{"user":"alice","campus":"north"}`, "admin"))
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.VerifiedResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, dto.VerifiedResponseDTO{Address: "alice", Verified: true}, resp)

	service.EXPECT().VerifyCampus(gomock.Any(), domain.Address("mallory"), domain.Address("alice"), "north").
		Return(false, paymentservice.ErrOnlyCreatorVerifies)
	rr = httptest.NewRecorder()
	handler.VerifyCampus(rr, newRequest("POST", "/api/payment/verify", `{"user":"alice","campus":"north"}`, "mallory"))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestQueryHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetBalance(gomock.Any(), domain.Address("carol")).Return(uint64(0), nil)
	rr := httptest.NewRecorder()
	handler.GetBalance(rr, newRequest("GET", "/api/payment/balance/carol", "", "", "address", "carol"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"address":"carol","balance":0}`, rr.Body.String())

	service.EXPECT().IsVerified(gomock.Any(), domain.Address("carol")).Return(false, nil)
	rr = httptest.NewRecorder()
	handler.IsVerified(rr, newRequest("GET", "/api/payment/verified/carol", "", "", "address", "carol"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"address":"carol","verified":false}`, rr.Body.String())

	service.EXPECT().GetStats(gomock.Any()).Return(domain.PaymentStats{TotalVolume: 125, TotalTransactions: 3, ActiveUsers: 2, Custody: 100}, nil)
	rr = httptest.NewRecorder()
	handler.GetStats(rr, newRequest("GET", "/api/payment/stats", "", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"total_volume":125,"total_transactions":3,"active_users":2,"custody":100}`, rr.Body.String())

	rr = httptest.NewRecorder()
	handler.GetBalance(rr, newRequest("GET", "/api/payment/balance/", "", ""))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetPayoutsHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()
	createdAt := time.Unix(1_700_000_000, 0).UTC()

	service.EXPECT().GetPayouts(gomock.Any(), domain.Address("carol")).Return([]domain.Payout{{
		ID: id, App: domain.ExpenseApp, Receiver: "carol", Amount: 100, Kind: domain.PayoutSettlement,
		Reference: "group:1", Status: domain.PayoutStatusPending, CreatedAt: createdAt,
	}}, nil)
	rr := httptest.NewRecorder()
	handler.GetPayouts(rr, newRequest("GET", "/api/user/payouts", "", "carol"))
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.PayoutResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, []dto.PayoutResponseDTO{{
		ID: id.String(), App: "APP-EXPENSE", Amount: 100, Kind: "SETTLEMENT",
		Reference: "group:1", Status: "PENDING", CreatedAt: createdAt,
	}}, resp)

	service.EXPECT().GetPayouts(gomock.Any(), domain.Address("dave")).Return(nil, nil)
	rr = httptest.NewRecorder()
	handler.GetPayouts(rr, newRequest("GET", "/api/user/payouts", "", "dave"))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	handler.GetPayouts(rr, newRequest("GET", "/api/user/payouts", "", ""))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestTransferHandler_LedgerService(t *testing.T) {
	mem := memstore.New()
	exec := substrate.New(mem, mem, mem, mem, substrate.SystemClock{})
	handler := New(paymentservice.New("admin", exec, mem, mem))

	rr := httptest.NewRecorder()
	handler.Deposit(rr, newRequest("POST", "/api/payment/deposit", `{"payment":{"receiver":"APP-PAYMENT","amount":100}}`, "alice"))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.Transfer(rr, newRequest("POST", "/api/payment/transfer", `{"recipient":"bob","amount":25}`, "alice"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":2}`, rr.Body.String())

	rr = httptest.NewRecorder()
	handler.GetBalance(rr, newRequest("GET", "/api/payment/balance/alice", "", "", "address", "alice"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"address":"alice","balance":75}`, rr.Body.String())
}

package fundraise

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/dto"
	"github.com/GlebRadaev/campuspay/internal/service/fundraiseservice"
	"github.com/GlebRadaev/campuspay/internal/substrate"
	"github.com/GlebRadaev/campuspay/pkg/auth"
	"github.com/GlebRadaev/campuspay/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*FundraiseHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func newRequest(method, body, caller string, params ...string) *http.Request {
	req := httptest.NewRequest(method, "/api/campaigns", strings.NewReader(body))
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

func TestCreateCampaignHandler(t *testing.T) {
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
			name:   "Campaign created",
			body:   `{"goal":90,"num_milestones":3,"deadline":5000,"title":"Robotics"}`,
			caller: "carol",
			prepareMock: func() {
				service.EXPECT().CreateCampaign(gomock.Any(), domain.Address("carol"), fundraiseservice.CreateCampaignParams{
					Goal: 90, NumMilestones: 3, Deadline: 5000, Title: "Robotics",
				}).Return(uint64(1), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "Too many milestones",
			body:   `{"goal":90,"num_milestones":11,"deadline":5000}`,
			caller: "carol",
			prepareMock: func() {
				service.EXPECT().CreateCampaign(gomock.Any(), domain.Address("carol"), gomock.Any()).
					Return(uint64(0), fundraiseservice.ErrTooManyMilestones)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: fundraiseservice.ErrTooManyMilestones.Error(),
		},
		{
			name:   "Deadline in past",
			body:   `{"goal":90,"num_milestones":3,"deadline":1}`,
			caller: "carol",
			prepareMock: func() {
				service.EXPECT().CreateCampaign(gomock.Any(), domain.Address("carol"), gomock.Any()).
					Return(uint64(0), fundraiseservice.ErrDeadlineInPast)
			},
			expectedCode:  http.StatusConflict,
			expectedError: fundraiseservice.ErrDeadlineInPast.Error(),
		},
		{
			name:          "Malformed body",
			body:          `{"goal":`,
			caller:        "carol",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Unauthorized",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.CreateCampaign(rr, newRequest("POST", tt.body, tt.caller))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			assert.JSONEq(t, `{"id":1}`, rr.Body.String())
		})
	}
}

func TestDonateHandler(t *testing.T) {
	handler, service := NewMock(t)
	body := `{"payment":{"receiver":"APP-FUNDRAISE","amount":40}}`

	gomock.InOrder(
		service.EXPECT().Donate(gomock.Any(), domain.Address("dave"), uint64(1), &substrate.Payment{Receiver: domain.FundraiseApp, Amount: 40}).Return(nil),
		service.EXPECT().GetDonation(gomock.Any(), uint64(1), domain.Address("dave")).Return(uint64(40), nil),
	)
	rr := httptest.NewRecorder()
	handler.Donate(rr, newRequest("POST", body, "dave", "id", "1"))
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.DonationResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, dto.DonationResponseDTO{CampaignID: 1, Donor: "dave", Amount: 40}, resp)

	service.EXPECT().Donate(gomock.Any(), domain.Address("dave"), uint64(1), gomock.Any()).Return(fundraiseservice.ErrCampaignInactive)
	rr = httptest.NewRecorder()
	handler.Donate(rr, newRequest("POST", body, "dave", "id", "1"))
	assert.Equal(t, http.StatusConflict, rr.Code)

	service.EXPECT().Donate(gomock.Any(), domain.Address("dave"), uint64(1), gomock.Any()).Return(fundraiseservice.ErrPaymentReceiver)
	rr = httptest.NewRecorder()
	handler.Donate(rr, newRequest("POST", `{"payment":{"receiver":"mallory","amount":40}}`, "dave", "id", "1"))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = httptest.NewRecorder()
	handler.Donate(rr, newRequest("POST", `{}`, "dave", "id", "1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReleaseMilestoneHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		caller       string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Milestone released",
			caller: "carol",
			prepareMock: func() {
				service.EXPECT().ReleaseMilestone(gomock.Any(), domain.Address("carol"), uint64(1)).Return(uint64(30), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"amount":30}`,
		},
		{
			name:   "Not the creator",
			caller: "dave",
			prepareMock: func() {
				service.EXPECT().ReleaseMilestone(gomock.Any(), domain.Address("dave"), uint64(1)).Return(uint64(0), fundraiseservice.ErrOnlyCreator)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Not fully funded",
			caller: "carol",
			prepareMock: func() {
				service.EXPECT().ReleaseMilestone(gomock.Any(), domain.Address("carol"), uint64(1)).Return(uint64(0), fundraiseservice.ErrNotFullyFunded)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "All released",
			caller: "carol",
			prepareMock: func() {
				service.EXPECT().ReleaseMilestone(gomock.Any(), domain.Address("carol"), uint64(1)).Return(uint64(0), fundraiseservice.ErrAllMilestonesReleased)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.ReleaseMilestone(rr, newRequest("POST", "", tt.caller, "id", "1"))
			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestClaimRefundHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ClaimRefund(gomock.Any(), domain.Address("dave"), uint64(1)).Return(uint64(40), nil)
	rr := httptest.NewRecorder()
	handler.ClaimRefund(rr, newRequest("POST", "", "dave", "id", "1"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"amount":40}`, rr.Body.String())

	service.EXPECT().ClaimRefund(gomock.Any(), domain.Address("dave"), uint64(1)).Return(uint64(0), fundraiseservice.ErrDeadlineNotPassed)
	rr = httptest.NewRecorder()
	handler.ClaimRefund(rr, newRequest("POST", "", "dave", "id", "1"))
	assert.Equal(t, http.StatusConflict, rr.Code)

	service.EXPECT().ClaimRefund(gomock.Any(), domain.Address("erin"), uint64(1)).Return(uint64(0), fundraiseservice.ErrNoDonation)
	rr = httptest.NewRecorder()
	handler.ClaimRefund(rr, newRequest("POST", "", "erin", "id", "1"))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	handler.ClaimRefund(rr, newRequest("POST", "", "", "id", "1"))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestQueryHandlers(t *testing.T) {
	handler, service := NewMock(t)

	campaign := domain.Campaign{ID: 1, Creator: "carol", Goal: 90, Raised: 90, NumMilestones: 3, Deadline: 5000, Active: true, FullyFunded: true}
	service.EXPECT().GetCampaign(gomock.Any(), uint64(1)).Return(campaign, nil)
	rr := httptest.NewRecorder()
	handler.GetCampaign(rr, newRequest("GET", "", "", "id", "1"))
	assert.Equal(t, http.StatusOK, rr.Code)
	var got domain.Campaign
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, campaign, got)

	service.EXPECT().GetCampaign(gomock.Any(), uint64(2)).Return(domain.Campaign{}, fundraiseservice.ErrCampaignNotFound)
	rr = httptest.NewRecorder()
	handler.GetCampaign(rr, newRequest("GET", "", "", "id", "2"))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	service.EXPECT().GetDonation(gomock.Any(), uint64(1), domain.Address("dave")).Return(uint64(40), nil)
	rr = httptest.NewRecorder()
	handler.GetDonation(rr, newRequest("GET", "", "", "id", "1", "address", "dave"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"campaign_id":1,"donor":"dave","amount":40}`, rr.Body.String())

	service.EXPECT().GetStats(gomock.Any()).Return(domain.FundraiseStats{TotalCampaigns: 1, TotalRaised: 90, Custody: 60}, nil)
	rr = httptest.NewRecorder()
	handler.GetStats(rr, newRequest("GET", "", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"total_campaigns":1,"total_raised":90,"custody":60}`, rr.Body.String())
}

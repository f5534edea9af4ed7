package payouts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lfreitas-dev/pixadmin/internal/domain"
	"github.com/lfreitas-dev/pixadmin/internal/dto"
	"github.com/lfreitas-dev/pixadmin/internal/service/payoutservice"
	"github.com/lfreitas-dev/pixadmin/pkg/auth"
	"github.com/lfreitas-dev/pixadmin/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PayoutHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func withClaims(req *http.Request, claims *auth.Claims) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.ClaimsKey, claims))
}

func TestCreatePayoutHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful payout creation",
			body: `{"reference":"PAYOUT-2024-0001","destinationType":"pix_key","destinationKey":"maria@example.com","beneficiaryName":"Maria Silva","docType":"CPF","docNumber":"12345678901","amount":150.75}`,
			prepareMock: func() {
				service.EXPECT().CreatePayout(context.Background(), payoutservice.CreatePayoutParams{
					Reference:       "PAYOUT-2024-0001",
					DestinationType: "pix_key",
					DestinationKey:  "maria@example.com",
					BeneficiaryName: "Maria Silva",
					DocType:         "CPF",
					DocNumber:       "12345678901",
					Amount:          150.75,
				}).Return(&domain.Payout{
					ID:        1,
					Reference: "PAYOUT-2024-0001",
					Amount:    150.75,
					Status:    "requested",
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Scheduled payout",
			body: `{"reference":"PAYOUT-2024-0002","amount":99,"scheduledFor":"2024-12-20T10:00:00Z"}`,
			prepareMock: func() {
				scheduled := time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)
				service.EXPECT().CreatePayout(context.Background(), payoutservice.CreatePayoutParams{
					Reference:    "PAYOUT-2024-0002",
					Amount:       99,
					ScheduledFor: &scheduled,
				}).Return(&domain.Payout{
					ID:           2,
					Reference:    "PAYOUT-2024-0002",
					Amount:       99,
					Status:       "requested",
					ScheduledFor: &scheduled,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Missing reference",
			body: `{"amount":150.75}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Reference and amount are required",
		},
		{
			name: "Invalid scheduledFor timestamp",
			body: `{"reference":"PAYOUT-2024-0003","amount":99,"scheduledFor":"tomorrow"}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid 'scheduledFor' timestamp",
		},
		{
			name: "Reference already exists",
			body: `{"reference":"PAYOUT-2024-0001","amount":150.75}`,
			prepareMock: func() {
				service.EXPECT().CreatePayout(context.Background(), gomock.Any()).
					Return(nil, payoutservice.ErrReferenceAlreadyExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "payout reference already exists",
		},
		{
			name: "Internal error",
			body: `{"reference":"PAYOUT-2024-0001","amount":150.75}`,
			prepareMock: func() {
				service.EXPECT().CreatePayout(context.Background(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/payouts", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.CreatePayout(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.PayoutDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "requested", resp.Status)
			}
		})
	}
}

func TestGetPayoutHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Payout found",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().GetPayout(gomock.Any(), 1).Return(&domain.Payout{
					ID:        1,
					Reference: "PAYOUT-2024-0001",
					Status:    "requested",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid payout id",
			id:   "abc",
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid payout id",
		},
		{
			name: "Payout not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().GetPayout(gomock.Any(), 99).Return(nil, payoutservice.ErrPayoutNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Payout not found",
		},
		{
			name: "Internal error",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().GetPayout(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/payouts/"+tt.id, nil)
			req = withURLParam(req, "id", tt.id)
			rr := httptest.NewRecorder()

			handler.GetPayout(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestListPayoutsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		url           string
		prepareMock   func()
		expectedCode  int
		expectedError string
		count         int
	}{
		{
			name: "Payouts listed",
			url:  "/api/payouts",
			prepareMock: func() {
				service.EXPECT().ListPayouts(gomock.Any(), "").Return([]domain.Payout{
					{ID: 1, Reference: "PAYOUT-2024-0001", Status: "requested"},
					{ID: 2, Reference: "PAYOUT-2024-0002", Status: "approved"},
				}, nil)
			},
			expectedCode: http.StatusOK,
			count:        2,
		},
		{
			name: "Filtered by status",
			url:  "/api/payouts?status=requested",
			prepareMock: func() {
				service.EXPECT().ListPayouts(gomock.Any(), "requested").Return([]domain.Payout{
					{ID: 1, Reference: "PAYOUT-2024-0001", Status: "requested"},
				}, nil)
			},
			expectedCode: http.StatusOK,
			count:        1,
		},
		{
			name: "Internal error",
			url:  "/api/payouts",
			prepareMock: func() {
				service.EXPECT().ListPayouts(gomock.Any(), "").Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", tt.url, nil)
			rr := httptest.NewRecorder()

			handler.ListPayouts(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp []dto.PayoutDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tt.count)
			}
		})
	}
}

func TestApprovePayoutHandler(t *testing.T) {
	handler, service := NewMock(t)
	approverID := 7
	now := time.Now()

	adminClaims := &auth.Claims{UserID: approverID, Email: "admin@example.com", Role: "admin"}
	operatorClaims := &auth.Claims{UserID: 3, Email: "op@example.com", Role: "operator"}

	tests := []struct {
		name          string
		id            string
		claims        *auth.Claims
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Payout approved",
			id:     "1",
			claims: adminClaims,
			prepareMock: func() {
				service.EXPECT().ApprovePayout(gomock.Any(), 1, approverID, "admin").Return(&domain.Payout{
					ID:         1,
					Reference:  "PAYOUT-2024-0001",
					Status:     "approved",
					ApprovedBy: &approverID,
					ApprovedAt: &now,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Invalid payout id",
			id:     "abc",
			claims: adminClaims,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid payout id",
		},
		{
			name:   "Missing claims",
			id:     "1",
			claims: nil,
			prepareMock: func() {
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:   "Role not allowed",
			id:     "1",
			claims: operatorClaims,
			prepareMock: func() {
				service.EXPECT().ApprovePayout(gomock.Any(), 1, 3, "operator").
					Return(nil, payoutservice.ErrApprovalNotAllowed)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "role is not allowed to approve payouts",
		},
		{
			name:   "Payout not found",
			id:     "99",
			claims: adminClaims,
			prepareMock: func() {
				service.EXPECT().ApprovePayout(gomock.Any(), 99, approverID, "admin").
					Return(nil, payoutservice.ErrPayoutNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Payout not found",
		},
		{
			name:   "Payout already approved",
			id:     "1",
			claims: adminClaims,
			prepareMock: func() {
				service.EXPECT().ApprovePayout(gomock.Any(), 1, approverID, "admin").
					Return(nil, payoutservice.ErrPayoutNotApprovable)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "payout is not awaiting approval",
		},
		{
			name:   "Internal error",
			id:     "1",
			claims: adminClaims,
			prepareMock: func() {
				service.EXPECT().ApprovePayout(gomock.Any(), 1, approverID, "admin").
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/payouts/"+tt.id+"/approve", nil)
			req = withURLParam(req, "id", tt.id)
			if tt.claims != nil {
				req = withClaims(req, tt.claims)
			}
			rr := httptest.NewRecorder()

			handler.ApprovePayout(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.PayoutDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "approved", resp.Status)
				assert.NotNil(t, resp.ApprovedBy)
				assert.Equal(t, approverID, *resp.ApprovedBy)
			}
		})
	}
}

package chargeservice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lfreitas-dev/pixadmin/internal/domain"
	"github.com/lfreitas-dev/pixadmin/internal/mercadopago"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *mercadopago.MockClientI) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	provider := mercadopago.NewMockClientI(ctrl)

	service := New(repo, provider, "https://pixadmin.example.com/api/webhooks/mercadopago")
	defer ctrl.Finish()
	return service, repo, provider
}

func paymentFixture() *mercadopago.Payment {
	payment := &mercadopago.Payment{
		ID:                74123158221,
		Status:            "pending",
		ExternalReference: "ORDER-1",
		Raw:               json.RawMessage(`{"id":74123158221,"status":"pending"}`),
	}
	payment.PointOfInteraction.TransactionData.QRCode = "00020126pix"
	payment.PointOfInteraction.TransactionData.QRCodeBase64 = "iVBORw0KGgo"
	payment.PointOfInteraction.TransactionData.TransactionID = "74123158221"
	return payment
}

func TestCreateCharge(t *testing.T) {
	service, repo, provider := NewMock(t)

	tests := []struct {
		name          string
		params        CreateChargeParams
		prepareMock   func()
		expectedError error
		check         func(t *testing.T, charge *domain.Charge)
	}{
		{
			name: "Successful charge creation",
			params: CreateChargeParams{
				Amount:      10.5,
				Description: "Pedido 42",
				OrderID:     "ORDER-1",
			},
			prepareMock: func() {
				repo.EXPECT().FindByOrderID(context.Background(), "ORDER-1").Return(nil, nil)
				provider.EXPECT().CreatePayment(context.Background(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, req *mercadopago.PaymentRequest) (*mercadopago.Payment, error) {
						assert.Equal(t, 10.5, req.TransactionAmount)
						assert.Equal(t, "pix", req.PaymentMethodID)
						assert.Equal(t, "ORDER-1", req.ExternalReference)
						assert.Equal(t, "https://pixadmin.example.com/api/webhooks/mercadopago", req.NotificationURL)
						return paymentFixture(), nil
					})
				repo.EXPECT().Save(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, charge *domain.Charge) error {
					charge.ID = 1
					return nil
				})
			},
			check: func(t *testing.T, charge *domain.Charge) {
				assert.Equal(t, 1, charge.ID)
				assert.Equal(t, AwaitingPaymentStatus, charge.Status)
				assert.Equal(t, "BRL", charge.Currency)
				assert.Equal(t, "74123158221", charge.TxID)
				assert.Equal(t, "data:image/png;base64,iVBORw0KGgo", charge.QRUrl)
				assert.Equal(t, "00020126pix", charge.CopiaECola)
				assert.NotNil(t, charge.ExpirationAt)
			},
		},
		{
			name: "Order id generated when absent",
			params: CreateChargeParams{
				Amount:      20.0,
				Description: "Pedido 43",
			},
			prepareMock: func() {
				repo.EXPECT().FindByOrderID(context.Background(), gomock.Any()).Return(nil, nil)
				provider.EXPECT().CreatePayment(context.Background(), gomock.Any()).Return(paymentFixture(), nil)
				repo.EXPECT().Save(context.Background(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, charge *domain.Charge) {
				assert.True(t, strings.HasPrefix(charge.OrderID, "ORDER-"))
			},
		},
		{
			name: "Order already exists",
			params: CreateChargeParams{
				Amount:  10.5,
				OrderID: "ORDER-1",
			},
			prepareMock: func() {
				repo.EXPECT().FindByOrderID(context.Background(), "ORDER-1").Return(&domain.Charge{OrderID: "ORDER-1"}, nil)
			},
			expectedError: ErrOrderAlreadyExists,
		},
		{
			name: "Provider error",
			params: CreateChargeParams{
				Amount:  10.5,
				OrderID: "ORDER-1",
			},
			prepareMock: func() {
				repo.EXPECT().FindByOrderID(context.Background(), "ORDER-1").Return(nil, nil)
				provider.EXPECT().CreatePayment(context.Background(), gomock.Any()).
					Return(nil, &mercadopago.APIError{StatusCode: 400, Message: "invalid access token"})
			},
			expectedError: &mercadopago.APIError{StatusCode: 400, Message: "invalid access token"},
		},
		{
			name: "Concurrent duplicate caught on save",
			params: CreateChargeParams{
				Amount:  10.5,
				OrderID: "ORDER-1",
			},
			prepareMock: func() {
				repo.EXPECT().FindByOrderID(context.Background(), "ORDER-1").Return(nil, nil)
				provider.EXPECT().CreatePayment(context.Background(), gomock.Any()).Return(paymentFixture(), nil)
				repo.EXPECT().Save(context.Background(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})
			},
			expectedError: ErrOrderAlreadyExists,
		},
		{
			name: "Database error on save",
			params: CreateChargeParams{
				Amount:  10.5,
				OrderID: "ORDER-1",
			},
			prepareMock: func() {
				repo.EXPECT().FindByOrderID(context.Background(), "ORDER-1").Return(nil, nil)
				provider.EXPECT().CreatePayment(context.Background(), gomock.Any()).Return(paymentFixture(), nil)
				repo.EXPECT().Save(context.Background(), gomock.Any()).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			charge, err := service.CreateCharge(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, charge)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, charge)
				tt.check(t, charge)
			}
		})
	}
}

func TestGetCharge(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		id            int
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Charge found",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 1).Return(&domain.Charge{ID: 1, OrderID: "ORDER-1"}, nil)
			},
		},
		{
			name: "Charge not found",
			id:   99,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 99).Return(nil, nil)
			},
			expectedError: ErrChargeNotFound,
		},
		{
			name: "Database error",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 1).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			charge, err := service.GetCharge(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, charge)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, charge.ID)
			}
		})
	}
}

func TestListCharges(t *testing.T) {
	service, repo, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		filter        domain.ChargeFilter
		prepareMock   func()
		expectedError error
		count         int
	}{
		{
			name:   "Charges listed",
			filter: domain.ChargeFilter{Status: PaidStatus},
			prepareMock: func() {
				repo.EXPECT().List(context.Background(), domain.ChargeFilter{Status: PaidStatus}).Return([]domain.Charge{
					{ID: 1, OrderID: "ORDER-1", Status: PaidStatus, PaidAt: &now},
				}, nil)
			},
			count: 1,
		},
		{
			name:   "Database error",
			filter: domain.ChargeFilter{},
			prepareMock: func() {
				repo.EXPECT().List(context.Background(), domain.ChargeFilter{}).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			charges, err := service.ListCharges(context.Background(), tt.filter)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, charges)
			} else {
				assert.NoError(t, err)
				assert.Len(t, charges, tt.count)
			}
		})
	}
}

func TestGenerateOrderID(t *testing.T) {
	first := generateOrderID()
	second := generateOrderID()

	assert.True(t, strings.HasPrefix(first, "ORDER-"))
	assert.Len(t, strings.Split(first, "-"), 3)
	assert.NotEqual(t, first, second)
}

package webhooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lfreitas-dev/pixadmin/internal/domain"
	"github.com/lfreitas-dev/pixadmin/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WebhookHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestReceiveMercadoPago(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "Payment event recorded",
			body: `{"type":"payment","data":{"id":"74123158221"}}`,
			prepareMock: func() {
				service.EXPECT().Ingest(gomock.Any(), "Mercado Pago", "payment", gomock.Any(), []byte(`{"type":"payment","data":{"id":"74123158221"}}`)).
					Return(&domain.Webhook{ID: 1}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "ok",
		},
		{
			name: "Numeric data id accepted",
			body: `{"type":"payment","data":{"id":74123158221}}`,
			prepareMock: func() {
				service.EXPECT().Ingest(gomock.Any(), "Mercado Pago", "payment", gomock.Any(), gomock.Any()).
					Return(&domain.Webhook{ID: 2}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "ok",
		},
		{
			name: "Non-payment event still recorded",
			body: `{"type":"test","data":{}}`,
			prepareMock: func() {
				service.EXPECT().Ingest(gomock.Any(), "Mercado Pago", "test", gomock.Any(), gomock.Any()).
					Return(&domain.Webhook{ID: 3}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "ok",
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name: "Persistence failure surfaces as 500",
			body: `{"type":"payment","data":{"id":"74123158221"}}`,
			prepareMock: func() {
				service.EXPECT().Ingest(gomock.Any(), "Mercado Pago", "payment", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/webhooks/mercadopago", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.ReceiveMercadoPago(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp utils.Response
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

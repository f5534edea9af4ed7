package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jwtService := NewMockJWTServiceInterface(ctrl)
	claims := &Claims{UserID: 1, Email: "maria@example.com", Role: "operator"}

	tests := []struct {
		name         string
		authHeader   string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:       "Valid token",
			authHeader: "Bearer valid-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("valid-token").Return(claims, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			authHeader:   "",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Missing bearer prefix",
			authHeader:   "valid-token",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "Invalid token",
			authHeader: "Bearer bad-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got := ClaimsFromContext(r.Context())
				assert.Equal(t, claims, got)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/api/charges", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			AuthMiddleware(jwtService)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestClaimsFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	assert.Nil(t, ClaimsFromContext(req.Context()))
}

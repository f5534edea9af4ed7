package mercadopago

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lfreitas-dev/pixadmin/pkg/clients"
)

type ClientI interface {
	CreatePayment(ctx context.Context, req *PaymentRequest) (*Payment, error)
	GetPayment(ctx context.Context, paymentID string) (*Payment, error)
}

type PaymentRequest struct {
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	PaymentMethodID   string  `json:"payment_method_id"`
	ExternalReference string  `json:"external_reference"`
	NotificationURL   string  `json:"notification_url,omitempty"`
	DateOfExpiration  string  `json:"date_of_expiration,omitempty"`
}

type TransactionData struct {
	QRCode                 string `json:"qr_code"`
	QRCodeBase64           string `json:"qr_code_base64"`
	TransactionID          string `json:"transaction_id"`
	FinancialInstitutionID string `json:"financial_institution_id"`
}

type Payment struct {
	ID                 int64           `json:"id"`
	Status             string          `json:"status"`
	ExternalReference  string          `json:"external_reference"`
	Payer              json.RawMessage `json:"payer"`
	PointOfInteraction struct {
		TransactionData TransactionData `json:"transaction_data"`
	} `json:"point_of_interaction"`

	// Raw is the unparsed provider response, persisted for forward
	// compatibility with provider schema changes.
	Raw json.RawMessage `json:"-"`
}

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mercadopago: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL     string
	accessToken string
	client      clients.HTTPClientI
}

func New(baseURL, accessToken string, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		client:      client,
	}
}

func (c *Client) CreatePayment(ctx context.Context, req *PaymentRequest) (*Payment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("can't marshal payment request: %w", err)
	}

	statusCode, respBody, _, err := c.client.Post(c.baseURL+"/v1/payments", c.headers(), body)
	if err != nil {
		return nil, fmt.Errorf("payment create request failed: %w", err)
	}
	return parsePayment(statusCode, respBody)
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	statusCode, respBody, _, err := c.client.Get(c.baseURL+"/v1/payments/"+paymentID, c.headers())
	if err != nil {
		return nil, fmt.Errorf("payment get request failed: %w", err)
	}
	return parsePayment(statusCode, respBody)
}

func (c *Client) headers() http.Header {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.accessToken)
	headers.Set("Content-Type", "application/json")
	return headers
}

func parsePayment(statusCode int, respBody []byte) (*Payment, error) {
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: statusCode, Message: string(respBody)}
		var errResp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
		}
		return nil, apiErr
	}

	var payment Payment
	if err := json.Unmarshal(respBody, &payment); err != nil {
		return nil, fmt.Errorf("can't parse payment response: %w", err)
	}
	payment.Raw = append([]byte(nil), respBody...)
	return &payment, nil
}

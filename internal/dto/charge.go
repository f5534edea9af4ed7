package dto

import "encoding/json"

type CreateChargeRequestDTO struct {
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Description     string  `json:"description" validate:"required"`
	OrderID         string  `json:"orderId,omitempty"`
	ExpireInMinutes int     `json:"expireInMinutes,omitempty" validate:"omitempty,gt=0"`
}

type CreateChargeResponseDTO struct {
	ID           int     `json:"id" example:"1"`
	Status       string  `json:"status" example:"aguardando"`
	QRUrl        string  `json:"qrUrl" example:"data:image/png;base64,iVBOR..."`
	CopiaECola   string  `json:"copiaECola" example:"00020126580014br.gov.bcb.pix..."`
	TxID         string  `json:"txid" example:"74123158221"`
	ExpirationAt string  `json:"expirationAt" example:"2024-12-09T16:09:57Z"`
	OrderID      string  `json:"orderId" example:"ORDER-1733760000000-4fa1"`
	Amount       float64 `json:"amount" example:"10.5"`
	Description  string  `json:"description" example:"Pedido 42"`
}

type ChargeDTO struct {
	ID           int             `json:"id" example:"1"`
	OrderID      string          `json:"orderId" example:"ORDER-1733760000000-4fa1"`
	TxID         string          `json:"txid,omitempty" example:"74123158221"`
	E2EID        string          `json:"e2eId,omitempty"`
	Status       string          `json:"status" example:"pago"`
	Amount       float64         `json:"amount" example:"10.5"`
	Currency     string          `json:"currency" example:"BRL"`
	Description  string          `json:"description,omitempty"`
	QRUrl        string          `json:"qrUrl,omitempty"`
	CopiaECola   string          `json:"copiaECola,omitempty"`
	ExpirationAt string          `json:"expirationAt,omitempty"`
	PaidAt       string          `json:"paidAt,omitempty"`
	PayerInfo    json.RawMessage `json:"payerInfo,omitempty"`
	ProviderRaw  json.RawMessage `json:"providerRaw,omitempty"`
	CreatedAt    string          `json:"createdAt"`
}

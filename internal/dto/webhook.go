package dto

import "encoding/json"

// WebhookEventDTO is the Mercado Pago notification envelope. Payloads vary by
// event type, so everything beyond the routing fields stays raw.
type WebhookEventDTO struct {
	Type string `json:"type"`
	Data struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

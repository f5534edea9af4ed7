package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Charge struct {
	ID           int        `db:"id"`
	OrderID      string     `db:"order_id"`
	TxID         string     `db:"txid"`
	E2EID        string     `db:"e2e_id"`
	Status       string     `db:"status"`
	Amount       float64    `db:"amount"`
	Currency     string     `db:"currency"`
	Description  string     `db:"description"`
	QRUrl        string     `db:"qr_url"`
	CopiaECola   string     `db:"copia_e_cola"`
	ExpirationAt *time.Time `db:"expiration_at"`
	PaidAt       *time.Time `db:"paid_at"`
	PayerInfo    []byte     `db:"payer_info"`
	ProviderRaw  []byte     `db:"provider_raw"`
	CreatedAt    time.Time  `db:"created_at"`
}

// ChargeFilter narrows charge listings. Zero values mean "no constraint".
type ChargeFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
	Query  string
}

type Webhook struct {
	ID           int        `db:"id"`
	Provider     string     `db:"provider"`
	EventType    string     `db:"event_type"`
	HTTPHeaders  []byte     `db:"http_headers"`
	Payload      []byte     `db:"payload"`
	Processed    bool       `db:"processed"`
	Retries      int        `db:"retries"`
	ErrorMessage string     `db:"error_message"`
	CreatedAt    time.Time  `db:"created_at"`
	ProcessedAt  *time.Time `db:"processed_at"`
}

type Payout struct {
	ID              int        `db:"id"`
	Reference       string     `db:"reference"`
	DestinationType string     `db:"destination_type"`
	DestinationKey  string     `db:"destination_key"`
	BeneficiaryName string     `db:"beneficiary_name"`
	DocType         string     `db:"doc_type"`
	DocNumber       string     `db:"doc_number"`
	Amount          float64    `db:"amount"`
	Status          string     `db:"status"`
	ScheduledFor    *time.Time `db:"scheduled_for"`
	ApprovedBy      *int       `db:"approved_by"`
	ApprovedAt      *time.Time `db:"approved_at"`
	ProviderRaw     []byte     `db:"provider_raw"`
	CreatedAt       time.Time  `db:"created_at"`
}

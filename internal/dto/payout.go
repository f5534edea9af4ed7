package dto

type CreatePayoutRequestDTO struct {
	Reference       string  `json:"reference" validate:"required"`
	DestinationType string  `json:"destinationType,omitempty" validate:"omitempty,oneof=pix_key bank_account"`
	DestinationKey  string  `json:"destinationKey,omitempty"`
	BeneficiaryName string  `json:"beneficiaryName,omitempty"`
	DocType         string  `json:"docType,omitempty" validate:"omitempty,oneof=CPF CNPJ"`
	DocNumber       string  `json:"docNumber,omitempty"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	ScheduledFor    string  `json:"scheduledFor,omitempty"`
}

type PayoutDTO struct {
	ID              int     `json:"id" example:"1"`
	Reference       string  `json:"reference" example:"PAYOUT-2024-0001"`
	DestinationType string  `json:"destinationType,omitempty" example:"pix_key"`
	DestinationKey  string  `json:"destinationKey,omitempty"`
	BeneficiaryName string  `json:"beneficiaryName,omitempty"`
	DocType         string  `json:"docType,omitempty" example:"CPF"`
	DocNumber       string  `json:"docNumber,omitempty"`
	Amount          float64 `json:"amount" example:"150.75"`
	Status          string  `json:"status" example:"requested"`
	ScheduledFor    string  `json:"scheduledFor,omitempty"`
	ApprovedBy      *int    `json:"approvedBy,omitempty"`
	ApprovedAt      string  `json:"approvedAt,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

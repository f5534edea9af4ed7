package dto

type RegisterRequestDTO struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin operator financeiro auditor reader"`
}

type UserDTO struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Maria Silva"`
	Email string `json:"email" example:"maria@example.com"`
	Role  string `json:"role" example:"operator"`
}

type RegisterResponseDTO struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	AccessToken string `json:"accessToken"`
}

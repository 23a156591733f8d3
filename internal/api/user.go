// File: internal/api/user.go
package api

import "time"

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username string `json:"usuario" validate:"required,email,max=150" example:"ana@plataforma.gov"`
	Password string `json:"senha" validate:"required,min=6,max=100" example:"Secret123!"`
	Name     string `json:"nome" validate:"required,max=150" example:"Ana Souza"`
	Role     string `json:"perfil" validate:"required,oneof=ADMINISTRADOR USUARIO" example:"USUARIO"`
}

// UpdateUserRequest keeps the current password when Password is empty.
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Username string `json:"usuario" validate:"required,email,max=150"`
	Password string `json:"senha" validate:"omitempty,min=6,max=100"`
	Name     string `json:"nome" validate:"required,max=150"`
	Role     string `json:"perfil" validate:"required,oneof=ADMINISTRADOR USUARIO"`
}

// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Username string `json:"usuario" validate:"required,email,max=150"`
	Password string `json:"senha" validate:"omitempty,min=6,max=100"`
	Name     string `json:"nome" validate:"required,max=150"`
}

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Username  string    `json:"usuario" example:"ana@plataforma.gov"`
	Name      string    `json:"nome" example:"Ana Souza"`
	Role      string    `json:"perfil" example:"USUARIO"`
	CreatedAt time.Time `json:"criadoEm"`
}

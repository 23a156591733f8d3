package api

import "time"

// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `json:"usuario" validate:"required,email,max=150" example:"admin@plataforma.gov"`
	Password string `json:"senha" validate:"required,max=100" example:"123456"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	ID           int       `json:"id" example:"1"`
	Username     string    `json:"usuario" example:"admin@plataforma.gov"`
	Name         string    `json:"nome" example:"Administrador"`
	Role         string    `json:"perfil" example:"ADMINISTRADOR"`
	AccessToken  string    `json:"accessToken" example:"eyJhbGciOi..."`
	RefreshToken string    `json:"refreshToken" example:"q9m1..."`
	ExpiresAt    time.Time `json:"expiraEm"`
}

// swagger:model api.RefreshRequest
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// swagger:model api.TokenResponse
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiraEm"`
}

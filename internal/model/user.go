// File: internal/model/user.go
package model

import "time"

// Role maps to the perfil_usuario enum.
type Role string

const (
	RoleAdmin Role = "ADMINISTRADOR"
	RoleUser  Role = "USUARIO"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID           int       `db:"id" json:"id"`
	Username     string    `db:"usuario" json:"usuario"`
	PasswordHash string    `db:"senha_hash" json:"-"`
	Name         string    `db:"nome" json:"nome"`
	Role         Role      `db:"perfil" json:"perfil"`
	CreatedAt    time.Time `db:"criado_em" json:"criado_em"`
}

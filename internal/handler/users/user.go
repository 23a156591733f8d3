package users

import (
	"strconv"
	"strings"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/service"
	"gestor-politico/internal/store"
)

var (
	listUsers          = store.ListUsers
	getUserByID        = store.GetUserByID
	createUser         = store.CreateUser
	updateUser         = store.UpdateUser
	updateUserPassword = store.UpdateUserPassword
	deleteUser         = store.DeleteUser
	hashPassword       = service.HashPassword
)

func toResponse(u model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("id de usuário inválido")
	}
	return id, nil
}

// normalizeUsername lowercases the e-mail used as login.
func normalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// writeErr maps a duplicated login to a conflict.
func writeErr(err error) error {
	if database.IsUniqueViolation(err) {
		return apperr.Conflict("usuário já cadastrado")
	}
	return err
}

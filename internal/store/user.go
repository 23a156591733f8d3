package store

import (
	"context"
	"fmt"

	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
)

const userColumns = `id, usuario, senha_hash, nome, perfil::text, criado_em`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	u := &model.User{}
	var role string
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Name,
		&role,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = model.Role(role)
	return u, nil
}

func GetUserByID(ctx context.Context, db database.Querier, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM login WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// GetUserByUsername looks the login up case-insensitively.
func GetUserByUsername(ctx context.Context, db database.Querier, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM login WHERE lower(usuario) = lower($1)`,
		username,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.Querier) ([]model.User, error) {
	rows, err := db.Query(ctx, `SELECT `+userColumns+` FROM login ORDER BY nome, id`)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var list []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		list = append(list, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return list, nil
}

func CountUsers(ctx context.Context, db database.Querier) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM login`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return n, nil
}

func CreateUser(ctx context.Context, db database.Querier, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO login (usuario, senha_hash, nome, perfil)
		 VALUES ($1, $2, $3, $4::perfil_usuario)
		 RETURNING id, criado_em`,
		u.Username,
		u.PasswordHash,
		u.Name,
		string(u.Role),
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// UpdateUser rewrites name, login and role. It reports whether the row existed.
func UpdateUser(ctx context.Context, db database.Querier, u *model.User) (bool, error) {
	tag, err := db.Exec(ctx,
		`UPDATE login SET usuario = $1, nome = $2, perfil = $3::perfil_usuario
		 WHERE id = $4`,
		u.Username,
		u.Name,
		string(u.Role),
		u.ID,
	)
	if err != nil {
		return false, fmt.Errorf("UpdateUser: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func UpdateUserPassword(ctx context.Context, db database.Querier, userID int, passwordHash string) error {
	_, err := db.Exec(ctx,
		`UPDATE login
		 SET senha_hash = $1
		 WHERE id = $2`,
		passwordHash,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserPassword: %w", err)
	}
	return nil
}

func DeleteUser(ctx context.Context, db database.Querier, id int) (bool, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM login WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("DeleteUser: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

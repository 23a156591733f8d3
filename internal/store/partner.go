package store

import (
	"context"
	"fmt"

	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
)

func GetPartnerByMember(ctx context.Context, db database.Querier, memberID int) (*model.Partner, error) {
	p := &model.Partner{}
	err := db.QueryRow(ctx,
		`SELECT p.id, p.membro_id, p.token, p.criado_em, m.nome_completo
		 FROM parceiro p JOIN membro_familia m ON m.id = p.membro_id
		 WHERE p.membro_id = $1`,
		memberID,
	).Scan(&p.ID, &p.MemberID, &p.Token, &p.CreatedAt, &p.MemberName)
	if err != nil {
		return nil, fmt.Errorf("GetPartnerByMember: %w", err)
	}
	return p, nil
}

func GetPartnerByToken(ctx context.Context, db database.Querier, token string) (*model.Partner, error) {
	p := &model.Partner{}
	err := db.QueryRow(ctx,
		`SELECT p.id, p.membro_id, p.token, p.criado_em, m.nome_completo
		 FROM parceiro p JOIN membro_familia m ON m.id = p.membro_id
		 WHERE p.token = $1`,
		token,
	).Scan(&p.ID, &p.MemberID, &p.Token, &p.CreatedAt, &p.MemberName)
	if err != nil {
		return nil, fmt.Errorf("GetPartnerByToken: %w", err)
	}
	return p, nil
}

func CreatePartner(ctx context.Context, db database.Querier, p *model.Partner) error {
	err := db.QueryRow(ctx,
		`INSERT INTO parceiro (membro_id, token) VALUES ($1, $2) RETURNING id, criado_em`,
		p.MemberID, p.Token,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("CreatePartner: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"encoding/hex"
	"errors"

	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	getMember          = store.GetMember
	getPartnerByMember = store.GetPartnerByMember
	getPartnerByToken  = store.GetPartnerByToken
	createPartner      = store.CreatePartner
)

// PromotePartner turns a member into a partner. Promoting the same member
// again returns the partner created the first time.
func PromotePartner(ctx context.Context, db database.Querier, memberID int) (*model.Partner, error) {
	m, err := getMember(ctx, db, memberID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("membro %d não encontrado", memberID)
	}
	if err != nil {
		return nil, err
	}

	p, err := getPartnerByMember(ctx, db, memberID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	b := make([]byte, 32)
	if _, err := randRead(b); err != nil {
		return nil, err
	}
	p = &model.Partner{MemberID: m.ID, Token: hex.EncodeToString(b), MemberName: m.FullName}
	if err := createPartner(ctx, db, p); err != nil {
		if database.IsUniqueViolation(err) {
			return getPartnerByMember(ctx, db, memberID)
		}
		return nil, err
	}
	return p, nil
}

func PartnerByToken(ctx context.Context, db database.Querier, token string) (*model.Partner, error) {
	p, err := getPartnerByToken(ctx, db, token)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("parceiro não encontrado")
	}
	return p, err
}

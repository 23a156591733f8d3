package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/textnorm"
)

// FamilyFilter holds the listing criteria. Empty fields do not filter.
// CreatedTo is exclusive.
type FamilyFilter struct {
	CityID         *int
	Region         string
	Neighborhood   string
	Responsible    string
	VoteLikelihood model.VoteLikelihood
	Street         string
	Number         string
	CEP            string
	Term           string
	CreatedFrom    *time.Time
	CreatedTo      *time.Time

	Page int
	Size int
}

// FamilyStats are computed over every family matching the filter, not only the page.
type FamilyStats struct {
	Total              int64
	TotalMembers       int64
	ActiveResponsibles int64
	NewFamilies        int64
	NewMembers         int64
}

const familyFrom = `FROM familias f
	JOIN enderecos e ON e.id = f.endereco_id
	JOIN cidades c ON c.id = e.cidade_id
	LEFT JOIN bairros b ON b.id = e.bairro_id
	LEFT JOIN regioes r ON r.id = b.regiao_id`

// likePattern escapes LIKE wildcards and wraps s for a substring match.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}

func buildFamilyWhere(f FamilyFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.CityID != nil {
		conds = append(conds, "e.cidade_id = "+arg(*f.CityID))
	}
	if strings.TrimSpace(f.Region) != "" {
		conds = append(conds, "r.nome_normalizado = "+arg(textnorm.Normalize(f.Region)))
	}
	if strings.TrimSpace(f.Neighborhood) != "" {
		conds = append(conds, "f.bairro ILIKE "+arg(likePattern(f.Neighborhood)))
	}
	if strings.TrimSpace(f.Responsible) != "" {
		conds = append(conds, `EXISTS (SELECT 1 FROM membro_familia m
			WHERE m.familia_id = f.id AND m.responsavel_principal AND m.nome_completo ILIKE `+arg(likePattern(f.Responsible))+`)`)
	}
	if f.VoteLikelihood != "" {
		conds = append(conds, `EXISTS (SELECT 1 FROM membro_familia m
			WHERE m.familia_id = f.id AND m.probabilidade_voto = `+arg(string(f.VoteLikelihood))+`)`)
	}
	if strings.TrimSpace(f.Street) != "" {
		conds = append(conds, "e.rua ILIKE "+arg(likePattern(f.Street)))
	}
	if strings.TrimSpace(f.Number) != "" {
		conds = append(conds, "e.numero ILIKE "+arg(likePattern(f.Number)))
	}
	if cep := textnorm.Digits(f.CEP); cep != "" {
		conds = append(conds, "e.cep LIKE "+arg("%"+cep+"%"))
	}
	if strings.TrimSpace(f.Term) != "" {
		p := arg(likePattern(f.Term))
		conds = append(conds, `(f.endereco ILIKE `+p+` OR f.bairro ILIKE `+p+` OR c.nome ILIKE `+p+`
			OR EXISTS (SELECT 1 FROM membro_familia m WHERE m.familia_id = f.id AND m.nome_completo ILIKE `+p+`))`)
	}
	if f.CreatedFrom != nil {
		conds = append(conds, "f.criado_em >= "+arg(*f.CreatedFrom))
	}
	if f.CreatedTo != nil {
		conds = append(conds, "f.criado_em < "+arg(*f.CreatedTo))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListFamilyIDs returns the ids of one page, newest first.
func ListFamilyIDs(ctx context.Context, db database.Querier, f FamilyFilter) ([]int, error) {
	where, args := buildFamilyWhere(f)
	args = append(args, f.Size, f.Page*f.Size)
	sql := fmt.Sprintf(`SELECT f.id %s%s ORDER BY f.criado_em DESC, f.id DESC LIMIT $%d OFFSET $%d`,
		familyFrom, where, len(args)-1, len(args))

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListFamilyIDs: %w", err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ListFamilyIDs: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFamilyIDs: %w", err)
	}
	return ids, nil
}

// GetFamilyStats aggregates over the whole filtered set. since marks the
// start of the "new this week" window.
func GetFamilyStats(ctx context.Context, db database.Querier, f FamilyFilter, since time.Time) (*FamilyStats, error) {
	where, args := buildFamilyWhere(f)
	args = append(args, since)
	p := fmt.Sprintf("$%d", len(args))
	sql := `WITH filtradas AS (SELECT f.id, f.criado_em ` + familyFrom + where + `)
		SELECT
		  (SELECT count(*) FROM filtradas),
		  (SELECT count(*) FROM membro_familia m JOIN filtradas x ON x.id = m.familia_id),
		  (SELECT count(DISTINCT m.familia_id) FROM membro_familia m JOIN filtradas x ON x.id = m.familia_id
		    WHERE m.responsavel_principal),
		  (SELECT count(*) FROM filtradas WHERE criado_em > ` + p + `),
		  (SELECT count(*) FROM membro_familia m JOIN filtradas x ON x.id = m.familia_id
		    WHERE m.criado_em > ` + p + `)`

	s := &FamilyStats{}
	if err := db.QueryRow(ctx, sql, args...).Scan(
		&s.Total, &s.TotalMembers, &s.ActiveResponsibles, &s.NewFamilies, &s.NewMembers,
	); err != nil {
		return nil, fmt.Errorf("GetFamilyStats: %w", err)
	}
	return s, nil
}

package store

import (
	"context"
	"fmt"

	"gestor-politico/internal/database"
	"gestor-politico/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateFamily(ctx context.Context, db database.Querier, f *model.Family) error {
	err := db.QueryRow(ctx,
		`INSERT INTO familias (endereco, bairro, telefone, endereco_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, criado_em`,
		f.AddressSummary, f.NeighborhoodName, f.Phone, f.AddressID,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("CreateFamily: %w", err)
	}
	return nil
}

func UpdateFamily(ctx context.Context, db database.Querier, f *model.Family) error {
	_, err := db.Exec(ctx,
		`UPDATE familias SET endereco = $1, bairro = $2, telefone = $3 WHERE id = $4`,
		f.AddressSummary, f.NeighborhoodName, f.Phone, f.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateFamily: %w", err)
	}
	return nil
}

const familySelect = `SELECT f.id, f.endereco, f.bairro, f.telefone, f.endereco_id, f.criado_em,
	       e.rua, e.numero, e.cep, e.bairro_id, e.latitude, e.longitude,
	       c.id, c.nome, c.uf,
	       b.nome, r.id, r.nome
	FROM familias f
	JOIN enderecos e ON e.id = f.endereco_id
	JOIN cidades c ON c.id = e.cidade_id
	LEFT JOIN bairros b ON b.id = e.bairro_id
	LEFT JOIN regioes r ON r.id = b.regiao_id`

func scanFamily(row interface{ Scan(...any) error }) (*model.Family, error) {
	f := &model.Family{}
	var (
		nbName     *string
		regionID   *int
		regionName *string
	)
	if err := row.Scan(
		&f.ID, &f.AddressSummary, &f.NeighborhoodName, &f.Phone, &f.AddressID, &f.CreatedAt,
		&f.Address.Street, &f.Address.Number, &f.Address.CEP, &f.Address.NeighborhoodID,
		&f.Address.Latitude, &f.Address.Longitude,
		&f.City.ID, &f.City.Name, &f.City.State,
		&nbName, &regionID, &regionName,
	); err != nil {
		return nil, err
	}
	f.Address.ID = f.AddressID
	f.Address.CityID = f.City.ID
	if f.Address.NeighborhoodID != nil && nbName != nil {
		f.Neighborhood = &model.Neighborhood{
			ID:         *f.Address.NeighborhoodID,
			Name:       *nbName,
			CityID:     f.City.ID,
			RegionID:   regionID,
			RegionName: regionName,
		}
	}
	if regionID != nil && regionName != nil {
		f.Region = &model.Region{ID: *regionID, Name: *regionName, CityID: f.City.ID}
	}
	return f, nil
}

// GetFamily loads a family with its address, locality and members.
func GetFamily(ctx context.Context, db database.Querier, id int) (*model.Family, error) {
	f, err := scanFamily(db.QueryRow(ctx, familySelect+` WHERE f.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("GetFamily: %w", err)
	}
	members, err := ListMembers(ctx, db, []int{id})
	if err != nil {
		return nil, fmt.Errorf("GetFamily: %w", err)
	}
	f.Members = members[id]
	return f, nil
}

// GetFamilies loads the given families, preserving the order of ids.
func GetFamilies(ctx context.Context, db database.Querier, ids []int) ([]model.Family, error) {
	if len(ids) == 0 {
		return []model.Family{}, nil
	}
	rows, err := db.Query(ctx, familySelect+` WHERE f.id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("GetFamilies: %w", err)
	}
	byID := make(map[int]*model.Family, len(ids))
	for rows.Next() {
		f, err := scanFamily(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("GetFamilies: %w", err)
		}
		byID[f.ID] = f
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetFamilies: %w", err)
	}

	members, err := ListMembers(ctx, db, ids)
	if err != nil {
		return nil, fmt.Errorf("GetFamilies: %w", err)
	}
	list := make([]model.Family, 0, len(ids))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			f.Members = members[id]
			list = append(list, *f)
		}
	}
	return list, nil
}

/* ---------- membros ---------- */

const memberColumns = `m.id, m.familia_id, m.nome_completo, m.data_nascimento, m.profissao, m.parentesco,
	m.responsavel_principal, m.probabilidade_voto, m.telefone, m.criado_em, p.token`

func scanMember(row interface{ Scan(...any) error }) (*model.Member, error) {
	m := &model.Member{}
	var kinship, vote string
	if err := row.Scan(
		&m.ID, &m.FamilyID, &m.FullName, &m.BirthDate, &m.Profession, &kinship,
		&m.Primary, &vote, &m.Phone, &m.CreatedAt, &m.PartnerToken,
	); err != nil {
		return nil, err
	}
	m.Kinship = model.Kinship(kinship)
	m.VoteLikelihood = model.VoteLikelihood(vote)
	return m, nil
}

// ListMembers groups the members of the given families by family id, primary first.
func ListMembers(ctx context.Context, db database.Querier, familyIDs []int) (map[int][]model.Member, error) {
	rows, err := db.Query(ctx,
		`SELECT `+memberColumns+`
		 FROM membro_familia m
		 LEFT JOIN parceiro p ON p.membro_id = m.id
		 WHERE m.familia_id = ANY($1)
		 ORDER BY m.familia_id, m.responsavel_principal DESC, m.id`,
		familyIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("ListMembers: %w", err)
	}
	defer rows.Close()

	out := make(map[int][]model.Member)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("ListMembers: %w", err)
		}
		out[m.FamilyID] = append(out[m.FamilyID], *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListMembers: %w", err)
	}
	return out, nil
}

func GetMember(ctx context.Context, db database.Querier, id int) (*model.Member, error) {
	m, err := scanMember(db.QueryRow(ctx,
		`SELECT `+memberColumns+`
		 FROM membro_familia m
		 LEFT JOIN parceiro p ON p.membro_id = m.id
		 WHERE m.id = $1`,
		id,
	))
	if err != nil {
		return nil, fmt.Errorf("GetMember: %w", err)
	}
	return m, nil
}

func CreateMember(ctx context.Context, db database.Querier, m *model.Member) error {
	err := db.QueryRow(ctx,
		`INSERT INTO membro_familia
		   (familia_id, nome_completo, data_nascimento, profissao, parentesco,
		    responsavel_principal, probabilidade_voto, telefone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, criado_em`,
		m.FamilyID, m.FullName, m.BirthDate, m.Profession, string(m.Kinship),
		m.Primary, string(m.VoteLikelihood), m.Phone,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("CreateMember: %w", err)
	}
	return nil
}

func UpdateMember(ctx context.Context, db database.Querier, m *model.Member) error {
	tag, err := db.Exec(ctx,
		`UPDATE membro_familia
		 SET nome_completo = $1, data_nascimento = $2, profissao = $3, parentesco = $4,
		     responsavel_principal = $5, probabilidade_voto = $6, telefone = $7
		 WHERE id = $8 AND familia_id = $9`,
		m.FullName, m.BirthDate, m.Profession, string(m.Kinship),
		m.Primary, string(m.VoteLikelihood), m.Phone, m.ID, m.FamilyID,
	)
	if err != nil {
		return fmt.Errorf("UpdateMember: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateMember: %w", pgx.ErrNoRows)
	}
	return nil
}

// ClearPrimaryFlags unsets responsavel_principal for the whole family so the
// new primary can be written without tripping idx_membro_familia_principal.
func ClearPrimaryFlags(ctx context.Context, db database.Querier, familyID int) error {
	_, err := db.Exec(ctx,
		`UPDATE membro_familia SET responsavel_principal = FALSE
		 WHERE familia_id = $1 AND responsavel_principal`,
		familyID,
	)
	if err != nil {
		return fmt.Errorf("ClearPrimaryFlags: %w", err)
	}
	return nil
}

// DeleteMembersExcept removes every member of the family not listed in keep.
func DeleteMembersExcept(ctx context.Context, db database.Querier, familyID int, keep []int) (int64, error) {
	if keep == nil {
		keep = []int{}
	}
	tag, err := db.Exec(ctx,
		`DELETE FROM membro_familia WHERE familia_id = $1 AND NOT (id = ANY($2))`,
		familyID, keep,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteMembersExcept: %w", err)
	}
	return tag.RowsAffected(), nil
}

func FamilyExists(ctx context.Context, db database.Querier, id int) (bool, error) {
	var ok bool
	if err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM familias WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("FamilyExists: %w", err)
	}
	return ok, nil
}

package store

import (
	"context"
	"fmt"

	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/textnorm"
)

/* ---------- cidades ---------- */

func ListCities(ctx context.Context, db database.Querier) ([]model.City, error) {
	rows, err := db.Query(ctx, `SELECT id, nome, uf FROM cidades ORDER BY nome, uf`)
	if err != nil {
		return nil, fmt.Errorf("ListCities: %w", err)
	}
	defer rows.Close()

	var list []model.City
	for rows.Next() {
		var c model.City
		if err := rows.Scan(&c.ID, &c.Name, &c.State); err != nil {
			return nil, fmt.Errorf("ListCities: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCities: %w", err)
	}
	return list, nil
}

func GetCityByID(ctx context.Context, db database.Querier, id int) (*model.City, error) {
	c := &model.City{}
	err := db.QueryRow(ctx, `SELECT id, nome, uf FROM cidades WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.State)
	if err != nil {
		return nil, fmt.Errorf("GetCityByID: %w", err)
	}
	return c, nil
}

// FindCity matches by normalized name and state.
func FindCity(ctx context.Context, db database.Querier, name, state string) (*model.City, error) {
	c := &model.City{}
	err := db.QueryRow(ctx,
		`SELECT id, nome, uf FROM cidades WHERE nome_normalizado = $1 AND uf = $2`,
		textnorm.Normalize(name), state,
	).Scan(&c.ID, &c.Name, &c.State)
	if err != nil {
		return nil, fmt.Errorf("FindCity: %w", err)
	}
	return c, nil
}

func CreateCity(ctx context.Context, db database.Querier, c *model.City) error {
	err := db.QueryRow(ctx,
		`INSERT INTO cidades (nome, nome_normalizado, uf) VALUES ($1, $2, $3) RETURNING id`,
		c.Name, textnorm.Normalize(c.Name), c.State,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("CreateCity: %w", err)
	}
	return nil
}

func CountCities(ctx context.Context, db database.Querier) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM cidades`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountCities: %w", err)
	}
	return n, nil
}

/* ---------- regiões ---------- */

// ListRegions returns the regions of a city with how many neighborhoods each one groups.
func ListRegions(ctx context.Context, db database.Querier, cityID int) ([]model.Region, error) {
	rows, err := db.Query(ctx,
		`SELECT r.id, r.nome, r.cidade_id, count(b.id)
		 FROM regioes r
		 LEFT JOIN bairros b ON b.regiao_id = r.id
		 WHERE r.cidade_id = $1
		 GROUP BY r.id, r.nome, r.cidade_id
		 ORDER BY r.nome`,
		cityID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRegions: %w", err)
	}
	defer rows.Close()

	var list []model.Region
	for rows.Next() {
		var r model.Region
		if err := rows.Scan(&r.ID, &r.Name, &r.CityID, &r.NeighborhoodCount); err != nil {
			return nil, fmt.Errorf("ListRegions: %w", err)
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRegions: %w", err)
	}
	return list, nil
}

func GetRegionByID(ctx context.Context, db database.Querier, id int) (*model.Region, error) {
	r := &model.Region{}
	err := db.QueryRow(ctx, `SELECT id, nome, cidade_id FROM regioes WHERE id = $1`, id).
		Scan(&r.ID, &r.Name, &r.CityID)
	if err != nil {
		return nil, fmt.Errorf("GetRegionByID: %w", err)
	}
	return r, nil
}

func FindRegion(ctx context.Context, db database.Querier, cityID int, name string) (*model.Region, error) {
	r := &model.Region{}
	err := db.QueryRow(ctx,
		`SELECT id, nome, cidade_id FROM regioes WHERE cidade_id = $1 AND nome_normalizado = $2`,
		cityID, textnorm.Normalize(name),
	).Scan(&r.ID, &r.Name, &r.CityID)
	if err != nil {
		return nil, fmt.Errorf("FindRegion: %w", err)
	}
	return r, nil
}

func CreateRegion(ctx context.Context, db database.Querier, r *model.Region) error {
	err := db.QueryRow(ctx,
		`INSERT INTO regioes (nome, nome_normalizado, cidade_id) VALUES ($1, $2, $3) RETURNING id`,
		r.Name, textnorm.Normalize(r.Name), r.CityID,
	).Scan(&r.ID)
	if err != nil {
		return fmt.Errorf("CreateRegion: %w", err)
	}
	return nil
}

/* ---------- bairros ---------- */

const neighborhoodSelect = `SELECT b.id, b.nome, b.cidade_id, b.regiao_id, r.nome
	FROM bairros b
	LEFT JOIN regioes r ON r.id = b.regiao_id`

func scanNeighborhoods(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]model.Neighborhood, error) {
	var list []model.Neighborhood
	for rows.Next() {
		var n model.Neighborhood
		if err := rows.Scan(&n.ID, &n.Name, &n.CityID, &n.RegionID, &n.RegionName); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// NeighborhoodFilter narrows ListNeighborhoods to one region, by id or by name.
type NeighborhoodFilter struct {
	RegionID   *int
	RegionName string
}

func ListNeighborhoods(ctx context.Context, db database.Querier, cityID int, f NeighborhoodFilter) ([]model.Neighborhood, error) {
	sql := neighborhoodSelect + ` WHERE b.cidade_id = $1`
	args := []any{cityID}
	if f.RegionID != nil {
		args = append(args, *f.RegionID)
		sql += fmt.Sprintf(` AND b.regiao_id = $%d`, len(args))
	} else if f.RegionName != "" {
		args = append(args, textnorm.Normalize(f.RegionName))
		sql += fmt.Sprintf(` AND r.nome_normalizado = $%d`, len(args))
	}
	sql += ` ORDER BY b.nome`

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListNeighborhoods: %w", err)
	}
	defer rows.Close()

	list, err := scanNeighborhoods(rows)
	if err != nil {
		return nil, fmt.Errorf("ListNeighborhoods: %w", err)
	}
	return list, nil
}

func GetNeighborhoodByID(ctx context.Context, db database.Querier, id int) (*model.Neighborhood, error) {
	n := &model.Neighborhood{}
	err := db.QueryRow(ctx, neighborhoodSelect+` WHERE b.id = $1`, id).
		Scan(&n.ID, &n.Name, &n.CityID, &n.RegionID, &n.RegionName)
	if err != nil {
		return nil, fmt.Errorf("GetNeighborhoodByID: %w", err)
	}
	return n, nil
}

func GetNeighborhoodsByIDs(ctx context.Context, db database.Querier, ids []int) ([]model.Neighborhood, error) {
	rows, err := db.Query(ctx, neighborhoodSelect+` WHERE b.id = ANY($1) ORDER BY b.id`, ids)
	if err != nil {
		return nil, fmt.Errorf("GetNeighborhoodsByIDs: %w", err)
	}
	defer rows.Close()

	list, err := scanNeighborhoods(rows)
	if err != nil {
		return nil, fmt.Errorf("GetNeighborhoodsByIDs: %w", err)
	}
	return list, nil
}

func FindNeighborhood(ctx context.Context, db database.Querier, cityID int, name string) (*model.Neighborhood, error) {
	n := &model.Neighborhood{}
	err := db.QueryRow(ctx,
		neighborhoodSelect+` WHERE b.cidade_id = $1 AND b.nome_normalizado = $2`,
		cityID, textnorm.Normalize(name),
	).Scan(&n.ID, &n.Name, &n.CityID, &n.RegionID, &n.RegionName)
	if err != nil {
		return nil, fmt.Errorf("FindNeighborhood: %w", err)
	}
	return n, nil
}

func CreateNeighborhood(ctx context.Context, db database.Querier, n *model.Neighborhood) error {
	err := db.QueryRow(ctx,
		`INSERT INTO bairros (nome, nome_normalizado, cidade_id, regiao_id)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		n.Name, textnorm.Normalize(n.Name), n.CityID, n.RegionID,
	).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("CreateNeighborhood: %w", err)
	}
	return nil
}

// SetNeighborhoodsRegion points every id at regionID; nil clears the region.
func SetNeighborhoodsRegion(ctx context.Context, db database.Querier, ids []int, regionID *int) (int64, error) {
	tag, err := db.Exec(ctx,
		`UPDATE bairros SET regiao_id = $1 WHERE id = ANY($2)`,
		regionID, ids,
	)
	if err != nil {
		return 0, fmt.Errorf("SetNeighborhoodsRegion: %w", err)
	}
	return tag.RowsAffected(), nil
}

// MoveAddresses re-points the addresses of the given neighborhoods to target.
func MoveAddresses(ctx context.Context, db database.Querier, fromIDs []int, target int) (int64, error) {
	tag, err := db.Exec(ctx,
		`UPDATE enderecos SET bairro_id = $1 WHERE bairro_id = ANY($2)`,
		target, fromIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("MoveAddresses: %w", err)
	}
	return tag.RowsAffected(), nil
}

// RenameFamilyNeighborhood rewrites the denormalized bairro name of every
// family whose address sits in neighborhoodID.
func RenameFamilyNeighborhood(ctx context.Context, db database.Querier, neighborhoodID int, name string) error {
	_, err := db.Exec(ctx,
		`UPDATE familias f SET bairro = $1
		 FROM enderecos e
		 WHERE e.id = f.endereco_id AND e.bairro_id = $2`,
		name, neighborhoodID,
	)
	if err != nil {
		return fmt.Errorf("RenameFamilyNeighborhood: %w", err)
	}
	return nil
}

func DeleteNeighborhoods(ctx context.Context, db database.Querier, ids []int) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM bairros WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("DeleteNeighborhoods: %w", err)
	}
	return tag.RowsAffected(), nil
}

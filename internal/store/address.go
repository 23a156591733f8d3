package store

import (
	"context"
	"fmt"

	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
)

func CreateAddress(ctx context.Context, db database.Querier, a *model.Address) error {
	err := db.QueryRow(ctx,
		`INSERT INTO enderecos (rua, numero, cep, bairro_id, cidade_id, latitude, longitude)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		a.Street, a.Number, a.CEP, a.NeighborhoodID, a.CityID, a.Latitude, a.Longitude,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("CreateAddress: %w", err)
	}
	return nil
}

func UpdateAddress(ctx context.Context, db database.Querier, a *model.Address) error {
	_, err := db.Exec(ctx,
		`UPDATE enderecos
		 SET rua = $1, numero = $2, cep = $3, bairro_id = $4, cidade_id = $5,
		     latitude = $6, longitude = $7
		 WHERE id = $8`,
		a.Street, a.Number, a.CEP, a.NeighborhoodID, a.CityID, a.Latitude, a.Longitude, a.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateAddress: %w", err)
	}
	return nil
}

func SetAddressCoordinates(ctx context.Context, db database.Querier, id int, lat, lon float64) error {
	_, err := db.Exec(ctx,
		`UPDATE enderecos SET latitude = $1, longitude = $2 WHERE id = $3`,
		lat, lon, id,
	)
	if err != nil {
		return fmt.Errorf("SetAddressCoordinates: %w", err)
	}
	return nil
}

const geoAddressSelect = `SELECT e.id, e.rua, e.numero, coalesce(e.cep, ''), coalesce(b.nome, ''), c.nome, c.uf
	FROM enderecos e
	JOIN cidades c ON c.id = e.cidade_id
	LEFT JOIN bairros b ON b.id = e.bairro_id`

func scanGeoAddress(row interface{ Scan(...any) error }) (*model.GeoAddress, error) {
	g := &model.GeoAddress{}
	if err := row.Scan(&g.AddressID, &g.Street, &g.Number, &g.CEP, &g.Neighborhood, &g.City, &g.State); err != nil {
		return nil, err
	}
	return g, nil
}

// GetGeoAddress loads the names a geocoder needs for one address.
func GetGeoAddress(ctx context.Context, db database.Querier, id int) (*model.GeoAddress, error) {
	g, err := scanGeoAddress(db.QueryRow(ctx, geoAddressSelect+` WHERE e.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("GetGeoAddress: %w", err)
	}
	return g, nil
}

// ListAddressesWithoutCoordinates returns up to limit address ids still missing lat/long.
func ListAddressesWithoutCoordinates(ctx context.Context, db database.Querier, limit int) ([]int, error) {
	rows, err := db.Query(ctx,
		`SELECT id FROM enderecos WHERE latitude IS NULL OR longitude IS NULL ORDER BY id LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAddressesWithoutCoordinates: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ListAddressesWithoutCoordinates: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAddressesWithoutCoordinates: %w", err)
	}
	return ids, nil
}

package service

import (
	"context"
	"log/slog"

	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/store"
)

const (
	DefaultAdminUsername = "admin@plataforma.gov"
	DefaultAdminPassword = "123456"
)

var (
	countUsers  = store.CountUsers
	createUser  = store.CreateUser
	countCities = store.CountCities
)

// default locality tree created on an empty database
var seedRegions = []struct {
	name          string
	neighborhoods []string
}{
	{"Zona Norte", []string{"Santana", "Casa Verde"}},
	{"Zona Sul", []string{"Moema", "Vila Mariana"}},
}

// Seed creates the default administrator when there is no user and a
// default city when there is no city. Both steps run in one transaction.
func Seed(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	users, err := countUsers(ctx, tx)
	if err != nil {
		return err
	}
	if users == 0 {
		hash, err := HashPassword(DefaultAdminPassword)
		if err != nil {
			return err
		}
		if _, err := createUser(ctx, tx, &model.User{
			Username:     DefaultAdminUsername,
			PasswordHash: hash,
			Name:         "Administrador",
			Role:         model.RoleAdmin,
		}); err != nil {
			return err
		}
		slog.Warn("default administrator created, change its password", "usuario", DefaultAdminUsername)
	}

	cities, err := countCities(ctx, tx)
	if err != nil {
		return err
	}
	if cities == 0 {
		city := &model.City{Name: "São Paulo", State: "SP"}
		if err := createCity(ctx, tx, city); err != nil {
			return err
		}
		for _, sr := range seedRegions {
			r := &model.Region{Name: sr.name, CityID: city.ID}
			if err := createRegion(ctx, tx, r); err != nil {
				return err
			}
			for _, name := range sr.neighborhoods {
				if err := createNeighborhood(ctx, tx, &model.Neighborhood{Name: name, CityID: city.ID, RegionID: &r.ID}); err != nil {
					return err
				}
			}
		}
		slog.Info("default city created", "city", city.Name)
	}

	return tx.Commit(ctx)
}

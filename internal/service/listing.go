package service

import (
	"context"
	"math"
	"strings"
	"time"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/store"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
	// keeps pagina*tamanho inside a postgres OFFSET
	MaxPage = math.MaxInt32 / MaxPageSize

	newWindow = 7 * 24 * time.Hour
)

var (
	listFamilyIDs  = store.ListFamilyIDs
	getFamilies    = store.GetFamilies
	getFamilyStats = store.GetFamilyStats
)

type FamilyPage struct {
	Families []model.Family
	Stats    store.FamilyStats
	Page     int
	Size     int
}

// ParseFamilyFilter converts the query string into store criteria. Dates are
// interpreted in the server time zone and the end date is inclusive.
func ParseFamilyFilter(q api.FamilyListQuery) (store.FamilyFilter, error) {
	f := store.FamilyFilter{
		Region:       q.Region,
		Neighborhood: q.Neighborhood,
		Responsible:  q.Responsible,
		Street:       q.Street,
		Number:       q.Number,
		CEP:          q.CEP,
		Term:         q.Term,
		Page:         max(q.Page, 0),
		Size:         q.Size,
	}
	if q.CityID > 0 {
		id := q.CityID
		f.CityID = &id
	}
	if f.Page > MaxPage {
		return f, apperr.Validation("pagina: deve ser no máximo %d", MaxPage)
	}
	switch {
	case f.Size <= 0:
		f.Size = DefaultPageSize
	case f.Size > MaxPageSize:
		f.Size = MaxPageSize
	}
	if v := strings.TrimSpace(q.VoteLikelihood); v != "" {
		vote, err := model.ParseVoteLikelihood(v)
		if err != nil {
			return f, apperr.Validation("probabilidadeVoto: %v", err)
		}
		f.VoteLikelihood = vote
	}
	if v := strings.TrimSpace(q.From); v != "" {
		from, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			return f, apperr.Validation("dataInicio: data inválida, use AAAA-MM-DD")
		}
		f.CreatedFrom = &from
	}
	if v := strings.TrimSpace(q.To); v != "" {
		to, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			return f, apperr.Validation("dataFim: data inválida, use AAAA-MM-DD")
		}
		to = to.AddDate(0, 0, 1)
		f.CreatedTo = &to
	}
	if f.CreatedFrom != nil && f.CreatedTo != nil && !f.CreatedFrom.Before(*f.CreatedTo) {
		return f, apperr.Validation("dataInicio: deve ser anterior ou igual a dataFim")
	}
	return f, nil
}

// ListFamilies returns one page of families, newest first, with the
// aggregates of the whole filtered set.
func ListFamilies(ctx context.Context, db database.Querier, q api.FamilyListQuery) (*FamilyPage, error) {
	f, err := ParseFamilyFilter(q)
	if err != nil {
		return nil, err
	}

	ids, err := listFamilyIDs(ctx, db, f)
	if err != nil {
		return nil, err
	}
	families, err := getFamilies(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	stats, err := getFamilyStats(ctx, db, f, timeNow().Add(-newWindow))
	if err != nil {
		return nil, err
	}
	return &FamilyPage{Families: families, Stats: *stats, Page: f.Page, Size: f.Size}, nil
}

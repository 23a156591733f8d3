package families

import (
	"context"
	"strconv"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/model"
	"gestor-politico/internal/service"
)

// FamilyService is implemented by *service.Families.
type FamilyService interface {
	Get(ctx context.Context, id int) (*model.Family, error)
	Create(ctx context.Context, sess service.Session, req api.FamilyRequest) (*model.Family, error)
	Update(ctx context.Context, sess service.Session, id int, req api.FamilyRequest) (*model.Family, error)
}

// Backfiller is implemented by *service.Geocoding.
type Backfiller interface {
	Backfill(ctx context.Context) (int, error)
}

var (
	listFamilies = service.ListFamilies
	openDemands  = service.OpenDemands
)

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("id de família inválido")
	}
	return id, nil
}

func toResponse(f model.Family) api.FamilyResponse {
	resp := api.FamilyResponse{
		ID:           f.ID,
		Address:      f.AddressSummary,
		Neighborhood: f.NeighborhoodName,
		Phone:        f.Phone,
		CreatedAt:    f.CreatedAt,
		Detail: api.AddressResponse{
			ID:             f.Address.ID,
			Street:         f.Address.Street,
			Number:         f.Address.Number,
			CEP:            f.Address.CEP,
			NeighborhoodID: f.Address.NeighborhoodID,
			CityID:         f.City.ID,
			City:           f.City.Name,
			State:          f.City.State,
			Latitude:       f.Address.Latitude,
			Longitude:      f.Address.Longitude,
		},
		Members: make([]api.MemberResponse, 0, len(f.Members)),
	}
	if f.Neighborhood != nil {
		resp.Detail.Neighborhood = &f.Neighborhood.Name
	}
	if f.Region != nil {
		resp.Detail.RegionID = &f.Region.ID
		resp.Detail.Region = &f.Region.Name
	}
	for _, m := range f.Members {
		resp.Members = append(resp.Members, api.MemberResponse{
			ID:             m.ID,
			FullName:       m.FullName,
			BirthDate:      m.BirthDate.Format("2006-01-02"),
			Profession:     m.Profession,
			Kinship:        string(m.Kinship),
			KinshipLabel:   m.Kinship.Label(),
			Primary:        m.Primary,
			VoteLikelihood: string(m.VoteLikelihood),
			Phone:          m.Phone,
			CreatedAt:      m.CreatedAt,
			PartnerToken:   m.PartnerToken,
		})
	}
	return resp
}

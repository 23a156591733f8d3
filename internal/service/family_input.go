package service

import (
	"fmt"
	"strings"
	"time"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/cep"
	"gestor-politico/internal/model"
	"gestor-politico/internal/textnorm"
)

const dateLayout = "2006-01-02"

type memberInput struct {
	ID *int
	model.Member
}

type familyInput struct {
	Street   string
	Number   string
	CEP      *string
	CityID   int
	Phone    *string
	Locality localityInput
	Members  []memberInput
}

// optional trims s and returns nil when nothing is left.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := textnorm.CollapseSpaces(*s)
	if v == "" {
		return nil
	}
	return &v
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// parseFamily applies the domain rules to a registration payload. Nothing is
// written when it fails.
func parseFamily(req api.FamilyRequest, now time.Time) (*familyInput, error) {
	in := &familyInput{
		Street: textnorm.CollapseSpaces(req.Street),
		Number: textnorm.CollapseSpaces(req.Number),
		CityID: req.CityID,
		Phone:  optional(req.Phone),
		Locality: localityInput{
			NeighborhoodID:  req.NeighborhoodID,
			NewNeighborhood: valueOf(optional(req.NewNeighborhood)),
			RegionID:        req.RegionID,
			NewRegion:       valueOf(optional(req.NewRegion)),
		},
	}
	if in.Street == "" {
		return nil, apperr.Validation("rua: informe a rua")
	}
	if in.Number == "" {
		return nil, apperr.Validation("numero: informe o número")
	}
	if c := optional(req.CEP); c != nil {
		digits, err := cep.Sanitize(*c)
		if err != nil {
			return nil, apperr.Validation("cep: %v", err)
		}
		in.CEP = &digits
	}
	if in.CityID <= 0 {
		return nil, apperr.Validation("cidadeId: informe a cidade")
	}
	if len(req.Members) == 0 {
		return nil, apperr.Validation("membros: informe ao menos um membro")
	}

	primaries := 0
	for _, m := range req.Members {
		if m.Primary {
			primaries++
		}
	}
	switch {
	case primaries == 0:
		return nil, apperr.Conflict("defina um responsável principal")
	case primaries > 1:
		return nil, apperr.Conflict("a família deve ter exatamente um responsável principal (%d marcados)", primaries)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	seen := map[int]bool{}
	for i, m := range req.Members {
		field := func(name string) string { return fmt.Sprintf("membros[%d].%s", i, name) }

		name := textnorm.CollapseSpaces(m.FullName)
		if name == "" {
			return nil, apperr.Validation("%s: informe o nome completo", field("nomeCompleto"))
		}
		birth, err := time.ParseInLocation(dateLayout, strings.TrimSpace(m.BirthDate), time.Local)
		if err != nil {
			return nil, apperr.Validation("%s: data inválida, use AAAA-MM-DD", field("dataNascimento"))
		}
		if birth.After(today) {
			return nil, apperr.Validation("%s: data no futuro", field("dataNascimento"))
		}
		vote, err := model.ParseVoteLikelihood(m.VoteLikelihood)
		if err != nil {
			return nil, apperr.Validation("%s: %v", field("probabilidadeVoto"), err)
		}

		var kinship model.Kinship
		switch k := optional(m.Kinship); {
		case k != nil:
			if kinship, err = model.ParseKinship(*k); err != nil {
				return nil, apperr.Validation("%s: %v", field("parentesco"), err)
			}
		case m.Primary:
			kinship = model.KinshipResponsible
		default:
			return nil, apperr.Validation("%s: informe o parentesco", field("parentesco"))
		}

		if m.ID != nil {
			if seen[*m.ID] {
				return nil, apperr.Validation("%s: membro %d repetido", field("id"), *m.ID)
			}
			seen[*m.ID] = true
		}

		in.Members = append(in.Members, memberInput{
			ID: m.ID,
			Member: model.Member{
				FullName:       name,
				BirthDate:      birth,
				Profession:     optional(m.Profession),
				Kinship:        kinship,
				Primary:        m.Primary,
				VoteLikelihood: vote,
				Phone:          optional(m.Phone),
			},
		})
	}
	return in, nil
}

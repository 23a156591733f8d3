package service

import (
	"context"
	"errors"
	"log/slog"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/cep"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	getCityByID         = store.GetCityByID
	getFamily           = store.GetFamily
	createAddress       = store.CreateAddress
	updateAddress       = store.UpdateAddress
	createFamily        = store.CreateFamily
	updateFamily        = store.UpdateFamily
	clearPrimaryFlags   = store.ClearPrimaryFlags
	deleteMembersExcept = store.DeleteMembersExcept
	createMember        = store.CreateMember
	updateMember        = store.UpdateMember
)

// CEPLookup resolves a postal code; *cep.Client implements it.
type CEPLookup interface {
	Lookup(ctx context.Context, code string) (*cep.Address, error)
}

// GeocodeQueue accepts addresses that still need coordinates.
type GeocodeQueue interface {
	Enqueue(addressID int) bool
}

// Families runs the family registration transaction.
type Families struct {
	DB       database.DB
	CEP      CEPLookup
	Geocoder GeocodeQueue
}

func NewFamilies(db database.DB, lookup CEPLookup, geocoder GeocodeQueue) *Families {
	return &Families{DB: db, CEP: lookup, Geocoder: geocoder}
}

func (s *Families) Get(ctx context.Context, id int) (*model.Family, error) {
	f, err := getFamily(ctx, s.DB, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("família %d não encontrada", id)
	}
	return f, err
}

func (s *Families) Create(ctx context.Context, sess Session, req api.FamilyRequest) (*model.Family, error) {
	return s.save(ctx, sess, 0, req)
}

func (s *Families) Update(ctx context.Context, sess Session, id int, req api.FamilyRequest) (*model.Family, error) {
	return s.save(ctx, sess, id, req)
}

func (s *Families) save(ctx context.Context, sess Session, id int, req api.FamilyRequest) (*model.Family, error) {
	in, err := parseFamily(req, timeNow())
	if err != nil {
		return nil, err
	}
	if id == 0 {
		for i, m := range in.Members {
			if m.ID != nil {
				return nil, apperr.Validation("membros[%d].id: não informe id ao cadastrar uma família", i)
			}
		}
	}

	lookup := s.lookupCEP(ctx, in.CEP)

	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	city, err := getCityByID(ctx, tx, in.CityID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("cidadeId: cidade %d não encontrada", in.CityID)
	}
	if err != nil {
		return nil, err
	}

	var current *model.Family
	if id != 0 {
		current, err = getFamily(ctx, tx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("família %d não encontrada", id)
		}
		if err != nil {
			return nil, err
		}
	}

	nb, err := resolveLocality(ctx, tx, sess, city, in.Locality, lookup)
	if err != nil {
		return nil, writeErr(err)
	}

	addr := model.Address{Street: in.Street, Number: in.Number, CEP: in.CEP, CityID: city.ID}
	if nb != nil {
		addr.NeighborhoodID = &nb.ID
	}
	if current == nil {
		err = createAddress(ctx, tx, &addr)
	} else {
		addr.ID = current.AddressID
		if sameAddress(current.Address, addr) {
			addr.Latitude, addr.Longitude = current.Address.Latitude, current.Address.Longitude
		}
		err = updateAddress(ctx, tx, &addr)
	}
	if err != nil {
		return nil, writeErr(err)
	}

	fam := &model.Family{ID: id, AddressSummary: addr.Summary(), Phone: in.Phone, AddressID: addr.ID}
	if nb != nil {
		fam.NeighborhoodName = nb.Name
	}
	if current == nil {
		err = createFamily(ctx, tx, fam)
	} else {
		err = updateFamily(ctx, tx, fam)
	}
	if err != nil {
		return nil, writeErr(err)
	}

	if err := saveMembers(ctx, tx, fam.ID, current, in.Members); err != nil {
		return nil, writeErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, writeErr(err)
	}

	if addr.Latitude == nil && s.Geocoder != nil && !s.Geocoder.Enqueue(addr.ID) {
		slog.Warn("geocoding queue full", "address_id", addr.ID)
	}

	return s.Get(ctx, fam.ID)
}

// saveMembers replaces the member set of a family. Members sent with an id
// are updated, the rest inserted, and members left out of an update deleted.
func saveMembers(ctx context.Context, q database.Querier, familyID int, current *model.Family, members []memberInput) error {
	existing := map[int]bool{}
	if current != nil {
		for _, m := range current.Members {
			existing[m.ID] = true
		}
	}
	keep := []int{}
	for i, m := range members {
		if m.ID == nil {
			continue
		}
		if !existing[*m.ID] {
			return apperr.Validation("membros[%d].id: membro %d não pertence à família", i, *m.ID)
		}
		keep = append(keep, *m.ID)
	}

	if current != nil {
		if err := clearPrimaryFlags(ctx, q, familyID); err != nil {
			return err
		}
		if _, err := deleteMembersExcept(ctx, q, familyID, keep); err != nil {
			return err
		}
	}

	for _, in := range members {
		m := in.Member
		m.FamilyID = familyID
		if in.ID != nil {
			m.ID = *in.ID
			if err := updateMember(ctx, q, &m); err != nil {
				return err
			}
			continue
		}
		if err := createMember(ctx, q, &m); err != nil {
			return err
		}
	}
	return nil
}

func (s *Families) lookupCEP(ctx context.Context, code *string) *cep.Address {
	if code == nil || s.CEP == nil {
		return nil
	}
	a, err := s.CEP.Lookup(ctx, *code)
	if err != nil {
		slog.Info("cep lookup failed, continuing without it", "cep", *code, "error", err)
		return nil
	}
	return a
}

// sameAddress reports whether the stored coordinates still describe next.
func sameAddress(prev, next model.Address) bool {
	return prev.Street == next.Street &&
		prev.Number == next.Number &&
		prev.CityID == next.CityID &&
		valueOf(prev.CEP) == valueOf(next.CEP) &&
		intValue(prev.NeighborhoodID) == intValue(next.NeighborhoodID)
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// writeErr turns unique violations into conflicts; anything else passes through.
func writeErr(err error) error {
	if database.IsUniqueViolation(err) {
		return apperr.Wrap(apperr.KindConflict, err, "registro duplicado")
	}
	return err
}

package service

import (
	"context"

	"gestor-politico/internal/database"
	"gestor-politico/internal/store"

	"github.com/google/uuid"
)

func restoreStore() {
	getCityByID = store.GetCityByID
	getFamily = store.GetFamily
	createAddress = store.CreateAddress
	updateAddress = store.UpdateAddress
	createFamily = store.CreateFamily
	updateFamily = store.UpdateFamily
	clearPrimaryFlags = store.ClearPrimaryFlags
	deleteMembersExcept = store.DeleteMembersExcept
	createMember = store.CreateMember
	updateMember = store.UpdateMember

	getNeighborhoodByID = store.GetNeighborhoodByID
	findNeighborhood = store.FindNeighborhood
	listNeighborhoods = store.ListNeighborhoods
	createNeighborhood = store.CreateNeighborhood
	setNeighborhoodsRegion = store.SetNeighborhoodsRegion
	getRegionByID = store.GetRegionByID
	findRegion = store.FindRegion
	createRegion = store.CreateRegion

	findCity = store.FindCity
	createCity = store.CreateCity
	getNeighborhoodsByIDs = store.GetNeighborhoodsByIDs

	moveAddresses = store.MoveAddresses
	renameFamilyNeighborhood = store.RenameFamilyNeighborhood
	deleteNeighborhoods = store.DeleteNeighborhoods

	listFamilyIDs = store.ListFamilyIDs
	getFamilies = store.GetFamilies
	getFamilyStats = store.GetFamilyStats

	getGeoAddress = store.GetGeoAddress
	setAddressCoordinates = store.SetAddressCoordinates
	listAddressesWithoutCoordinates = store.ListAddressesWithoutCoordinates

	getMember = store.GetMember
	getPartnerByMember = store.GetPartnerByMember
	getPartnerByToken = store.GetPartnerByToken
	createPartner = store.CreatePartner

	newUUID = uuid.NewString
	familyExists = store.FamilyExists
	listDemands = store.ListDemands
	getDemand = store.GetDemand
	createDemand = store.CreateDemand
	updateDemand = store.UpdateDemand
	deleteDemand = store.DeleteDemand
	countOpenDemands = store.CountOpenDemands

	countUsers = store.CountUsers
	createUser = store.CreateUser
	countCities = store.CountCities
}

// newTxDB returns a database whose Begin hands out tx.
func newTxDB() (*database.FakeDB, *database.FakeTx) {
	tx := &database.FakeTx{}
	db := &database.FakeDB{BeginFn: func(context.Context) (database.Tx, error) { return tx, nil }}
	return db, tx
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func sess(admin bool) Session {
	if admin {
		return Session{UserID: 1, Role: "ADMINISTRADOR"}
	}
	return Session{UserID: 2, Role: "USUARIO"}
}

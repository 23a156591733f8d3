package api

// swagger:model api.CityRequest
type CityRequest struct {
	Name  string `json:"nome" validate:"required,max=150" example:"São Paulo"`
	State string `json:"uf" validate:"required,uf" example:"SP"`
}

// swagger:model api.CityResponse
type CityResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"nome"`
	State string `json:"uf"`
}

// swagger:model api.RegionRequest
type RegionRequest struct {
	Name string `json:"nome" validate:"required,max=150" example:"Zona Norte"`
}

// swagger:model api.RegionResponse
type RegionResponse struct {
	ID                int    `json:"id"`
	Name              string `json:"nome"`
	NeighborhoodCount int    `json:"quantidadeBairros"`
}

// swagger:model api.NeighborhoodResponse
type NeighborhoodResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"nome"`
	RegionID *int    `json:"regiaoId"`
	Region   *string `json:"regiao"`
}

// swagger:model api.RegionNeighborhoodsRequest
type RegionNeighborhoodsRequest struct {
	NeighborhoodIDs []int `json:"bairrosIds" validate:"required,min=1,dive,gt=0"`
}

// Exactly one of RegionID / FreeRegionName assigns a region; neither clears it.
// swagger:model api.AssignRegionRequest
type AssignRegionRequest struct {
	NeighborhoodIDs []int   `json:"bairrosIds" validate:"required,min=1,dive,gt=0"`
	RegionID        *int    `json:"regiaoId" validate:"omitempty,gt=0"`
	FreeRegionName  *string `json:"nomeRegiaoLivre" validate:"omitempty,max=150"`
}

// swagger:model api.UnifyRequest
type UnifyRequest struct {
	PrimaryID    int   `json:"bairroPrincipalId" validate:"required,gt=0"`
	DuplicateIDs []int `json:"bairrosDuplicadosIds" validate:"required,min=1,dive,gt=0"`
}

// swagger:model api.UnifyResponse
type UnifyResponse struct {
	PrimaryID      int   `json:"bairroPrincipalId"`
	MovedAddresses int64 `json:"enderecosAtualizados"`
	Removed        int64 `json:"bairrosRemovidos"`
}

// swagger:model api.ImportResponse
type ImportResponse struct {
	CityID   int `json:"cidadeId"`
	Inserted int `json:"inseridos"`
	Skipped  int `json:"ignorados"`
}

// swagger:model api.CEPResponse
type CEPResponse struct {
	CEP            string  `json:"cep" example:"01310100"`
	Street         string  `json:"rua"`
	Neighborhood   string  `json:"bairro"`
	NeighborhoodID *int    `json:"bairroId"`
	RegionID       *int    `json:"regiaoId"`
	Region         *string `json:"regiao"`
	CityID         int     `json:"cidadeId"`
	City           string  `json:"cidade"`
	State          string  `json:"uf"`
}

// swagger:model api.UpdatedResponse
type UpdatedResponse struct {
	Updated int64 `json:"atualizados"`
}

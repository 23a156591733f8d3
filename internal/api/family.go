// File: internal/api/family.go
package api

import "time"

// swagger:model api.FamilyRequest
type FamilyRequest struct {
	CEP             *string         `json:"cep" validate:"omitempty,cep" example:"01310-100"`
	Street          string          `json:"rua" validate:"required,max=255" example:"Rua A"`
	Number          string          `json:"numero" validate:"required,max=20" example:"10"`
	CityID          int             `json:"cidadeId" validate:"required,gt=0" example:"1"`
	Phone           *string         `json:"telefone" validate:"omitempty,max=30"`
	// existing neighborhood; wins over NewNeighborhood
	NeighborhoodID  *int            `json:"bairroId" validate:"omitempty,gt=0"`
	// created in CityID when no match exists
	NewNeighborhood *string         `json:"novoBairro" validate:"omitempty,max=150"`
	RegionID        *int            `json:"regiaoId" validate:"omitempty,gt=0"`
	// admins only
	NewRegion       *string         `json:"novaRegiao" validate:"omitempty,max=150"`
	// exactly one must be Primary
	Members         []MemberRequest `json:"membros" validate:"required,min=1,dive"`
}

// swagger:model api.MemberRequest
type MemberRequest struct {
	ID             *int    `json:"id" validate:"omitempty,gt=0"` // set when updating an existing member
	FullName       string  `json:"nomeCompleto" validate:"required,max=255" example:"Maria Silva"`
	BirthDate      string  `json:"dataNascimento" validate:"required,datetime=2006-01-02" example:"1990-01-01"`
	Profession     *string `json:"profissao" validate:"omitempty,max=150"`
	Kinship        *string `json:"parentesco" validate:"omitempty,max=50" example:"CONJUGE"`
	Primary        bool    `json:"responsavelPrincipal" example:"true"`
	VoteLikelihood string  `json:"probabilidadeVoto" validate:"required" example:"Alta"`
	Phone          *string `json:"telefone" validate:"omitempty,max=30"`
}

// swagger:model api.FamilyResponse
type FamilyResponse struct {
	ID           int              `json:"id"`
	Address      string           `json:"endereco" example:"Rua A, 10"`
	Neighborhood string           `json:"bairro"`
	Phone        *string          `json:"telefone"`
	CreatedAt    time.Time        `json:"criadoEm"`
	Detail       AddressResponse  `json:"enderecoDetalhado"`
	Members      []MemberResponse `json:"membros"`
}

// swagger:model api.AddressResponse
type AddressResponse struct {
	ID             int      `json:"id"`
	Street         string   `json:"rua"`
	Number         string   `json:"numero"`
	CEP            *string  `json:"cep"`
	NeighborhoodID *int     `json:"bairroId"`
	Neighborhood   *string  `json:"bairro"`
	RegionID       *int     `json:"regiaoId"`
	Region         *string  `json:"regiao"`
	CityID         int      `json:"cidadeId"`
	City           string   `json:"cidade"`
	State          string   `json:"uf"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

// swagger:model api.MemberResponse
type MemberResponse struct {
	ID             int       `json:"id"`
	FullName       string    `json:"nomeCompleto"`
	BirthDate      string    `json:"dataNascimento" example:"1990-01-01"`
	Profession     *string   `json:"profissao"`
	Kinship        string    `json:"parentesco" example:"RESPONSAVEL"`
	KinshipLabel   string    `json:"parentescoDescricao" example:"Responsável pela família"`
	Primary        bool      `json:"responsavelPrincipal"`
	VoteLikelihood string    `json:"probabilidadeVoto"`
	Phone          *string   `json:"telefone"`
	CreatedAt      time.Time `json:"criadoEm"`
	PartnerToken   *string   `json:"parceiroToken,omitempty"`
}

// swagger:model api.FamilyListResponse
type FamilyListResponse struct {
	Families           []FamilyResponse `json:"familias"`
	Total              int64            `json:"total"`
	Page               int              `json:"pagina"`
	Size               int              `json:"tamanho"`
	// counters cover the whole filtered set, not only this page
	TotalMembers       int64            `json:"totalPessoas"`
	ActiveResponsibles int64            `json:"responsaveisAtivos"`
	NewFamilies        int64            `json:"novosCadastros"`     // last 7 days
	NewMembers         int64            `json:"novasPessoasSemana"` // last 7 days
}

// swagger:model api.OpenDemandsResponse
type OpenDemandsResponse struct {
	FamilyID int `json:"familiaId"`
	Open     int `json:"abertas"`
}

// swagger:model api.BackfillResponse
type BackfillResponse struct {
	Queued int `json:"enfileirados"`
}

// FamilyListQuery is bound from the query string of GET /familias.
// swagger:model api.FamilyListQuery
type FamilyListQuery struct {
	CityID         int    `query:"cidadeId" validate:"gte=0"`
	Region         string `query:"regiao"`
	Neighborhood   string `query:"bairro"`
	Responsible    string `query:"responsavel"`
	VoteLikelihood string `query:"probabilidadeVoto"`
	Street         string `query:"rua"`
	Number         string `query:"numero"`
	CEP            string `query:"cep"`
	Term           string `query:"termo"`
	From           string `query:"dataInicio" validate:"omitempty,datetime=2006-01-02"`
	To             string `query:"dataFim" validate:"omitempty,datetime=2006-01-02"`
	Page           int    `query:"pagina" validate:"gte=0"`
	Size           int    `query:"tamanho" validate:"gte=0"`
}

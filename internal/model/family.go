package model

import "time"

type Family struct {
	ID               int       `db:"id" json:"id"`
	AddressSummary   string    `db:"endereco" json:"endereco"`
	NeighborhoodName string    `db:"bairro" json:"bairro"`
	Phone            *string   `db:"telefone" json:"telefone"`
	AddressID        int       `db:"endereco_id" json:"endereco_id"`
	CreatedAt        time.Time `db:"criado_em" json:"criado_em"`

	// read model, joined by the family queries
	Address      Address       `db:"-" json:"-"`
	City         City          `db:"-" json:"-"`
	Neighborhood *Neighborhood `db:"-" json:"-"`
	Region       *Region       `db:"-" json:"-"`
	Members      []Member      `db:"-" json:"-"`
}

// Primary returns the member flagged as primary responsible, if any.
func (f *Family) Primary() *Member {
	for i := range f.Members {
		if f.Members[i].Primary {
			return &f.Members[i]
		}
	}
	return nil
}

type Member struct {
	ID             int            `db:"id" json:"id"`
	FamilyID       int            `db:"familia_id" json:"familia_id"`
	FullName       string         `db:"nome_completo" json:"nome_completo"`
	BirthDate      time.Time      `db:"data_nascimento" json:"data_nascimento"`
	Profession     *string        `db:"profissao" json:"profissao"`
	Kinship        Kinship        `db:"parentesco" json:"parentesco"`
	Primary        bool           `db:"responsavel_principal" json:"responsavel_principal"`
	VoteLikelihood VoteLikelihood `db:"probabilidade_voto" json:"probabilidade_voto"`
	Phone          *string        `db:"telefone" json:"telefone"`
	CreatedAt      time.Time      `db:"criado_em" json:"criado_em"`

	// set when the member was promoted to partner
	PartnerToken *string `db:"-" json:"-"`
}

type Partner struct {
	ID        int       `db:"id" json:"id"`
	MemberID  int       `db:"membro_id" json:"membro_id"`
	Token     string    `db:"token" json:"token"`
	CreatedAt time.Time `db:"criado_em" json:"criado_em"`

	MemberName string `db:"-" json:"-"`
}

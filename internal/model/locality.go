package model

type City struct {
	ID    int    `db:"id" json:"id"`
	Name  string `db:"nome" json:"nome"`
	State string `db:"uf" json:"uf"`
}

type Region struct {
	ID     int    `db:"id" json:"id"`
	Name   string `db:"nome" json:"nome"`
	CityID int    `db:"cidade_id" json:"cidade_id"`

	// only filled by region listings
	NeighborhoodCount int `db:"-" json:"quantidade_bairros"`
}

type Neighborhood struct {
	ID       int    `db:"id" json:"id"`
	Name     string `db:"nome" json:"nome"`
	CityID   int    `db:"cidade_id" json:"cidade_id"`
	RegionID *int   `db:"regiao_id" json:"regiao_id"`

	// joined from regioes when available
	RegionName *string `db:"-" json:"regiao"`
}

type Address struct {
	ID             int      `db:"id" json:"id"`
	Street         string   `db:"rua" json:"rua"`
	Number         string   `db:"numero" json:"numero"`
	CEP            *string  `db:"cep" json:"cep"`
	NeighborhoodID *int     `db:"bairro_id" json:"bairro_id"`
	CityID         int      `db:"cidade_id" json:"cidade_id"`
	Latitude       *float64 `db:"latitude" json:"latitude"`
	Longitude      *float64 `db:"longitude" json:"longitude"`
}

// Summary is the one line form stored on familias.endereco.
func (a Address) Summary() string {
	return a.Street + ", " + a.Number
}

// GeoAddress carries the names needed to build a geocoder query.
type GeoAddress struct {
	AddressID    int
	Street       string
	Number       string
	CEP          string
	Neighborhood string
	City         string
	State        string
}

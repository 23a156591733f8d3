package api

import "time"

// swagger:model api.DemandRequest
type DemandRequest struct {
	FamilyID    int     `json:"familiaId" validate:"required,gt=0"`
	Title       string  `json:"titulo" validate:"required,max=200"`
	Description string  `json:"descricao" validate:"max=4000"`
	Urgency     string  `json:"urgencia" validate:"required" example:"Média"`
	Status      string  `json:"status" example:"Pendente"`
	DueDate     *string `json:"dataLimite" validate:"omitempty,datetime=2006-01-02"`
	CompletedAt *string `json:"dataConclusao" validate:"omitempty,datetime=2006-01-02"`
}

// swagger:model api.DemandResponse
type DemandResponse struct {
	ID          string    `json:"id"`
	FamilyID    int       `json:"familiaId"`
	Family      string    `json:"familia"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	Urgency     string    `json:"urgencia"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"criadoEm"`
	DueDate     *string   `json:"dataLimite"`
	CompletedAt *string   `json:"dataConclusao"`
}

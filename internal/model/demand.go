package model

import (
	"fmt"
	"time"

	"gestor-politico/internal/textnorm"
)

type DemandUrgency string

const (
	UrgencyLow    DemandUrgency = "Baixa"
	UrgencyMedium DemandUrgency = "Média"
	UrgencyHigh   DemandUrgency = "Alta"
)

func ParseDemandUrgency(v string) (DemandUrgency, error) {
	switch textnorm.Normalize(v) {
	case "BAIXA":
		return UrgencyLow, nil
	case "MEDIA":
		return UrgencyMedium, nil
	case "ALTA":
		return UrgencyHigh, nil
	}
	return "", fmt.Errorf("urgência inválida: %q", v)
}

type DemandStatus string

const (
	StatusPending    DemandStatus = "Pendente"
	StatusInProgress DemandStatus = "Em andamento"
	StatusDone       DemandStatus = "Concluída"
)

func ParseDemandStatus(v string) (DemandStatus, error) {
	switch textnorm.Normalize(v) {
	case "PENDENTE":
		return StatusPending, nil
	case "EM ANDAMENTO":
		return StatusInProgress, nil
	case "CONCLUIDA":
		return StatusDone, nil
	}
	return "", fmt.Errorf("status inválido: %q", v)
}

// Demand is a request raised by a family and followed up by the office.
type Demand struct {
	ID          string        `db:"id" json:"id"`
	FamilyID    int           `db:"familia_id" json:"familia_id"`
	Title       string        `db:"titulo" json:"titulo"`
	Description string        `db:"descricao" json:"descricao"`
	Urgency     DemandUrgency `db:"urgencia" json:"urgencia"`
	Status      DemandStatus  `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"criado_em" json:"criado_em"`
	DueDate     *time.Time    `db:"data_limite" json:"data_limite"`
	CompletedAt *time.Time    `db:"data_conclusao" json:"data_conclusao"`

	FamilyLabel string `db:"-" json:"-"`
}

package model

import (
	"fmt"
	"strings"
	"unicode"

	"gestor-politico/internal/textnorm"
)

// Kinship is the degree of relationship of a member to the family head.
type Kinship string

const (
	KinshipFather      Kinship = "PAI"
	KinshipMother      Kinship = "MAE"
	KinshipChild       Kinship = "FILHO_A"
	KinshipDaughter    Kinship = "FILHA"
	KinshipSon         Kinship = "FILHO"
	KinshipSibling     Kinship = "IRMAO_A"
	KinshipCousin      Kinship = "PRIMO_A"
	KinshipUncle       Kinship = "TIO_A"
	KinshipNephew      Kinship = "SOBRINHO_A"
	KinshipSpouse      Kinship = "CONJUGE"
	KinshipGrandparent Kinship = "AVO_O"
	KinshipStepchild   Kinship = "ENTEADO_A"
	KinshipResponsible Kinship = "RESPONSAVEL"
	KinshipOther       Kinship = "OUTRO"
)

var kinshipLabels = []struct {
	code  Kinship
	label string
}{
	{KinshipFather, "Pai"},
	{KinshipMother, "Mãe"},
	{KinshipChild, "Filho(a)"},
	{KinshipDaughter, "Filha"},
	{KinshipSon, "Filho"},
	{KinshipSibling, "Irmão(ã)"},
	{KinshipCousin, "Primo(a)"},
	{KinshipUncle, "Tio(a)"},
	{KinshipNephew, "Sobrinho(a)"},
	{KinshipSpouse, "Cônjuge"},
	{KinshipGrandparent, "Avô(ó)"},
	{KinshipStepchild, "Enteado(a)"},
	{KinshipResponsible, "Responsável pela família"},
	{KinshipOther, "Outro"},
}

// Label returns the Portuguese description shown to operators.
func (k Kinship) Label() string {
	for _, kl := range kinshipLabels {
		if kl.code == k {
			return kl.label
		}
	}
	return string(k)
}

// ParseKinship accepts either the code ("IRMAO_A") or the label ("Irmão(ã)"),
// ignoring accents, case and anything that is not a letter.
func ParseKinship(v string) (Kinship, error) {
	key := lettersOnly(v)
	if key == "" {
		return "", fmt.Errorf("parentesco inválido: %q", v)
	}
	for _, kl := range kinshipLabels {
		if lettersOnly(string(kl.code)) == key || lettersOnly(kl.label) == key {
			return kl.code, nil
		}
	}
	return "", fmt.Errorf("parentesco inválido: %q", v)
}

func lettersOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, textnorm.StripAccents(s))
}

// VoteLikelihood is stored in its accented canonical form.
type VoteLikelihood string

const (
	VoteHigh   VoteLikelihood = "Alta"
	VoteMedium VoteLikelihood = "Média"
	VoteLow    VoteLikelihood = "Baixa"
)

// ParseVoteLikelihood is accent and case insensitive and returns the canonical form.
func ParseVoteLikelihood(v string) (VoteLikelihood, error) {
	switch textnorm.Normalize(v) {
	case "ALTA":
		return VoteHigh, nil
	case "MEDIA":
		return VoteMedium, nil
	case "BAIXA":
		return VoteLow, nil
	}
	return "", fmt.Errorf("probabilidade de voto inválida: %q", v)
}

package api

// swagger:model api.PartnerResponse
type PartnerResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"nome"`
	Token string `json:"token" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
}

package response

import (
	"nexus-store/internal/infra/cep"
)

type CepResponse struct {
	Cep          string `json:"cep"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

func FromCepAddress(a cep.Address) *CepResponse {
	return &CepResponse{
		Cep:          a.Cep,
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}

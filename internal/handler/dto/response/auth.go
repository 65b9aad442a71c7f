package response

import (
	"nexus-store/internal/domain/account"
	"nexus-store/internal/store"
)

type AccountAddressResponse struct {
	ID           string `json:"id"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	IsDefault    bool   `json:"is_default"`
}

type AccountResponse struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Email     string                   `json:"email"`
	Phone     string                   `json:"phone,omitempty"`
	CPF       string                   `json:"cpf,omitempty"`
	Avatar    string                   `json:"avatar"`
	Verified  bool                     `json:"verified"`
	Role      string                   `json:"role"`
	Addresses []AccountAddressResponse `json:"addresses"`
}

func FromAccount(v store.AccountView) *AccountResponse {
	resp := &AccountResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		CPF:       v.CPF,
		Avatar:    v.Avatar,
		Verified:  v.Verified,
		Role:      v.Role.String(),
		Addresses: fromAccountAddresses(v.Addresses),
	}
	return resp
}

func fromAccountAddresses(addrs []account.Address) []AccountAddressResponse {
	out := make([]AccountAddressResponse, len(addrs))
	for i, a := range addrs {
		out[i] = AccountAddressResponse{
			ID:           a.ID.String(),
			Street:       a.Street,
			Number:       a.Number,
			Complement:   a.Complement,
			Neighborhood: a.Neighborhood,
			City:         a.City,
			State:        a.State,
			ZipCode:      a.ZipCode,
			IsDefault:    a.IsDefault,
		}
	}
	return out
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	Account     *AccountResponse `json:"account"`
}

type RegisterResponse struct {
	Status string `json:"status"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

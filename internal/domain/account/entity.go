package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is a demo storefront account. Passwords are bcrypt-hashed even
// though authentication here is a simulation; the hash travels through the
// persisted snapshot.
type Account struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	phone        string
	cpf          string
	avatar       string
	verified     bool
	addresses    []Address
	createdAt    time.Time
}

func NewAccount(name string, email Email, passwordHash string, now time.Time) *Account {
	return &Account{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=" + email.Value(),
		createdAt:    now,
	}
}

// ReconstructAccount rebuilds an account from a trusted snapshot.
func ReconstructAccount(id uuid.UUID, name string, email Email, passwordHash, phone, cpf, avatar string, verified bool, addresses []Address, createdAt time.Time) *Account {
	return &Account{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		cpf:          cpf,
		avatar:       avatar,
		verified:     verified,
		addresses:    addresses,
		createdAt:    createdAt,
	}
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Name() string         { return a.name }
func (a *Account) Email() Email         { return a.email }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Phone() string        { return a.phone }
func (a *Account) CPF() string          { return a.cpf }
func (a *Account) Avatar() string       { return a.avatar }
func (a *Account) IsVerified() bool     { return a.verified }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) Addresses() []Address {
	out := make([]Address, len(a.addresses))
	copy(out, a.addresses)
	return out
}

func (a *Account) MarkVerified() { a.verified = true }

func (a *Account) SetPhone(phone Phone) { a.phone = phone.Value() }

func (a *Account) UpdateProfile(name, cpf string) {
	if name != "" {
		a.name = name
	}
	if cpf != "" {
		a.cpf = cpf
	}
}

type Address struct {
	ID           uuid.UUID `json:"id"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Complement   string    `json:"complement,omitempty"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	IsDefault    bool      `json:"is_default"`
}

func (a *Account) AddAddress(addr Address) Address {
	if addr.ID == uuid.Nil {
		addr.ID = uuid.New()
	}
	if len(a.addresses) == 0 {
		addr.IsDefault = true
	}
	a.addresses = append(a.addresses, addr)
	return addr
}

func (a *Account) RemoveAddress(addressID uuid.UUID) bool {
	for i, addr := range a.addresses {
		if addr.ID == addressID {
			a.addresses = append(a.addresses[:i], a.addresses[i+1:]...)
			return true
		}
	}
	return false
}

func (a *Account) SetDefaultAddress(addressID uuid.UUID) bool {
	found := false
	for i := range a.addresses {
		if a.addresses[i].ID == addressID {
			a.addresses[i].IsDefault = true
			found = true
		} else {
			a.addresses[i].IsDefault = false
		}
	}
	return found
}

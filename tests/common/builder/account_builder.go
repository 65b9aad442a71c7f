//go:build unit

package builder

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"nexus-store/internal/domain/account"
)

type AccountBuilder struct {
	Name     string
	Email    string
	Password string
	Verified bool
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: "123456",
		Verified: true,
	}
}

func (b *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(b)
	return b
}

func (b *AccountBuilder) BuildDomain() (*account.Account, error) {
	email, err := account.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}

	acc := account.NewAccount(b.Name, email, "hashed_password", time.Now())
	if b.Verified {
		acc.MarkVerified()
	}
	return acc, nil
}

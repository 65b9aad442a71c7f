//go:build unit

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-store/internal/domain/account"
	"nexus-store/internal/infra/storage"
	"nexus-store/internal/pkg/clock"
	"nexus-store/internal/pkg/errs"
	"nexus-store/internal/store"
)

type accountFixture struct {
	accounts store.AccountStore
	outbox   store.OutboxStore
	snaps    storage.Snapshots
}

func newAccountFixture(t *testing.T) accountFixture {
	t.Helper()
	f := accountFixtureWith(t, newSnapshots(t))
	return f
}

func accountFixtureWith(t *testing.T, snaps storage.Snapshots) accountFixture {
	t.Helper()
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	outbox, err := store.NewOutboxStore(ctx, snaps, clk)
	require.NoError(t, err)
	accounts, err := store.NewAccountStore(ctx, snaps, outbox, clk, 0)
	require.NoError(t, err)
	return accountFixture{accounts: accounts, outbox: outbox, snaps: snaps}
}

func TestAccountStoreSeedsDemoAccount(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture(t)

	view, err := f.accounts.Login(ctx, "joao@email.com", "123456")
	require.NoError(t, err)

	assert.Equal(t, "João Silva", view.Name)
	assert.True(t, view.Verified)
	require.Len(t, view.Addresses, 1)
	assert.True(t, view.Addresses[0].IsDefault)
}

func TestAccountStoreRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("register, verify, then login", func(t *testing.T) {
		f := newAccountFixture(t)

		token, err := f.accounts.Register(ctx, "Maria", "maria@email.com", "senha123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		// The verification email carries the token.
		emails := f.outbox.Emails()
		require.NotEmpty(t, emails)
		assert.Equal(t, "maria@email.com", emails[0].To)
		assert.Contains(t, emails[0].Body, token)

		// Login is blocked until the token is redeemed.
		_, err = f.accounts.Login(ctx, "maria@email.com", "senha123")
		assert.ErrorIs(t, err, errs.ErrAccountUnverified)

		view, err := f.accounts.VerifyToken(ctx, token)
		require.NoError(t, err)
		assert.True(t, view.Verified)

		view, err = f.accounts.Login(ctx, "maria@email.com", "senha123")
		require.NoError(t, err)
		assert.Equal(t, "Maria", view.Name)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newAccountFixture(t)

		_, err := f.accounts.Register(ctx, "Outro João", "joao@email.com", "senha123")
		assert.ErrorIs(t, err, errs.ErrDuplicateAccount)
	})

	t.Run("weak password", func(t *testing.T) {
		f := newAccountFixture(t)

		_, err := f.accounts.Register(ctx, "Maria", "maria@email.com", "123")
		assert.ErrorIs(t, err, account.ErrPasswordTooWeak)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newAccountFixture(t)

		_, err := f.accounts.Register(ctx, "Maria", "not-an-email", "senha123")
		assert.ErrorIs(t, err, account.ErrInvalidEmail)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newAccountFixture(t)

		_, err := f.accounts.VerifyToken(ctx, "verify_nope")
		assert.ErrorIs(t, err, errs.ErrTokenUnknown)
	})
}

func TestAccountStoreRegisterWithPhone(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture(t)

	code, err := f.accounts.RegisterWithPhone(ctx, "Carlos", "(11) 98765-4321", "senha123")
	require.NoError(t, err)
	require.NotEmpty(t, code)

	// The code goes out over both channels, newest first.
	messages := f.outbox.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, store.ChannelWhatsApp, messages[0].Channel)
	assert.Equal(t, store.ChannelSMS, messages[1].Channel)
	for _, msg := range messages {
		assert.Equal(t, "11987654321", msg.To)
		assert.Contains(t, msg.Body, code)
	}

	view, err := f.accounts.VerifyPhoneCode(ctx, code)
	require.NoError(t, err)
	assert.True(t, view.Verified)
	assert.Equal(t, "11987654321", view.Phone)

	// The same number cannot register twice.
	_, err = f.accounts.RegisterWithPhone(ctx, "Carlos", "11987654321", "senha123")
	assert.ErrorIs(t, err, errs.ErrDuplicateAccount)
}

func TestAccountStoreResendVerification(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture(t)

	first, err := f.accounts.Register(ctx, "Maria", "maria@email.com", "senha123")
	require.NoError(t, err)

	second, err := f.accounts.ResendVerification(ctx, "maria@email.com")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// Both tokens stay redeemable.
	_, err = f.accounts.VerifyToken(ctx, second)
	require.NoError(t, err)

	_, err = f.accounts.ResendVerification(ctx, "ninguem@email.com")
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestAccountStoreLogin(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture(t)

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.accounts.Login(ctx, "joao@email.com", "errada")
		assert.ErrorIs(t, err, errs.ErrInvalidPassword)
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		_, err := f.accounts.Login(ctx, "ninguem@email.com", "123456")
		assert.ErrorIs(t, err, errs.ErrInvalidPassword)
	})

	t.Run("email is normalized", func(t *testing.T) {
		view, err := f.accounts.Login(ctx, "  Joao@Email.com  ", "123456")
		require.NoError(t, err)
		assert.Equal(t, "joao@email.com", view.Email)
	})
}

func TestAccountStoreProfileAndAddresses(t *testing.T) {
	ctx := context.Background()
	f := newAccountFixture(t)

	view, err := f.accounts.Login(ctx, "joao@email.com", "123456")
	require.NoError(t, err)

	t.Run("update profile", func(t *testing.T) {
		updated, err := f.accounts.UpdateProfile(ctx, view.ID, "João S.", "")
		require.NoError(t, err)
		assert.Equal(t, "João S.", updated.Name)
		// Blank cpf leaves the stored value alone.
		assert.Equal(t, view.CPF, updated.CPF)
	})

	t.Run("address lifecycle", func(t *testing.T) {
		updated, err := f.accounts.AddAddress(ctx, view.ID, account.Address{
			Street:       "Avenida Paulista",
			Number:       "1000",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
			ZipCode:      "01310-100",
		})
		require.NoError(t, err)
		require.Len(t, updated.Addresses, 2)

		added := updated.Addresses[1]
		assert.False(t, added.IsDefault)

		updated, err = f.accounts.SetDefaultAddress(ctx, view.ID, added.ID)
		require.NoError(t, err)
		assert.False(t, updated.Addresses[0].IsDefault)
		assert.True(t, updated.Addresses[1].IsDefault)

		updated, err = f.accounts.RemoveAddress(ctx, view.ID, added.ID)
		require.NoError(t, err)
		assert.Len(t, updated.Addresses, 1)
	})

	t.Run("unknown account id", func(t *testing.T) {
		_, err := f.accounts.UpdateProfile(ctx, view.ID, "x", "")
		require.NoError(t, err)

		_, found := f.accounts.FindByID(view.ID)
		assert.True(t, found)

		_, err = f.accounts.AddAddress(ctx, uuid.New(), account.Address{})
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func TestAccountStoreSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	snaps := newSnapshots(t)
	f := accountFixtureWith(t, snaps)

	token, err := f.accounts.Register(ctx, "Maria", "maria@email.com", "senha123")
	require.NoError(t, err)

	// A restart keeps both the account and the pending token.
	reloaded := accountFixtureWith(t, snaps)

	view, err := reloaded.accounts.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "maria@email.com", view.Email)

	_, err = reloaded.accounts.Login(ctx, "maria@email.com", "senha123")
	require.NoError(t, err)
}

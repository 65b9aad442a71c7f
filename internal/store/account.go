package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"nexus-store/internal/domain/account"
	"nexus-store/internal/infra/storage"
	"nexus-store/internal/pkg/clock"
	"nexus-store/internal/pkg/errs"
	"nexus-store/internal/pkg/password"
)

type AccountView struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CPF       string
	Avatar    string
	Verified  bool
	Role      account.Role
	Addresses []account.Address
}

// AccountStore simulates the backend's account system: registration,
// login, and email/phone verification, with "sent" mail landing in the
// outbox instead of a real provider. Verification tokens and codes are
// persisted alongside the accounts so a restart does not orphan them.
type AccountStore interface {
	Register(ctx context.Context, name, email, pass string) (token string, err error)
	RegisterWithPhone(ctx context.Context, name, phone, pass string) (code string, err error)
	Login(ctx context.Context, email, pass string) (AccountView, error)
	VerifyToken(ctx context.Context, token string) (AccountView, error)
	VerifyPhoneCode(ctx context.Context, code string) (AccountView, error)
	ResendVerification(ctx context.Context, email string) (token string, err error)

	FindByID(id uuid.UUID) (AccountView, bool)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, cpf string) (AccountView, error)
	AddAddress(ctx context.Context, id uuid.UUID, addr account.Address) (AccountView, error)
	RemoveAddress(ctx context.Context, id, addressID uuid.UUID) (AccountView, error)
	SetDefaultAddress(ctx context.Context, id, addressID uuid.UUID) (AccountView, error)
}

type accountStore struct {
	mu         sync.Mutex
	snaps      storage.Snapshots
	outbox     OutboxStore
	clock      clock.Clock
	loginDelay time.Duration
	accounts   []*account.Account
	tokens     map[string]string // verification token -> email
	codes      map[string]string // verification code -> phone
}

// NewAccountStore rehydrates accounts from the snapshot, seeding the fixed
// demo account on first run.
func NewAccountStore(ctx context.Context, snaps storage.Snapshots, outbox OutboxStore, clk clock.Clock, loginDelay time.Duration) (AccountStore, error) {
	s := &accountStore{
		snaps:      snaps,
		outbox:     outbox,
		clock:      clk,
		loginDelay: loginDelay,
		tokens:     make(map[string]string),
		codes:      make(map[string]string),
	}

	blob, found, err := snaps.Load(ctx, storage.KeyAccounts)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load account snapshot")
	}
	if found {
		var snap accountsSnapshot
		if err := json.Unmarshal(blob, &snap); err != nil {
			return nil, errs.Mark(err, errs.ErrSnapshotCorrupt)
		}
		for _, rec := range snap.Accounts {
			acc, err := fromAccountRecord(rec)
			if err != nil {
				slog.Warn("dropping unreadable account record", "email", rec.Email)
				continue
			}
			s.accounts = append(s.accounts, acc)
		}
		if snap.VerificationTokens != nil {
			s.tokens = snap.VerificationTokens
		}
		if snap.VerificationCodes != nil {
			s.codes = snap.VerificationCodes
		}
		return s, nil
	}

	if err := s.seedDemoAccount(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *accountStore) seedDemoAccount(ctx context.Context) error {
	email, err := account.NewEmail("joao@email.com")
	if err != nil {
		return err
	}
	hash, err := password.HashPassword("123456")
	if err != nil {
		return err
	}

	acc := account.NewAccount("João Silva", email, hash, s.clock.Now())
	acc.MarkVerified()
	acc.UpdateProfile("", "123.456.789-00")
	acc.AddAddress(account.Address{
		Street:       "Rua das Flores",
		Number:       "123",
		Neighborhood: "Centro",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "01001-000",
	})

	s.accounts = append(s.accounts, acc)
	s.persist(ctx)
	return nil
}

// Register creates an unverified account and drops a verification email
// into the outbox. The returned token is what that email carries.
func (s *accountStore) Register(ctx context.Context, name, email, pass string) (string, error) {
	s.simulateDelay()

	addr, err := account.NewEmail(email)
	if err != nil {
		return "", err
	}
	if _, err := account.NewPassword(pass); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByEmailLocked(addr.Value()) != nil {
		return "", errs.ErrDuplicateAccount
	}

	hash, err := password.HashPassword(pass)
	if err != nil {
		return "", err
	}
	acc := account.NewAccount(name, addr, hash, s.clock.Now())
	s.accounts = append(s.accounts, acc)

	token := "verify_" + uuid.NewString()
	s.tokens[token] = addr.Value()
	s.persist(ctx)

	s.outbox.AddEmail(ctx, addr.Value(), "Verifique sua conta",
		fmt.Sprintf("Olá %s,\n\nClique no link abaixo para verificar sua conta:\n/verificar?token=%s\n\nSe você não criou essa conta, ignore este e-mail.", name, token))

	return token, nil
}

// RegisterWithPhone creates an unverified account keyed by phone number and
// sends the verification code over both SMS and WhatsApp.
func (s *accountStore) RegisterWithPhone(ctx context.Context, name, phone, pass string) (string, error) {
	s.simulateDelay()

	ph, err := account.NewPhone(phone)
	if err != nil {
		return "", err
	}
	if pass == "" {
		pass = uuid.NewString()[:8]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByPhoneLocked(ph.Value()) != nil {
		return "", errs.ErrDuplicateAccount
	}

	email, err := account.NewEmail(ph.Value() + "@phone.local")
	if err != nil {
		return "", err
	}
	hash, err := password.HashPassword(pass)
	if err != nil {
		return "", err
	}
	acc := account.NewAccount(name, email, hash, s.clock.Now())
	acc.SetPhone(ph)
	s.accounts = append(s.accounts, acc)

	code := uuid.NewString()[:6]
	s.codes[code] = ph.Value()
	s.persist(ctx)

	body := fmt.Sprintf("Seu código de verificação é: %s", code)
	s.outbox.AddMessage(ctx, ph.Value(), ChannelSMS, body)
	s.outbox.AddMessage(ctx, ph.Value(), ChannelWhatsApp, body)

	return code, nil
}

// Login distinguishes invalid credentials from a valid-but-unverified
// account; the handler maps each to its own response.
func (s *accountStore) Login(ctx context.Context, email, pass string) (AccountView, error) {
	_ = ctx
	s.simulateDelay()

	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.findByEmailLocked(strings.ToLower(strings.TrimSpace(email)))
	if acc == nil {
		return AccountView{}, errs.ErrInvalidPassword
	}
	if err := password.ComparePassword(acc.PasswordHash(), pass); err != nil {
		return AccountView{}, errs.ErrInvalidPassword
	}
	if !acc.IsVerified() {
		return AccountView{}, errs.ErrAccountUnverified
	}
	return viewOfAccount(acc), nil
}

func (s *accountStore) VerifyToken(ctx context.Context, token string) (AccountView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.tokens[token]
	if !ok {
		return AccountView{}, errs.ErrTokenUnknown
	}
	acc := s.findByEmailLocked(email)
	if acc == nil {
		return AccountView{}, errs.ErrAccountNotFound
	}

	acc.MarkVerified()
	delete(s.tokens, token)
	s.persist(ctx)
	return viewOfAccount(acc), nil
}

func (s *accountStore) VerifyPhoneCode(ctx context.Context, code string) (AccountView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	phone, ok := s.codes[code]
	if !ok {
		return AccountView{}, errs.ErrTokenUnknown
	}
	acc := s.findByPhoneLocked(phone)
	if acc == nil {
		return AccountView{}, errs.ErrAccountNotFound
	}

	acc.MarkVerified()
	delete(s.codes, code)
	s.persist(ctx)
	return viewOfAccount(acc), nil
}

func (s *accountStore) ResendVerification(ctx context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.findByEmailLocked(strings.ToLower(strings.TrimSpace(email)))
	if acc == nil {
		return "", errs.ErrAccountNotFound
	}

	token := "verify_" + uuid.NewString()
	s.tokens[token] = acc.Email().Value()
	s.persist(ctx)

	s.outbox.AddEmail(ctx, acc.Email().Value(), "Verifique sua conta",
		fmt.Sprintf("Olá %s,\n\nClique no link abaixo para verificar sua conta:\n/verificar?token=%s", acc.Name(), token))

	return token, nil
}

func (s *accountStore) FindByID(id uuid.UUID) (AccountView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.findByIDLocked(id)
	if acc == nil {
		return AccountView{}, false
	}
	return viewOfAccount(acc), true
}

func (s *accountStore) UpdateProfile(ctx context.Context, id uuid.UUID, name, cpf string) (AccountView, error) {
	return s.mutateAccount(ctx, id, func(acc *account.Account) error {
		acc.UpdateProfile(name, cpf)
		return nil
	})
}

func (s *accountStore) AddAddress(ctx context.Context, id uuid.UUID, addr account.Address) (AccountView, error) {
	return s.mutateAccount(ctx, id, func(acc *account.Account) error {
		acc.AddAddress(addr)
		return nil
	})
}

func (s *accountStore) RemoveAddress(ctx context.Context, id, addressID uuid.UUID) (AccountView, error) {
	return s.mutateAccount(ctx, id, func(acc *account.Account) error {
		acc.RemoveAddress(addressID)
		return nil
	})
}

func (s *accountStore) SetDefaultAddress(ctx context.Context, id, addressID uuid.UUID) (AccountView, error) {
	return s.mutateAccount(ctx, id, func(acc *account.Account) error {
		acc.SetDefaultAddress(addressID)
		return nil
	})
}

func (s *accountStore) mutateAccount(ctx context.Context, id uuid.UUID, fn func(*account.Account) error) (AccountView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.findByIDLocked(id)
	if acc == nil {
		return AccountView{}, errs.ErrAccountNotFound
	}
	if err := fn(acc); err != nil {
		return AccountView{}, err
	}
	s.persist(ctx)
	return viewOfAccount(acc), nil
}

func (s *accountStore) findByEmailLocked(email string) *account.Account {
	for _, acc := range s.accounts {
		if acc.Email().Value() == email {
			return acc
		}
	}
	return nil
}

func (s *accountStore) findByPhoneLocked(phone string) *account.Account {
	for _, acc := range s.accounts {
		if acc.Phone() == phone {
			return acc
		}
	}
	return nil
}

func (s *accountStore) findByIDLocked(id uuid.UUID) *account.Account {
	for _, acc := range s.accounts {
		if acc.ID() == id {
			return acc
		}
	}
	return nil
}

// simulateDelay stands in for network latency before login/registration
// resolves. Not cancellable, never retried.
func (s *accountStore) simulateDelay() {
	if s.loginDelay > 0 {
		time.Sleep(s.loginDelay)
	}
}

func viewOfAccount(acc *account.Account) AccountView {
	return AccountView{
		ID:        acc.ID(),
		Name:      acc.Name(),
		Email:     acc.Email().Value(),
		Phone:     acc.Phone(),
		CPF:       acc.CPF(),
		Avatar:    acc.Avatar(),
		Verified:  acc.IsVerified(),
		Role:      account.RoleCustomer,
		Addresses: acc.Addresses(),
	}
}

func (s *accountStore) persist(ctx context.Context) {
	snap := accountsSnapshot{
		Accounts:           make([]accountRecord, 0, len(s.accounts)),
		VerificationTokens: s.tokens,
		VerificationCodes:  s.codes,
	}
	for _, acc := range s.accounts {
		snap.Accounts = append(snap.Accounts, toAccountRecord(acc))
	}

	blob, err := json.Marshal(snap)
	if err != nil {
		slog.Warn("failed to marshal account snapshot", "error", err.Error())
		return
	}
	if err := s.snaps.Save(ctx, storage.KeyAccounts, blob); err != nil {
		slog.Warn("failed to save account snapshot", "error", err.Error())
	}
}

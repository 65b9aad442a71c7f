package store

import (
	"time"

	"github.com/google/uuid"

	"nexus-store/internal/domain/account"
	"nexus-store/internal/domain/cart"
	"nexus-store/internal/domain/pricing"
)

// Snapshot record types. These are the wire shape of the persisted blobs;
// domain entities are rebuilt from them at startup.

type overrideRecord struct {
	ProductID          string  `json:"product_id"`
	OriginalPriceCents int64   `json:"original_price_cents"`
	CurrentPriceCents  int64   `json:"current_price_cents"`
	Discount           float64 `json:"discount"`
	DiscountKind       string  `json:"discount_kind"`
	IsActive           bool    `json:"is_active"`
}

func toOverrideRecord(o *pricing.Override) overrideRecord {
	return overrideRecord{
		ProductID:          o.ProductID(),
		OriginalPriceCents: o.BasePriceCents(),
		CurrentPriceCents:  o.CurrentCents(),
		Discount:           o.Discount().Magnitude(),
		DiscountKind:       string(o.Discount().Kind()),
		IsActive:           o.IsActive(),
	}
}

func fromOverrideRecord(rec overrideRecord) *pricing.Override {
	kind, err := pricing.NewKind(rec.DiscountKind)
	if err != nil {
		kind = pricing.KindPercentage
	}
	discount, err := pricing.NewDiscount(kind, rec.Discount)
	if err != nil {
		discount = pricing.ZeroDiscount()
	}
	return pricing.ReconstructOverride(rec.ProductID, rec.OriginalPriceCents, rec.CurrentPriceCents, discount, rec.IsActive)
}

type lineRecord struct {
	ProductID string `json:"product_id"`
	Variant   string `json:"variant,omitempty"`
	Quantity  int    `json:"quantity"`
}

type cartRecord struct {
	Lines      []lineRecord `json:"lines"`
	CouponCode string       `json:"coupon_code,omitempty"`
	Discount   float64      `json:"discount"`
}

func toCartRecord(lines []*cart.Line, coupon cart.Coupon) cartRecord {
	rec := cartRecord{Lines: make([]lineRecord, 0, len(lines))}
	for _, l := range lines {
		rec.Lines = append(rec.Lines, lineRecord{
			ProductID: l.ProductID(),
			Variant:   l.Variant(),
			Quantity:  l.Quantity(),
		})
	}
	rec.CouponCode = coupon.Code()
	rec.Discount = coupon.Rate()
	return rec
}

type accountRecord struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	PasswordHash string            `json:"password_hash"`
	Phone        string            `json:"phone,omitempty"`
	CPF          string            `json:"cpf,omitempty"`
	Avatar       string            `json:"avatar,omitempty"`
	Verified     bool              `json:"verified"`
	Addresses    []account.Address `json:"addresses,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

type accountsSnapshot struct {
	Accounts           []accountRecord   `json:"accounts"`
	VerificationTokens map[string]string `json:"verification_tokens,omitempty"` // token -> email
	VerificationCodes  map[string]string `json:"verification_codes,omitempty"`  // code -> phone
}

func toAccountRecord(a *account.Account) accountRecord {
	return accountRecord{
		ID:           a.ID(),
		Name:         a.Name(),
		Email:        a.Email().Value(),
		PasswordHash: a.PasswordHash(),
		Phone:        a.Phone(),
		CPF:          a.CPF(),
		Avatar:       a.Avatar(),
		Verified:     a.IsVerified(),
		Addresses:    a.Addresses(),
		CreatedAt:    a.CreatedAt(),
	}
}

func fromAccountRecord(rec accountRecord) (*account.Account, error) {
	email, err := account.NewEmail(rec.Email)
	if err != nil {
		return nil, err
	}
	return account.ReconstructAccount(
		rec.ID, rec.Name, email, rec.PasswordHash, rec.Phone, rec.CPF,
		rec.Avatar, rec.Verified, rec.Addresses, rec.CreatedAt,
	), nil
}

type emailRecord struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type messageRecord struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	Channel   string    `json:"channel"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type favoritesRecord struct {
	ProductIDs []string `json:"product_ids"`
}

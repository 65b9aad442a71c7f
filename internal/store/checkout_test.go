//go:build unit

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-store/internal/domain/catalog"
	"nexus-store/internal/domain/checkout"
	infracatalog "nexus-store/internal/infra/catalog"
	"nexus-store/internal/pkg/clock"
	"nexus-store/internal/pkg/errs"
	"nexus-store/internal/store"
	"nexus-store/tests/common/builder"
)

type checkoutFixture struct {
	cart     store.CartStore
	outbox   store.OutboxStore
	checkout store.CheckoutStore
	clock    *clock.MockClock
}

func newCheckoutFixture(t *testing.T, products ...catalog.Product) checkoutFixture {
	t.Helper()
	ctx := context.Background()
	snaps := newSnapshots(t)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	cat := infracatalog.NewCatalog(products)
	pricingStore, err := store.NewPricingStore(ctx, cat, snaps)
	require.NoError(t, err)
	cartStore, err := store.NewCartStore(ctx, cat, pricingStore, snaps)
	require.NoError(t, err)
	outbox, err := store.NewOutboxStore(ctx, snaps, clk)
	require.NoError(t, err)

	return checkoutFixture{
		cart:     cartStore,
		outbox:   outbox,
		checkout: store.NewCheckoutStore(cartStore, outbox, clk),
		clock:    clk,
	}
}

func testAddress() checkout.Address {
	return checkout.Address{
		Cep:          "01001-000",
		Street:       "Praça da Sé",
		Number:       "100",
		Neighborhood: "Sé",
		City:         "São Paulo",
		State:        "SP",
	}
}

func TestCheckoutStoreBegin(t *testing.T) {
	ctx := context.Background()
	product := builder.NewProductBuilder().Build()

	t.Run("empty cart cannot start a checkout", func(t *testing.T) {
		f := newCheckoutFixture(t, product)

		_, err := f.checkout.Begin(ctx)
		assert.ErrorIs(t, err, errs.ErrEmptyCart)
	})

	t.Run("starts at the address stage", func(t *testing.T) {
		f := newCheckoutFixture(t, product)
		require.NoError(t, f.cart.AddItem(ctx, product.ID, 1, ""))

		view, err := f.checkout.Begin(ctx)
		require.NoError(t, err)
		assert.Equal(t, checkout.StageAddress, view.Stage)
	})

	t.Run("unknown session id", func(t *testing.T) {
		f := newCheckoutFixture(t, product)
		require.NoError(t, f.cart.AddItem(ctx, product.ID, 1, ""))
		view, err := f.checkout.Begin(ctx)
		require.NoError(t, err)

		_, err = f.checkout.Get(view.ID)
		require.NoError(t, err)

		other := newCheckoutFixture(t, product)
		require.NoError(t, other.cart.AddItem(ctx, product.ID, 1, ""))
		_, err = other.checkout.Get(view.ID)
		assert.ErrorIs(t, err, errs.ErrCheckoutNotFound)
	})
}

func TestCheckoutStoreSummarize(t *testing.T) {
	ctx := context.Background()
	product := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
		b.PriceCents = 10000
	}).Build()

	f := newCheckoutFixture(t, product)
	require.NoError(t, f.cart.AddItem(ctx, product.ID, 2, ""))
	_, ok := f.cart.ApplyCoupon(ctx, "DESCONTO10")
	require.True(t, ok)

	view, err := f.checkout.Begin(ctx)
	require.NoError(t, err)
	_, err = f.checkout.SetShipping(view.ID, "express")
	require.NoError(t, err)

	summary, err := f.checkout.Summarize(view.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(20000), summary.SubtotalCents)
	assert.Equal(t, "DESCONTO10", summary.CouponCode)
	assert.Equal(t, int64(2000), summary.DiscountCents)
	assert.Equal(t, int64(2999), summary.ShippingFeeCents)
	assert.Equal(t, int64(20999), summary.TotalCents)

	require.Len(t, summary.Installments, checkout.MaxInstallments)
	assert.Equal(t, 1, summary.Installments[0].Count)
	assert.Equal(t, summary.TotalCents, summary.Installments[0].AmountCents)
	// 20999 / 12, rounded to currency precision.
	assert.Equal(t, int64(1750), summary.Installments[11].AmountCents)
	assert.NotEmpty(t, summary.Installments[0].Formatted)
}

func TestCheckoutStoreSubmit(t *testing.T) {
	ctx := context.Background()
	product := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
		b.PriceCents = 10000
	}).Build()

	prepare := func(t *testing.T, f checkoutFixture) store.WizardView {
		t.Helper()
		require.NoError(t, f.cart.AddItem(ctx, product.ID, 1, ""))
		view, err := f.checkout.Begin(ctx)
		require.NoError(t, err)

		_, err = f.checkout.SetAddress(view.ID, testAddress())
		require.NoError(t, err)
		_, err = f.checkout.Next(view.ID)
		require.NoError(t, err)
		_, err = f.checkout.SetShipping(view.ID, "sedex")
		require.NoError(t, err)
		_, err = f.checkout.Next(view.ID)
		require.NoError(t, err)
		_, err = f.checkout.SetPayment(view.ID, checkout.Payment{Method: checkout.PaymentPix, Installments: 1})
		require.NoError(t, err)
		view, err = f.checkout.Next(view.ID)
		require.NoError(t, err)
		require.Equal(t, checkout.StageReview, view.Stage)
		return view
	}

	t.Run("submission is blocked before review", func(t *testing.T) {
		f := newCheckoutFixture(t, product)
		require.NoError(t, f.cart.AddItem(ctx, product.ID, 1, ""))
		view, err := f.checkout.Begin(ctx)
		require.NoError(t, err)

		_, err = f.checkout.Submit(ctx, view.ID)
		assert.ErrorIs(t, err, checkout.ErrNotAtReview)
	})

	t.Run("submit builds the order and tears everything down", func(t *testing.T) {
		f := newCheckoutFixture(t, product)
		view := prepare(t, f)

		order, err := f.checkout.Submit(ctx, view.ID)
		require.NoError(t, err)

		require.Len(t, order.Lines, 1)
		assert.Equal(t, product.ID, order.Lines[0].ProductID)
		assert.Equal(t, int64(15999), order.TotalCents) // 10000 + sedex 5999
		assert.Equal(t, checkout.PaymentPix, order.Payment)
		assert.Equal(t, f.clock.Now(), order.SubmittedAt)

		// The cart is emptied and the session id is dead.
		assert.Empty(t, f.cart.Lines())
		_, err = f.checkout.Get(view.ID)
		assert.ErrorIs(t, err, errs.ErrCheckoutNotFound)

		// Confirmation lands in the outbox.
		emails := f.outbox.Emails()
		require.Len(t, emails, 1)
		assert.Equal(t, "Pedido realizado com sucesso", emails[0].Subject)
		assert.Contains(t, emails[0].Body, order.ID.String())
	})

	t.Run("double submit", func(t *testing.T) {
		f := newCheckoutFixture(t, product)
		view := prepare(t, f)

		_, err := f.checkout.Submit(ctx, view.ID)
		require.NoError(t, err)
		_, err = f.checkout.Submit(ctx, view.ID)
		assert.ErrorIs(t, err, errs.ErrCheckoutNotFound)
	})
}

func TestCheckoutStoreNavigation(t *testing.T) {
	ctx := context.Background()
	product := builder.NewProductBuilder().Build()

	f := newCheckoutFixture(t, product)
	require.NoError(t, f.cart.AddItem(ctx, product.ID, 1, ""))
	view, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	// Forward is gated on a complete address.
	_, err = f.checkout.Next(view.ID)
	assert.ErrorIs(t, err, checkout.ErrStageIncomplete)

	_, err = f.checkout.SetAddress(view.ID, testAddress())
	require.NoError(t, err)
	view, err = f.checkout.Next(view.ID)
	require.NoError(t, err)
	assert.Equal(t, checkout.StageShipping, view.Stage)

	// Back is always free.
	view, err = f.checkout.Back(view.ID)
	require.NoError(t, err)
	assert.Equal(t, checkout.StageAddress, view.Stage)

	_, err = f.checkout.SetShipping(view.ID, "frete-gratis")
	assert.ErrorIs(t, err, checkout.ErrUnknownShipping)
}

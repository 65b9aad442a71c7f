//go:build unit

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-store/internal/infra/storage"
	"nexus-store/internal/pkg/clock"
	"nexus-store/internal/store"
)

func newOutboxFixture(t *testing.T, snaps storage.Snapshots) (store.OutboxStore, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	outbox, err := store.NewOutboxStore(context.Background(), snaps, clk)
	require.NoError(t, err)
	return outbox, clk
}

func TestOutboxStoreEmails(t *testing.T) {
	ctx := context.Background()
	outbox, clk := newOutboxFixture(t, newSnapshots(t))

	first := outbox.AddEmail(ctx, "a@email.com", "Primeiro", "corpo")
	clk.Add(time.Minute)
	second := outbox.AddEmail(ctx, "b@email.com", "Segundo", "corpo")

	t.Run("newest first", func(t *testing.T) {
		emails := outbox.Emails()
		require.Len(t, emails, 2)
		assert.Equal(t, second.ID, emails[0].ID)
		assert.Equal(t, first.ID, emails[1].ID)
		assert.True(t, emails[0].CreatedAt.After(emails[1].CreatedAt))
	})

	t.Run("remove by id", func(t *testing.T) {
		outbox.RemoveEmail(ctx, first.ID)
		emails := outbox.Emails()
		require.Len(t, emails, 1)
		assert.Equal(t, second.ID, emails[0].ID)

		// Unknown ids are ignored.
		outbox.RemoveEmail(ctx, "no-such-id")
		assert.Len(t, outbox.Emails(), 1)
	})

	t.Run("clear", func(t *testing.T) {
		outbox.ClearEmails(ctx)
		assert.Empty(t, outbox.Emails())
	})
}

func TestOutboxStoreMessages(t *testing.T) {
	ctx := context.Background()
	outbox, _ := newOutboxFixture(t, newSnapshots(t))

	sms := outbox.AddMessage(ctx, "11987654321", store.ChannelSMS, "olá")
	whats := outbox.AddMessage(ctx, "11987654321", store.ChannelWhatsApp, "olá")

	messages := outbox.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, whats.ID, messages[0].ID)
	assert.Equal(t, store.ChannelWhatsApp, messages[0].Channel)
	assert.Equal(t, sms.ID, messages[1].ID)

	outbox.RemoveMessage(ctx, sms.ID)
	assert.Len(t, outbox.Messages(), 1)

	outbox.ClearMessages(ctx)
	assert.Empty(t, outbox.Messages())
}

func TestOutboxStoreSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	snaps := newSnapshots(t)
	outbox, _ := newOutboxFixture(t, snaps)

	email := outbox.AddEmail(ctx, "a@email.com", "Assunto", "corpo")
	msg := outbox.AddMessage(ctx, "11987654321", store.ChannelSMS, "código")

	reloaded, _ := newOutboxFixture(t, snaps)

	emails := reloaded.Emails()
	require.Len(t, emails, 1)
	assert.Equal(t, email.ID, emails[0].ID)
	assert.Equal(t, "Assunto", emails[0].Subject)

	messages := reloaded.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, msg.ID, messages[0].ID)
	assert.Equal(t, store.ChannelSMS, messages[0].Channel)
}

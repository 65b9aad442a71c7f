package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"nexus-store/internal/infra/storage"
	"nexus-store/internal/pkg/clock"
	"nexus-store/internal/pkg/errs"
)

type SentEmail struct {
	ID        string
	To        string
	Subject   string
	Body      string
	CreatedAt time.Time
}

type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

type SentMessage struct {
	ID        string
	To        string
	Channel   Channel
	Body      string
	CreatedAt time.Time
}

// OutboxStore is the demo stand-in for real email/SMS delivery: everything
// "sent" lands in persisted inboxes the UI can browse. Newest first.
type OutboxStore interface {
	AddEmail(ctx context.Context, to, subject, body string) SentEmail
	Emails() []SentEmail
	RemoveEmail(ctx context.Context, id string)
	ClearEmails(ctx context.Context)

	AddMessage(ctx context.Context, to string, channel Channel, body string) SentMessage
	Messages() []SentMessage
	RemoveMessage(ctx context.Context, id string)
	ClearMessages(ctx context.Context)
}

type outboxStore struct {
	mu       sync.RWMutex
	snaps    storage.Snapshots
	clock    clock.Clock
	emails   []emailRecord
	messages []messageRecord
}

func NewOutboxStore(ctx context.Context, snaps storage.Snapshots, clk clock.Clock) (OutboxStore, error) {
	s := &outboxStore{snaps: snaps, clock: clk}

	if blob, found, err := snaps.Load(ctx, storage.KeyEmails); err != nil {
		return nil, errs.Wrap(err, "failed to load email snapshot")
	} else if found {
		if err := json.Unmarshal(blob, &s.emails); err != nil {
			return nil, errs.Mark(err, errs.ErrSnapshotCorrupt)
		}
	}

	if blob, found, err := snaps.Load(ctx, storage.KeyMessages); err != nil {
		return nil, errs.Wrap(err, "failed to load message snapshot")
	} else if found {
		if err := json.Unmarshal(blob, &s.messages); err != nil {
			return nil, errs.Mark(err, errs.ErrSnapshotCorrupt)
		}
	}

	return s, nil
}

func (s *outboxStore) AddEmail(ctx context.Context, to, subject, body string) SentEmail {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := emailRecord{
		ID:        uuid.NewString(),
		To:        to,
		Subject:   subject,
		Body:      body,
		CreatedAt: s.clock.Now(),
	}
	s.emails = append([]emailRecord{rec}, s.emails...)
	s.persistEmails(ctx)
	return SentEmail(rec)
}

func (s *outboxStore) Emails() []SentEmail {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]SentEmail, len(s.emails))
	for i, rec := range s.emails {
		out[i] = SentEmail(rec)
	}
	return out
}

func (s *outboxStore) RemoveEmail(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.emails {
		if rec.ID == id {
			s.emails = append(s.emails[:i], s.emails[i+1:]...)
			s.persistEmails(ctx)
			return
		}
	}
}

func (s *outboxStore) ClearEmails(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emails = nil
	s.persistEmails(ctx)
}

func (s *outboxStore) AddMessage(ctx context.Context, to string, channel Channel, body string) SentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := messageRecord{
		ID:        uuid.NewString(),
		To:        to,
		Channel:   string(channel),
		Body:      body,
		CreatedAt: s.clock.Now(),
	}
	s.messages = append([]messageRecord{rec}, s.messages...)
	s.persistMessages(ctx)
	return toSentMessage(rec)
}

func (s *outboxStore) Messages() []SentMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]SentMessage, len(s.messages))
	for i, rec := range s.messages {
		out[i] = toSentMessage(rec)
	}
	return out
}

func (s *outboxStore) RemoveMessage(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.messages {
		if rec.ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			s.persistMessages(ctx)
			return
		}
	}
}

func (s *outboxStore) ClearMessages(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	s.persistMessages(ctx)
}

func toSentMessage(rec messageRecord) SentMessage {
	return SentMessage{
		ID:        rec.ID,
		To:        rec.To,
		Channel:   Channel(rec.Channel),
		Body:      rec.Body,
		CreatedAt: rec.CreatedAt,
	}
}

func (s *outboxStore) persistEmails(ctx context.Context) {
	blob, err := json.Marshal(s.emails)
	if err != nil {
		slog.Warn("failed to marshal email snapshot", "error", err.Error())
		return
	}
	if err := s.snaps.Save(ctx, storage.KeyEmails, blob); err != nil {
		slog.Warn("failed to save email snapshot", "error", err.Error())
	}
}

func (s *outboxStore) persistMessages(ctx context.Context) {
	blob, err := json.Marshal(s.messages)
	if err != nil {
		slog.Warn("failed to marshal message snapshot", "error", err.Error())
		return
	}
	if err := s.snaps.Save(ctx, storage.KeyMessages, blob); err != nil {
		slog.Warn("failed to save message snapshot", "error", err.Error())
	}
}

package response

import (
	"nexus-store/internal/store"
)

type SentEmailResponse struct {
	ID        string `json:"id"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"created_at"`
}

type SentMessageResponse struct {
	ID        string `json:"id"`
	To        string `json:"to"`
	Channel   string `json:"channel"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"created_at"`
}

func FromSentEmails(emails []store.SentEmail) []SentEmailResponse {
	out := make([]SentEmailResponse, len(emails))
	for i, e := range emails {
		out[i] = SentEmailResponse{
			ID:        e.ID,
			To:        e.To,
			Subject:   e.Subject,
			Body:      e.Body,
			CreatedAt: e.CreatedAt.Unix(),
		}
	}
	return out
}

func FromSentMessages(msgs []store.SentMessage) []SentMessageResponse {
	out := make([]SentMessageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = SentMessageResponse{
			ID:        m.ID,
			To:        m.To,
			Channel:   string(m.Channel),
			Body:      m.Body,
			CreatedAt: m.CreatedAt.Unix(),
		}
	}
	return out
}

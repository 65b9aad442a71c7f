package api

import (
	"net/http"

	resdto "nexus-store/internal/handler/dto/response"
	"nexus-store/internal/store"

	"github.com/gin-gonic/gin"
)

// OutboxHandler exposes the simulated email and message inboxes so the
// storefront can show "sent" verification mail without a real provider.
type OutboxHandler struct {
	outbox store.OutboxStore
}

func NewOutboxHandler(outbox store.OutboxStore) *OutboxHandler {
	return &OutboxHandler{
		outbox: outbox,
	}
}

// @Summary List sent emails
// @Tags outbox
// @Produce json
// @Success 200 {array} resdto.SentEmailResponse
// @Router /outbox/emails [get]
func (h *OutboxHandler) ListEmails(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"emails": resdto.FromSentEmails(h.outbox.Emails()),
	})
}

// @Summary Delete sent email
// @Tags outbox
// @Param id path string true "Email ID"
// @Success 204 "No Content"
// @Router /outbox/emails/{id} [delete]
func (h *OutboxHandler) RemoveEmail(c *gin.Context) {
	h.outbox.RemoveEmail(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// @Summary Clear sent emails
// @Tags outbox
// @Success 204 "No Content"
// @Router /outbox/emails [delete]
func (h *OutboxHandler) ClearEmails(c *gin.Context) {
	h.outbox.ClearEmails(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// @Summary List sent messages
// @Description SMS and WhatsApp messages, newest first
// @Tags outbox
// @Produce json
// @Success 200 {array} resdto.SentMessageResponse
// @Router /outbox/messages [get]
func (h *OutboxHandler) ListMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"messages": resdto.FromSentMessages(h.outbox.Messages()),
	})
}

// @Summary Delete sent message
// @Tags outbox
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Router /outbox/messages/{id} [delete]
func (h *OutboxHandler) RemoveMessage(c *gin.Context) {
	h.outbox.RemoveMessage(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// @Summary Clear sent messages
// @Tags outbox
// @Success 204 "No Content"
// @Router /outbox/messages [delete]
func (h *OutboxHandler) ClearMessages(c *gin.Context) {
	h.outbox.ClearMessages(c.Request.Context())
	c.Status(http.StatusNoContent)
}

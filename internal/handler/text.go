package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all non-command text: a set choice when no quiz
// is running, an answer otherwise.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	replies, err := h.engine.HandleText(userID, text)
	if err != nil {
		h.logger.Error("Failed to handle message", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("Something went wrong. Please try /start again.")
	}

	return h.sendReplies(c, replies)
}

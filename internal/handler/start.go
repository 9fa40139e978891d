package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	replies, err := h.engine.HandleStart(userID)
	if err != nil {
		h.logger.Error("Failed to start quiz", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("Something went wrong. Please try /start again.")
	}

	return h.sendReplies(c, replies)
}

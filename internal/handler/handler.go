package handler

import (
	"vocaquiz/internal/middleware"
	"vocaquiz/internal/quiz"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler wires the quiz engine to the Telegram transport.
type Handler struct {
	bot    *tele.Bot
	engine *quiz.Engine
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, engine *quiz.Engine, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		engine: engine,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.Logging(h.logger))

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send("Send /start to begin a quiz. Answer each question and I will keep score.")
}

// sendReplies delivers engine replies in order, attaching a one-time
// choice keyboard when a reply carries options.
func (h *Handler) sendReplies(c tele.Context, replies []quiz.Reply) error {
	for _, reply := range replies {
		if len(reply.Options) > 0 {
			if err := c.Send(reply.Text, choiceMarkup(reply.Options)); err != nil {
				return err
			}
			continue
		}
		if err := c.Send(reply.Text); err != nil {
			return err
		}
	}
	return nil
}

// choiceMarkup builds a one-time reply keyboard with one option per row.
func choiceMarkup(options []string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{
		OneTimeKeyboard: true,
		ResizeKeyboard:  true,
	}

	rows := make([]tele.Row, 0, len(options))
	for _, option := range options {
		rows = append(rows, markup.Row(markup.Text(option)))
	}
	markup.Reply(rows...)

	return markup
}

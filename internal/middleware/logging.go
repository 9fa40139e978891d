package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates middleware that logs every handled update
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if sender := c.Sender(); sender != nil {
				logger.Debug("Update received",
					zap.Int64("user_id", sender.ID),
					zap.String("text", c.Text()),
				)
			}

			err := next(c)
			if err != nil {
				logger.Error("Handler failed", zap.Error(err))
			}
			return err
		}
	}
}

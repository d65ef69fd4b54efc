// Package notify records and best-effort delivers user notifications.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/JosuePG/pokemon-trader/internal/models"
	"github.com/JosuePG/pokemon-trader/internal/store"
	"go.uber.org/zap"
)

const deliveryTimeout = 5 * time.Second

// EmailSender attempts a single delivery to an address.
type EmailSender interface {
	Send(ctx context.Context, to, message string) error
}

// LogSender simulates email delivery by logging the message. Delivery can be
// switched off via config, in which case every attempt reports failure.
type LogSender struct {
	log     *zap.Logger
	enabled bool
}

func NewLogSender(log *zap.Logger, enabled bool) *LogSender {
	return &LogSender{log: log, enabled: enabled}
}

func (s *LogSender) Send(ctx context.Context, to, message string) error {
	if !s.enabled {
		return errors.New("email notifications disabled")
	}
	s.log.Info("sending email", zap.String("to", to), zap.String("message", message))
	return nil
}

// Dispatcher attempts a delivery and appends exactly one audit record per
// attempt. It never reports failure to the caller: a lost notification must
// not undo an already committed trade transition.
type Dispatcher struct {
	notifications store.NotificationRepository
	sender        EmailSender
	log           *zap.Logger
}

func NewDispatcher(notifications store.NotificationRepository, sender EmailSender, log *zap.Logger) *Dispatcher {
	return &Dispatcher{notifications: notifications, sender: sender, log: log}
}

func (d *Dispatcher) Notify(ctx context.Context, userID uint, message, email string) {
	sendCtx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	err := d.sender.Send(sendCtx, email, message)
	cancel()

	status := models.NotificationSuccess
	if err != nil {
		status = models.NotificationFailed
		d.log.Warn("email delivery failed",
			zap.Uint("user_id", userID), zap.String("to", email), zap.Error(err))
	}

	n := &models.Notification{
		UserID:         userID,
		Message:        message,
		EmailAttempted: true,
		Status:         status,
	}
	if err := d.notifications.Create(ctx, n); err != nil {
		d.log.Error("failed to record notification",
			zap.Uint("user_id", userID), zap.Error(err))
	}
}

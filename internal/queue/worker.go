package queue

import (
	"context"
	"encoding/json"
	"errors"

	"time"

	"github.com/JosuePG/pokemon-trader/internal/models"
	"github.com/JosuePG/pokemon-trader/internal/store"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// fetchRetryDelay spaces out fetch attempts when the reader keeps failing,
// so a persistent broker error does not spin the loop.
const fetchRetryDelay = time.Second

// TradeFinder is the slice of the trade repository the worker needs.
type TradeFinder interface {
	FindByID(ctx context.Context, id uint) (*models.Trade, error)
}

// Worker drains trade-created events for the lifetime of the process.
// Messages are committed only after processing, so a crash mid-flight causes
// redelivery; processing is read-only and therefore safe to repeat.
type Worker struct {
	reader     *kafka.Reader
	trades     TradeFinder
	log        *zap.Logger
	retryDelay time.Duration
}

func NewWorker(brokers []string, topic, groupID string, trades TradeFinder, log *zap.Logger) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	})
	return &Worker{reader: reader, trades: trades, log: log, retryDelay: fetchRetryDelay}
}

// Run consumes until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		msg, err := w.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.log.Error("failed to fetch trade event", zap.Error(err))
			if err := w.pause(ctx); err != nil {
				return err
			}
			continue
		}

		if err := w.process(ctx, msg.Value); err != nil {
			// Leave the message uncommitted so it is redelivered.
			w.log.Error("failed to process trade event", zap.Error(err))
			continue
		}

		if err := w.reader.CommitMessages(ctx, msg); err != nil {
			w.log.Error("failed to commit trade event", zap.Error(err))
		}
	}
}

// process handles one event. A nil return acknowledges the message; malformed
// payloads and vanished trades are acknowledged too, since redelivering them
// can never succeed.
func (w *Worker) process(ctx context.Context, value []byte) error {
	var event TradeCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		w.log.Warn("dropping malformed trade event", zap.Error(err))
		return nil
	}

	t, err := w.trades.FindByID(ctx, event.TradeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			w.log.Warn("trade event references unknown trade", zap.Uint("trade_id", event.TradeID))
			return nil
		}
		return err
	}

	if t.Status == models.TradeStatusPending {
		// Placeholder for auto-validation and expiry of stale requests.
		w.log.Info("processing trade", zap.Uint("trade_id", t.ID))
	}
	return nil
}

// pause waits out the retry delay, returning early when the context ends.
func (w *Worker) pause(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(w.retryDelay):
		return nil
	}
}

func (w *Worker) Close() error {
	return w.reader.Close()
}

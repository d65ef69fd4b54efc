package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/JosuePG/pokemon-trader/internal/models"
	"github.com/JosuePG/pokemon-trader/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeTradeFinder struct {
	trades  map[uint]*models.Trade
	err     error
	lookups int
}

func (f *fakeTradeFinder) FindByID(_ context.Context, id uint) (*models.Trade, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.trades[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func eventPayload(t *testing.T, tradeID uint) []byte {
	t.Helper()
	data, err := json.Marshal(TradeCreatedEvent{TradeID: tradeID})
	require.NoError(t, err)
	return data
}

func newTestWorker(finder TradeFinder, t *testing.T) *Worker {
	return &Worker{trades: finder, log: zaptest.NewLogger(t), retryDelay: time.Millisecond}
}

func TestPauseElapsesAndContinues(t *testing.T) {
	w := newTestWorker(&fakeTradeFinder{}, t)
	assert.NoError(t, w.pause(context.Background()))
}

func TestPauseReturnsOnCancel(t *testing.T) {
	w := newTestWorker(&fakeTradeFinder{}, t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.pause(ctx), context.Canceled)
}

func TestProcessPendingTradeAcks(t *testing.T) {
	pending := &models.Trade{Status: models.TradeStatusPending}
	pending.ID = 5
	finder := &fakeTradeFinder{trades: map[uint]*models.Trade{5: pending}}
	w := newTestWorker(finder, t)

	assert.NoError(t, w.process(context.Background(), eventPayload(t, 5)))
}

func TestProcessIsIdempotentOnRedelivery(t *testing.T) {
	pending := &models.Trade{Status: models.TradeStatusPending}
	pending.ID = 5
	finder := &fakeTradeFinder{trades: map[uint]*models.Trade{5: pending}}
	w := newTestWorker(finder, t)

	payload := eventPayload(t, 5)
	assert.NoError(t, w.process(context.Background(), payload))
	assert.NoError(t, w.process(context.Background(), payload))
	assert.Equal(t, 2, finder.lookups)
	assert.Equal(t, models.TradeStatusPending, pending.Status, "worker never mutates the trade")
}

func TestProcessSettledTradeAcks(t *testing.T) {
	accepted := &models.Trade{Status: models.TradeStatusAccepted}
	accepted.ID = 6
	finder := &fakeTradeFinder{trades: map[uint]*models.Trade{6: accepted}}
	w := newTestWorker(finder, t)

	assert.NoError(t, w.process(context.Background(), eventPayload(t, 6)))
}

func TestProcessUnknownTradeAcks(t *testing.T) {
	w := newTestWorker(&fakeTradeFinder{trades: map[uint]*models.Trade{}}, t)

	assert.NoError(t, w.process(context.Background(), eventPayload(t, 99)))
}

func TestProcessMalformedPayloadAcks(t *testing.T) {
	finder := &fakeTradeFinder{trades: map[uint]*models.Trade{}}
	w := newTestWorker(finder, t)

	assert.NoError(t, w.process(context.Background(), []byte("not json")))
	assert.Zero(t, finder.lookups)
}

func TestProcessRepositoryErrorBlocksAck(t *testing.T) {
	finder := &fakeTradeFinder{err: errors.New("db unavailable")}
	w := newTestWorker(finder, t)

	assert.Error(t, w.process(context.Background(), eventPayload(t, 5)))
}

package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/JosuePG/pokemon-trader/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeNotificationRepo struct {
	created []models.Notification
	err     error
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *models.Notification) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, *n)
	return nil
}

type fakeSender struct {
	err   error
	calls int
}

func (s *fakeSender) Send(_ context.Context, to, message string) error {
	s.calls++
	return s.err
}

func TestNotifyRecordsSuccessfulAttempt(t *testing.T) {
	repo := &fakeNotificationRepo{}
	sender := &fakeSender{}
	d := NewDispatcher(repo, sender, zaptest.NewLogger(t))

	d.Notify(context.Background(), 7, "Your trade with x was accepted.", "user@test.com")

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, uint(7), n.UserID)
	assert.Equal(t, "Your trade with x was accepted.", n.Message)
	assert.True(t, n.EmailAttempted)
	assert.Equal(t, models.NotificationSuccess, n.Status)
	assert.Equal(t, 1, sender.calls)
}

func TestNotifyRecordsFailedAttempt(t *testing.T) {
	repo := &fakeNotificationRepo{}
	sender := &fakeSender{err: errors.New("smtp unreachable")}
	d := NewDispatcher(repo, sender, zaptest.NewLogger(t))

	d.Notify(context.Background(), 7, "msg", "user@test.com")

	require.Len(t, repo.created, 1)
	assert.True(t, repo.created[0].EmailAttempted)
	assert.Equal(t, models.NotificationFailed, repo.created[0].Status)
}

func TestNotifySwallowsRepositoryFailure(t *testing.T) {
	repo := &fakeNotificationRepo{err: errors.New("db down")}
	d := NewDispatcher(repo, &fakeSender{}, zaptest.NewLogger(t))

	// Must not panic or propagate anything.
	d.Notify(context.Background(), 7, "msg", "user@test.com")
}

func TestLogSenderDisabled(t *testing.T) {
	sender := NewLogSender(zaptest.NewLogger(t), false)
	assert.Error(t, sender.Send(context.Background(), "user@test.com", "msg"))

	enabled := NewLogSender(zaptest.NewLogger(t), true)
	assert.NoError(t, enabled.Send(context.Background(), "user@test.com", "msg"))
}

//go:build unit

package broker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"lounge-scheduler/internal/domain/notification"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestNotificationSink_Publish(t *testing.T) {
	ch := &fakeChannel{}
	sink := NewNotificationSink(newPublisher(ch, "lounge", nil))

	subjectID := uuid.New()
	created := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	n := notification.NewNotification(notification.TypeRenewal, notification.SeverityWarning, subjectID, "kai", "renew soon", created)

	require.NoError(t, sink.Publish(context.Background(), n))
	require.Len(t, ch.sent, 1)

	got := ch.sent[0]
	assert.Equal(t, "lounge", got.exchange)
	assert.Equal(t, "notification.renewal", got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)

	var body notificationMessage
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, notificationMessage{
		ID:             n.ID().String(),
		Type:           "renewal",
		Severity:       "warning",
		SubscriptionID: subjectID.String(),
		OwnerID:        "kai",
		Message:        "renew soon",
		CreatedAt:      created,
	}, body)
}

func TestPublisher_Errors(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := newPublisher(ch, "lounge", nil)

	err := p.Publish(context.Background(), "notification.expired", map[string]string{"a": "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lounge/notification.expired")

	err = p.Publish(context.Background(), "x", func() {})
	assert.Error(t, err)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

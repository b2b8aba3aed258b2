package notification

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"marketplace/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []*messaging.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	r.sent = append(r.sent, message)

	return "projects/p/messages/1", r.err
}

func TestFirebaseService_SendToTopic(t *testing.T) {
	sender := &recordingSender{}
	svc := &firebaseService{client: sender}

	err := svc.SendToTopic(context.Background(), "vendor-42", "Approved", "You are live", map[string]string{"type": "vendor.approved"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "vendor-42", msg.Topic)
	assert.Empty(t, msg.Token)
	assert.Equal(t, "Approved", msg.Notification.Title)
	assert.Equal(t, "You are live", msg.Notification.Body)
	assert.Equal(t, "vendor.approved", msg.Data["type"])
}

func TestFirebaseService_SendToTopic_Error(t *testing.T) {
	svc := &firebaseService{client: &recordingSender{err: errors.New("quota exceeded")}}

	err := svc.SendToTopic(context.Background(), "vendor-42", "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vendor-42")
}

func TestNew_WithoutCredentialsIsNoop(t *testing.T) {
	svc, err := New(context.Background(), &config.Config{}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.IsType(t, &noopService{}, svc)
	assert.NoError(t, svc.SendToTopic(context.Background(), "vendor-1", "t", "b", nil))
}

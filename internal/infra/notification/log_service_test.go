package notification

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func TestLogMessageSender(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogMessageSender(newBufferLogger(&buf))

	require.NoError(t, sender.SendEmail(context.Background(), "ana@example.com", "Activate", "code 123456"))
	require.NoError(t, sender.SendSMS(context.Background(), "+15550001", "code 654321"))

	out := buf.String()
	assert.Contains(t, out, "ana@example.com")
	assert.Contains(t, out, "code 123456")
	assert.Contains(t, out, "+15550001")
}

func TestLogNotificationService_Batch(t *testing.T) {
	var buf bytes.Buffer
	svc := NewLogNotificationService(newBufferLogger(&buf))

	ok, failed, invalid, err := svc.SendBatchNotification(context.Background(), []string{"token-aaaaaaaaaaaa", "b"}, "t", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, ok)
	assert.Zero(t, failed)
	assert.Empty(t, invalid)
	assert.NotContains(t, buf.String(), "token-aaaaaaaaaaaa")
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "short", maskToken("short"))
	assert.Equal(t, "abcdefgh...", maskToken("abcdefghijk"))
}

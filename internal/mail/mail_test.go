package mail

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPMailer_Compose(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "localhost", Port: 2525, From: "no-reply@ticketing.local"})

	gm := m.compose(Message{To: "alice@x.com", Subject: "Confirm Registration", Body: "click"})

	assert.Equal(t, []string{"no-reply@ticketing.local"}, gm.GetHeader("From"))
	assert.Equal(t, []string{"alice@x.com"}, gm.GetHeader("To"))
	assert.Equal(t, []string{"Confirm Registration"}, gm.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := gm.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "click")
}

func TestSMTPMailer_CancelledContext(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "localhost", Port: 2525})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, Message{To: "alice@x.com"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogMailer_Send(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := NewLogMailer(logger).Send(context.Background(), Message{
		To:      "alice@x.com",
		Subject: "Confirm Registration",
		Body:    "token=abc",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "to=alice@x.com"), out)
	assert.Contains(t, out, "token=abc")
}

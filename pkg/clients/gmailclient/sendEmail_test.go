package gmailclient

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	msg := BuildMessage(Email{
		From:     "camp@example.com",
		To:       []string{"a@example.com", "b@example.com"},
		Subject:  "Room assignments",
		HTMLBody: "<h1>Rooms</h1>",
	})

	headers, body, found := strings.Cut(msg, "\r\n\r\n")
	require.True(t, found)

	assert.Contains(t, headers, "From: camp@example.com\r\n")
	assert.Contains(t, headers, "To: a@example.com, b@example.com\r\n")
	assert.Contains(t, headers, "Subject: Room assignments\r\n")
	assert.Contains(t, headers, "Content-Type: text/html")
	assert.Equal(t, "<h1>Rooms</h1>", body)
}

func TestBuildMessage_EncodesNonASCIISubject(t *testing.T) {
	msg := BuildMessage(Email{
		To:      []string{"a@example.com"},
		Subject: "Chambres d'été",
	})

	assert.NotContains(t, msg, "From:")
	assert.Contains(t, msg, "Subject: =?utf-8?q?")
}

func TestSendEmail_NoRecipients(t *testing.T) {
	c := &Client{userID: "me"}

	err := c.SendEmail(context.Background(), Email{Subject: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recipients")
}

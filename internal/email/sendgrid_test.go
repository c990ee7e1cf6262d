package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSendgridMessage(t *testing.T) {
	msg := buildSendgridMessage(EmailData{
		To:       "invited@example.com",
		From:     "noreply@example.com",
		FromName: "OrgHub",
		Subject:  "You've been invited to an organization",
	}, "<p>hello</p>", "hello")

	assert.Equal(t, "OrgHub", msg.From.Name)
	assert.Equal(t, "noreply@example.com", msg.From.Address)
	assert.Equal(t, "You've been invited to an organization", msg.Subject)

	require.Len(t, msg.Personalizations, 1)
	require.Len(t, msg.Personalizations[0].To, 1)
	assert.Equal(t, "invited@example.com", msg.Personalizations[0].To[0].Address)

	// Plaintext part first, HTML second.
	require.Len(t, msg.Content, 2)
	assert.Equal(t, "text/plain", msg.Content[0].Type)
	assert.Equal(t, "hello", msg.Content[0].Value)
	assert.Equal(t, "text/html", msg.Content[1].Type)
	assert.Equal(t, "<p>hello</p>", msg.Content[1].Value)
}

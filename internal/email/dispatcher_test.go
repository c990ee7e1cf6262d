package email_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/openvolunteering/orghub/internal/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records deliveries. Safe for concurrent use so async dispatcher
// workers can hit it.
type fakeSender struct {
	mu   sync.Mutex
	sent []email.EmailData
	err  error
}

func (f *fakeSender) SendEmail(data email.EmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

func (f *fakeSender) delivered() []email.EmailData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]email.EmailData(nil), f.sent...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcherSync(t *testing.T) {
	sender := &fakeSender{}
	d := email.NewDispatcher(sender, discardLogger(), false, 0)

	d.Submit(email.Build(email.EventUserJoined, "user_joined", "member@example.com", "en", nil))

	sent := sender.delivered()
	require.Len(t, sent, 1)
	assert.Equal(t, "member@example.com", sent[0].To)
	assert.Equal(t, "user_joined", sent[0].TemplateName)
	assert.Equal(t, "You've joined an organization", sent[0].Subject)
}

func TestDispatcherSyncSwallowsFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("provider down")}
	d := email.NewDispatcher(sender, discardLogger(), false, 0)

	// Submit has no error return; a failed delivery must not panic or leak.
	d.Submit(email.Build(email.EventUserLeft, "user_left", "member@example.com", "en", nil))
	assert.Empty(t, sender.delivered())
}

func TestDispatcherAsync(t *testing.T) {
	sender := &fakeSender{}
	d := email.NewDispatcher(sender, discardLogger(), true, 4)

	for i := 0; i < 20; i++ {
		d.Submit(email.Build(
			email.EventUserInvited,
			"user_invited",
			fmt.Sprintf("user%d@example.com", i),
			"en",
			nil,
		))
	}
	d.Close()

	assert.Len(t, sender.delivered(), 20)
}

func TestDispatcherCloseIdempotent(t *testing.T) {
	sender := &fakeSender{}
	d := email.NewDispatcher(sender, discardLogger(), true, 2)

	d.Close()
	d.Close()
}

package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	kind      string
	to        string
	firstName string
}

type fakeMailer struct {
	sent []sentEmail
	err  error
}

func (m *fakeMailer) SendWelcomeEmail(to, firstName string) error {
	m.sent = append(m.sent, sentEmail{"welcome", to, firstName})
	return m.err
}

func (m *fakeMailer) SendAccountRemovedEmail(to, firstName string) error {
	m.sent = append(m.sent, sentEmail{"account_removed", to, firstName})
	return m.err
}

func newTestJobService(m Mailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: m, logger: &logger}
}

func TestNewTasks(t *testing.T) {
	welcome, err := NewWelcomeEmailTask("ada@example.com", "Ada")
	require.NoError(t, err)
	assert.Equal(t, TaskWelcome, welcome.Type())

	var wp WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(welcome.Payload(), &wp))
	assert.Equal(t, WelcomeEmailPayload{To: "ada@example.com", FirstName: "Ada"}, wp)

	removed, err := NewAccountRemovedEmailTask("ada@example.com", "Ada")
	require.NoError(t, err)
	assert.Equal(t, TaskAccountRemoved, removed.Type())
}

func TestMuxDispatchesEmailTasks(t *testing.T) {
	ctx := context.Background()
	mailer := &fakeMailer{}
	mux := newTestJobService(mailer).Mux()

	welcome, err := NewWelcomeEmailTask("ada@example.com", "Ada")
	require.NoError(t, err)
	removed, err := NewAccountRemovedEmailTask("bob@example.com", "Bob")
	require.NoError(t, err)

	require.NoError(t, mux.ProcessTask(ctx, welcome))
	require.NoError(t, mux.ProcessTask(ctx, removed))

	assert.Equal(t, []sentEmail{
		{"welcome", "ada@example.com", "Ada"},
		{"account_removed", "bob@example.com", "Bob"},
	}, mailer.sent)
}

func TestHandlerErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("send failure is returned for retry", func(t *testing.T) {
		svc := newTestJobService(&fakeMailer{err: errors.New("smtp down")})
		task, err := NewWelcomeEmailTask("ada@example.com", "Ada")
		require.NoError(t, err)

		assert.ErrorContains(t, svc.handleWelcomeEmailTask(ctx, task), "smtp down")
	})

	t.Run("bad payload", func(t *testing.T) {
		svc := newTestJobService(&fakeMailer{})
		task := asynq.NewTask(TaskAccountRemoved, []byte("{"))

		assert.Error(t, svc.handleAccountRemovedEmailTask(ctx, task))
	})

	t.Run("uninitialized handlers", func(t *testing.T) {
		svc := newTestJobService(nil)
		task, err := NewWelcomeEmailTask("ada@example.com", "Ada")
		require.NoError(t, err)

		assert.Error(t, svc.handleWelcomeEmailTask(ctx, task))
	})
}

package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskWelcome        = "email:welcome"
	TaskAccountRemoved = "email:account_removed"
)

type WelcomeEmailPayload struct {
	To        string `json:"to"`
	FirstName string `json:"first_name"`
}

// AccountRemovedEmailPayload carries the address of a profile that no longer
// exists, so the handler must not look it up.
type AccountRemovedEmailPayload struct {
	To        string `json:"to"`
	FirstName string `json:"first_name"`
}

// NewWelcomeEmailTask is sent when a profile is created.
func NewWelcomeEmailTask(to, firstName string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:        to,
		FirstName: firstName,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewAccountRemovedEmailTask is sent when a profile is deleted. It goes to
// the critical queue: the confirmation should arrive before the user retries
// signing in.
func NewAccountRemovedEmailTask(to, firstName string) (*asynq.Task, error) {
	payload, err := json.Marshal(AccountRemovedEmailPayload{
		To:        to,
		FirstName: firstName,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskAccountRemoved,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}

package notify

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Manojmaturi07/voteanalytics/models"
)

// Notifier receives poll lifecycle announcements.
type Notifier interface {
	PollCreated(poll models.Poll) error
}

// Dispatch announces asynchronously. Notification failure must never
// fail the operation that triggered it, so errors are only logged.
func Dispatch(n Notifier, poll models.Poll) {
	if n == nil {
		return
	}
	go func() {
		if err := n.PollCreated(poll); err != nil {
			slog.Error("poll notification failed", "poll_id", poll.ID, "error", err)
		}
	}()
}

// LogNotifier composes the announcement email and delivers it to the
// log. A real mail provider would slot in behind the same interface.
type LogNotifier struct{}

func (LogNotifier) PollCreated(poll models.Poll) error {
	subject := "New Poll: " + poll.Question

	var body strings.Builder
	fmt.Fprintf(&body, "A new poll is open for voting.\n\n%s\n\nOptions:\n", poll.Question)
	for _, opt := range poll.Options {
		fmt.Fprintf(&body, "  %d. %s\n", opt.ID, opt.Text)
	}
	fmt.Fprintf(&body, "\nVoting closes %s.\n", poll.Deadline.Format("January 2, 2006, 3:04 PM"))

	slog.Info("poll announcement",
		"poll_id", poll.ID,
		"subject", subject,
		"body_bytes", body.Len(),
	)
	return nil
}

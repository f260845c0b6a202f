package notify

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/stats"
)

// Sender delivers one desktop notification.
type Sender func(title, message string) error

// Desktop sends through the platform notification service.
func Desktop(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Remind sends the reminder only when nothing has been logged on now's
// local date. It reports whether a notification went out.
func Remind(send Sender, entries []mood.Entry, now time.Time, title, message string) (bool, error) {
	if stats.LoggedToday(entries, now) {
		return false, nil
	}
	if err := send(title, message); err != nil {
		return false, fmt.Errorf("sending reminder: %w", err)
	}
	return true, nil
}

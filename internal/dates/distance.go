package dates

import (
	"fmt"
	"time"
)

// Urgency buckets a due date's distance from today for display.
type Urgency int

const (
	UrgencyOverdue Urgency = iota
	UrgencyToday
	UrgencyImminent // tomorrow
	UrgencySoon     // within a week
	UrgencyLater
)

// Distance returns the whole-day distance from now's date to due (negative
// when overdue) and its urgency bucket.
func Distance(now, due time.Time) (int, Urgency) {
	days := int(Midnight(due).Sub(Midnight(now)).Hours() / 24)
	switch {
	case days < 0:
		return days, UrgencyOverdue
	case days == 0:
		return days, UrgencyToday
	case days == 1:
		return days, UrgencyImminent
	case days < 7:
		return days, UrgencySoon
	default:
		return days, UrgencyLater
	}
}

// DistanceLabel renders a short "N days left" / "N days over" annotation.
func DistanceLabel(now, due time.Time) string {
	days, u := Distance(now, due)
	switch {
	case u == UrgencyOverdue:
		return fmt.Sprintf("%d %s over", -days, dayWord(-days))
	case u == UrgencyToday:
		return "due today"
	default:
		return fmt.Sprintf("%d %s left", days, dayWord(days))
	}
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

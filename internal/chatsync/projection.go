package chatsync

import (
	"fmt"
	"sort"
	"time"

	"github.com/devfolio/chat-service/internal/model"
)

// Project orders messages for display: pinned first, then by creation time. Ties keep
// their input order.
func Project(msgs []model.Message) []model.Message {
	out := make([]model.Message, len(msgs))
	copy(out, msgs)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPinned != out[j].IsPinned {
			return out[i].IsPinned
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}

func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	seconds := int(diff.Seconds())
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case seconds < 60:
		return "just now"
	case minutes < 60:
		return plural(minutes, "minute")
	case hours < 24:
		return plural(hours, "hour")
	}

	yesterday := now.AddDate(0, 0, -1)
	if sameDay(t.In(now.Location()), yesterday) {
		return "yesterday"
	}

	switch {
	case days < 7:
		return plural(days, "day")
	case days < 30:
		return plural(days/7, "week")
	case days < 365:
		return plural(days/30, "month")
	default:
		return plural(days/365, "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

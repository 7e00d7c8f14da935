package root

import (
	"fmt"
	"strings"
	"time"
)

// deadlineLayouts are the accepted --due formats, most specific first.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDeadline accepts an absolute date/time or a relative duration
// ("36h", "30m"). Date-only input means end of that day.
func parseDeadline(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("deadline is required (--due)")
	}

	if d, err := time.ParseDuration(s); err == nil {
		return now.Add(d), nil
	}

	for _, layout := range deadlineLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			t = t.Add(24*time.Hour - time.Minute)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("cannot parse deadline %q (try 2006-01-02, 2006-01-02 15:04 or a duration like 36h)", s)
}

package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// DefaultCleanInterval is how often a long running session prunes history.
const DefaultCleanInterval = "1d"

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units         = map[string]time.Duration{
		"m": time.Minute, "min": time.Minute, "mins": time.Minute, "minute": time.Minute, "minutes": time.Minute,
		"h": time.Hour, "hr": time.Hour, "hrs": time.Hour, "hour": time.Hour, "hours": time.Hour,
		"d": day, "day": day, "days": day,
		"w": 7 * day, "wk": 7 * day, "wks": 7 * day, "week": 7 * day, "weeks": 7 * day,
	}
)

// ParseWindow parses a compact duration like "2w", "3d" or "1d12h" and
// returns it with its canonical label. Go duration strings ("36h") are
// accepted as well so config values can use either spelling.
func ParseWindow(input string) (time.Duration, string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0, "", fmt.Errorf("empty duration")
	}
	if d, err := time.ParseDuration(s); err == nil {
		if d <= 0 {
			return 0, "", fmt.Errorf("duration must be greater than zero")
		}
		return d, FormatWindow(d), nil
	}

	var total time.Duration
	for rest := s; rest != ""; {
		m := windowPattern.FindStringSubmatch(rest)
		if len(m) != 3 {
			return 0, "", fmt.Errorf("invalid duration segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid duration value %q: %w", m[1], err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported duration unit %q", m[2])
		}
		total += time.Duration(n) * unit
		rest = rest[len(m[0]):]
	}
	if total <= 0 {
		return 0, "", fmt.Errorf("duration must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d with w/d/h/m tokens, dropping seconds.
func FormatWindow(d time.Duration) string {
	if d < time.Minute {
		return "0m"
	}
	var b strings.Builder
	for _, u := range []struct {
		label string
		size  time.Duration
	}{{"w", 7 * day}, {"d", day}, {"h", time.Hour}, {"m", time.Minute}} {
		if n := d / u.size; n > 0 {
			fmt.Fprintf(&b, "%d%s", n, u.label)
			d -= n * u.size
		}
	}
	return b.String()
}

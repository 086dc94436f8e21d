package item

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp wraps time.Time with an ISO-8601 (RFC 3339) JSON encoding in UTC.
type Timestamp struct {
	time.Time
}

// ParseTime parses an RFC 3339 timestamp with optional fractional seconds.
func ParseTime(v string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, v)
}

// FormatTime renders v the way it is persisted.
func FormatTime(v time.Time) string {
	return v.UTC().Format(time.RFC3339Nano)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", FormatTime(t.Time))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	v, err := ParseTime(s)
	if err != nil {
		return err
	}
	t.Time = v
	return nil
}

func (t Timestamp) String() string {
	return FormatTime(t.Time)
}

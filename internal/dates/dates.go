// Package dates converts untrusted timestamp-shaped values into instants.
package dates

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// unixMillisThreshold separates unix seconds from unix milliseconds.
// Seconds stay below it until the year 33658.
const unixMillisThreshold = 1e12

// Normalize converts raw into an instant. It accepts time values, date
// strings, unix seconds or milliseconds and document-store timestamp maps
// ({"seconds", "nanoseconds"} or {"_seconds", "_nanoseconds"}).
// The second return value is false for missing, zero or malformed input.
func Normalize(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case nil, bool:
		return time.Time{}, false
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return valid(*v)
	case time.Time:
		return valid(v)
	case string:
		return fromString(v)
	case *string:
		if v == nil {
			return time.Time{}, false
		}
		return fromString(*v)
	case []byte:
		return fromString(string(v))
	case map[string]any:
		return fromTimestampMap(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return time.Time{}, false
			}
			n = int64(f)
		}
		return fromUnix(n)
	case float64:
		return fromUnix(int64(v))
	case float32:
		return fromUnix(int64(v))
	}

	if n, err := cast.ToInt64E(raw); err == nil {
		return fromUnix(n)
	}
	t, err := cast.ToTimeE(raw)
	if err != nil {
		return time.Time{}, false
	}
	return valid(t)
}

func fromString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if isDigits(s) {
		n, err := cast.ToInt64E(s)
		if err != nil {
			return time.Time{}, false
		}
		return fromUnix(n)
	}
	t, err := cast.ToTimeE(s)
	if err != nil {
		return time.Time{}, false
	}
	return valid(t)
}

func fromTimestampMap(m map[string]any) (time.Time, bool) {
	secRaw, ok := m["seconds"]
	if !ok {
		secRaw, ok = m["_seconds"]
	}
	if !ok {
		return time.Time{}, false
	}
	sec, err := cast.ToInt64E(secRaw)
	if err != nil {
		return time.Time{}, false
	}

	nsecRaw, ok := m["nanoseconds"]
	if !ok {
		nsecRaw = m["_nanoseconds"]
	}
	nsec, err := cast.ToInt64E(nsecRaw)
	if err != nil {
		nsec = 0
	}
	return valid(time.Unix(sec, nsec))
}

func fromUnix(n int64) (time.Time, bool) {
	if n <= 0 {
		return time.Time{}, false
	}
	if n >= unixMillisThreshold {
		return valid(time.UnixMilli(n))
	}
	return valid(time.Unix(n, 0))
}

func valid(t time.Time) (time.Time, bool) {
	if t.IsZero() || t.Unix() <= 0 {
		return time.Time{}, false
	}
	return t, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package store

import (
	"fmt"
	"time"
)

// sqliteTimeLayout is fixed-width so that text ordering in SQLite matches
// chronological ordering. Rows defaulted by CURRENT_TIMESTAMP carry whole
// seconds only, so they sort before every store row within the same second.
const sqliteTimeLayout = "2006-01-02 15:04:05.000000000"

// timestampLayouts are tried in order when a driver hands back text.
var timestampLayouts = []string{
	sqliteTimeLayout,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.RFC3339Nano,
}

func formatSQLiteTime(t time.Time) any {
	return t.UTC().Format(sqliteTimeLayout)
}

// parseTimestamp converts whatever the driver returned for the timestamp
// column into a UTC time. mattn/go-sqlite3 and pgx return time.Time,
// modernc.org/sqlite may return text.
func parseTimestamp(v any) (time.Time, error) {
	switch ts := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return ts.UTC(), nil
	case string:
		return parseTimestampText(ts)
	case []byte:
		return parseTimestampText(string(ts))
	case int64:
		return time.Unix(ts, 0).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
}

func parseTimestampText(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

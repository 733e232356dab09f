package db

import (
	"time"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

// Row value helpers. Column values arrive with backend-dependent Go types:
// the SQLite gateway yields strings for datetime columns, pgx yields
// time.Time; NULL arrives as nil from both.

var timeLayouts = []string{
	"2006-01-02 15:04:05.000000000",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
}

func rowString(r ports.Row, col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

// rowNullString distinguishes NULL from the empty string, for the
// left-joined display-name columns.
func rowNullString(r ports.Row, col string) *string {
	switch v := r[col].(type) {
	case string:
		return &v
	case []byte:
		s := string(v)
		return &s
	}
	return nil
}

func rowTime(r ports.Row, col string) time.Time {
	switch v := r[col].(type) {
	case time.Time:
		return v.UTC()
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC()
			}
		}
	}
	return time.Time{}
}

// nullable maps the empty string to NULL for optional columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

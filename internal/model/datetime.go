package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateOnly holds a DATE column as its "2006-01-02" text. With
// parseTime enabled the MySQL driver hands DATE values back as
// time.Time; scanning normalizes every shape to the form the pages
// submit, so a fetched trip compares equal to what was stored.
type DateOnly string

// Scan implements sql.Scanner.
func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = DateOnly(v.Format("2006-01-02"))
	case []byte:
		*d = DateOnly(v)
	case string:
		*d = DateOnly(v)
	default:
		return fmt.Errorf("scan date: unsupported type %T", value)
	}
	return nil
}

// Value implements driver.Valuer.
func (d DateOnly) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

// TimeOfDay holds a TIME column as "15:04" or "15:04:05" text. MySQL
// echoes a submitted "15:04" back as "15:04:05"; scanning strips the
// zero seconds so fetched values match what was submitted.
type TimeOfDay string

// Scan implements sql.Scanner.
func (t *TimeOfDay) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		s = v.Format("15:04:05")
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("scan time: unsupported type %T", value)
	}
	if len(s) == 8 && strings.HasSuffix(s, ":00") {
		s = s[:5]
	}
	*t = TimeOfDay(s)
	return nil
}

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	return string(t), nil
}

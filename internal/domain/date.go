package domain

import (
	"fmt"
	"time"
)

const dateFormat = "2006-01-02"

// Date is a calendar date that marshals as "YYYY-MM-DD" with no time or
// zone component, matching the registered_at wire format.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateFormat) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date: invalid JSON value %s", s)
	}
	t, err := time.Parse(dateFormat, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	d.Time = t
	return nil
}

// Scan implements sql.Scanner so pgx can decode DATE columns directly
// into a Date.
func (d *Date) Scan(v any) error {
	switch t := v.(type) {
	case time.Time:
		d.Time = t
		return nil
	case string:
		parsed, err := time.Parse(dateFormat, t)
		if err != nil {
			return err
		}
		d.Time = parsed
		return nil
	default:
		return fmt.Errorf("date: cannot scan %T", v)
	}
}

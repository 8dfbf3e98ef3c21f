package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is a calendar month.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewPeriod validates year and month. Out-of-range months are rejected, never clamped.
func NewPeriod(year, month int) (Period, error) {
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: year=%d month=%d", ErrInvalidPeriod, year, month)
	}
	return Period{Year: year, Month: month}, nil
}

// ParsePeriod parses textual year and month. Empty values fall back to the
// corresponding component of now; anything that is not an integer is rejected.
func ParsePeriod(year, month string, now time.Time) (Period, error) {
	y, m := now.Year(), int(now.Month())

	if s := strings.TrimSpace(year); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Period{}, fmt.Errorf("%w: year %q is not an integer", ErrInvalidPeriod, year)
		}
		y = v
	}
	if s := strings.TrimSpace(month); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Period{}, fmt.Errorf("%w: month %q is not an integer", ErrInvalidPeriod, month)
		}
		m = v
	}

	return NewPeriod(y, m)
}

// Validate checks p the same way NewPeriod does.
func (p Period) Validate() error {
	_, err := NewPeriod(p.Year, p.Month)
	return err
}

// Prev returns the month before p, rolling over to December of the previous year.
func (p Period) Prev() Period {
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Before reports whether p is earlier than other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

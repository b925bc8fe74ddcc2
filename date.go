package cali

import (
	"github.com/pkg/errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day in ISO-8601 form, e.g. 2024-03-17.
// Its lexical order is its chronological order.
type Date string

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", errors.Wrapf(ErrInvalidDate, "%q is not a YYYY-MM-DD date", s)
	}

	return DateOf(t), nil
}

func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}

	return DateOf(time.Now().In(loc))
}

func (d Date) String() string {
	return string(d)
}

func (d Date) Less(other Date) bool {
	return d < other
}

func (d Date) Time() time.Time {
	t, _ := time.Parse(DateLayout, string(d))
	return t
}

func byDate(a, b interface{}) bool {
	e1, e2 := a.(*DailyEntry), b.(*DailyEntry)
	return e1.Date.Less(e2.Date)
}

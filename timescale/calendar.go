package timescale

import (
	"fmt"
	"time"
)

// ----------------------------------------------------------------------------
// Calendar arithmetic
//
// All true calendar semantics (month lengths, leap years, week starts)
// live here. Everything else works on nominal unit lengths, see
// Granularity.Seconds.

// IsLeap reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days of month (1..12) in year.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		panic(fmt.Sprintf("timescale: month %d out of range", month))
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthDays[month]
}

// CalendarFields is the broken down representation of an instant.
// Month and Day are 1-based, Nanosecond is the offset within the second.
type CalendarFields struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Nanosecond           int
}

// FieldsOf returns the calendar fields of t in t's own location.
func FieldsOf(t time.Time) CalendarFields {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	return CalendarFields{
		Year: y, Month: int(m), Day: d,
		Hour: h, Minute: mi, Second: s,
		Nanosecond: t.Nanosecond(),
	}
}

// Time converts c back to an instant in loc.
func (c CalendarFields) Time(loc *time.Location) time.Time {
	return time.Date(c.Year, time.Month(c.Month), c.Day,
		c.Hour, c.Minute, c.Second, c.Nanosecond, loc)
}

// sundayEpoch is the day number of Sunday 1970-01-04.
const sundayEpoch = 3

// Truncate sets every field finer than g to its first value. Week
// truncation moves back to the preceding Sunday.
func (c CalendarFields) Truncate(g Granularity) CalendarFields {
	if g.mustValid() == Nanosecond {
		return c
	}
	c.Nanosecond -= c.Nanosecond % 1e6
	if g == Millisecond {
		return c
	}
	c.Nanosecond = 0
	if g == Second {
		return c
	}
	c.Second = 0
	if g == Minute {
		return c
	}
	c.Minute = 0
	if g == Hour {
		return c
	}
	c.Hour = 0
	if g == Day {
		return c
	}
	if g == Week {
		days := c.days()
		return c.withDays(days - floorMod(days-sundayEpoch, 7))
	}
	c.Day = 1
	if g == Month {
		return c
	}
	c.Month = 1
	return c
}

// Align rounds the field of granularity g down to a multiple of n.
// Day and month count from zero so that they stay valid; weeks are
// counted from Sunday 1970-01-04. c is expected to be truncated to g.
func (c CalendarFields) Align(g Granularity, n int) CalendarFields {
	if g.mustValid(); n <= 1 {
		return c
	}
	switch g {
	case Nanosecond:
		c.Nanosecond = c.Nanosecond / n * n
	case Millisecond:
		ms := c.Nanosecond / 1e6
		c.Nanosecond = ms/n*n*1e6 + c.Nanosecond%1e6
	case Second:
		c.Second = c.Second / n * n
	case Minute:
		c.Minute = c.Minute / n * n
	case Hour:
		c.Hour = c.Hour / n * n
	case Day:
		c.Day = (c.Day-1)/n*n + 1
	case Week:
		days := c.days()
		weeks := floorDiv(days-sundayEpoch, 7)
		c = c.withDays(days + (floorDiv(weeks, n)*n-weeks)*7)
	case Month:
		c.Month = (c.Month-1)/n*n + 1
	case Year:
		c.Year = floorDiv(c.Year, n) * n
	}
	return c
}

// Add advances c by n units of g. Adding months or years clamps the day
// to the length of the resulting month.
func (c CalendarFields) Add(g Granularity, n int) CalendarFields {
	switch g.mustValid() {
	case Nanosecond:
		c.Nanosecond += n
	case Millisecond:
		c.Nanosecond += n * 1e6
	case Second:
		c.Second += n
	case Minute:
		c.Minute += n
	case Hour:
		c.Hour += n
	case Day:
		c.Day += n
	case Week:
		c.Day += 7 * n
	case Month, Year:
		if g == Year {
			c.Year += n
		} else {
			c.Month += n
		}
		c.Year += floorDiv(c.Month-1, 12)
		c.Month = floorMod(c.Month-1, 12) + 1
		if dim := DaysInMonth(c.Year, c.Month); c.Day > dim {
			c.Day = dim
		}
		return c
	}
	return c.normalize()
}

// normalize carries overflowing fields into the next coarser one.
func (c CalendarFields) normalize() CalendarFields {
	carry := func(lo, hi *int, base int) {
		*hi += floorDiv(*lo, base)
		*lo = floorMod(*lo, base)
	}
	carry(&c.Nanosecond, &c.Second, 1e9)
	carry(&c.Second, &c.Minute, 60)
	carry(&c.Minute, &c.Hour, 60)
	carry(&c.Hour, &c.Day, 24)
	month := c.Month - 1
	carry(&month, &c.Year, 12)
	c.Month = month + 1
	return c.withDays(daysFromCivil(c.Year, c.Month, 1) + c.Day - 1)
}

func (c CalendarFields) days() int {
	return daysFromCivil(c.Year, c.Month, c.Day)
}

func (c CalendarFields) withDays(days int) CalendarFields {
	c.Year, c.Month, c.Day = civilFromDays(days)
	return c
}

// daysFromCivil returns the number of days since 1970-01-01.
func daysFromCivil(y, m, d int) int {
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int) (y, m, d int) {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	m = mp + 3
	if m > 12 {
		m -= 12
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

package timescale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LabelLayout is the time.Format layout of full precision labels.
// Labels of equal length sort lexicographically in chronological order.
const LabelLayout = "2006/01/02 15:04:05.000000000"

// Indices into DateFields. A precision p means that all fields up to and
// including p are significant.
const (
	YearPrecision = iota
	MonthPrecision
	DayPrecision
	HourPrecision
	MinutePrecision
	SecondPrecision
	MillisecondPrecision
	NanosecondPrecision
)

// ErrMalformedLabel is returned when a string is not a full precision label.
var ErrMalformedLabel = errors.New("malformed label")

// FormatLabel renders t as full precision label in t's location.
// Only years 0 to 9999 produce labels which ParseFields accepts.
func FormatLabel(t time.Time) string {
	return t.Format(LabelLayout)
}

// CreateLabels returns the full precision labels of timestamps.
func CreateLabels(timestamps []time.Time) []string {
	labels := make([]string, len(timestamps))
	for i, t := range timestamps {
		labels[i] = FormatLabel(t)
	}
	return labels
}

func isLabelSeparator(r rune) bool {
	return r == '/' || r == ':' || r == ' ' || r == '.'
}

// ParseFields splits a full precision label into year, month, day, hour,
// minute, second and nanosecond of second.
func ParseFields(label string) ([7]int, error) {
	var fields [7]int
	parts := strings.FieldsFunc(label, isLabelSeparator)
	if len(parts) != len(fields) {
		return fields, fmt.Errorf("timescale: %w %q: %d fields",
			ErrMalformedLabel, label, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return fields, fmt.Errorf("timescale: %w %q: %w", ErrMalformedLabel, label, err)
		}
		fields[i] = v
	}
	return fields, nil
}

// DateFields are the fields of a label with the fraction of the second
// split into milliseconds and the nanosecond remainder. It is indexed by
// the precision constants.
type DateFields [8]int

// ParseDate parses a full precision label into DateFields.
func ParseDate(label string) (DateFields, error) {
	f, err := ParseFields(label)
	if err != nil {
		return DateFields{}, err
	}
	return DateFields{
		f[0], f[1], f[2], f[3], f[4], f[5],
		f[6] / 1e6, f[6] % 1e6,
	}, nil
}

func mustParseDate(label string) DateFields {
	d, err := ParseDate(label)
	if err != nil {
		panic(err)
	}
	return d
}

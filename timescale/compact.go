package timescale

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ----------------------------------------------------------------------------
// Label compaction

// TrimLabels shortens full precision labels: fields shared with the
// previous label are dropped from the left and fields at their default
// value are dropped from the right, while every label keeps the finest
// field that changes anywhere in labels. The first label never drops
// anything on the left.
//
// TrimLabels panics if a label was not produced by CreateLabels.
func TrimLabels(labels []string) []string {
	if len(labels) <= 1 {
		return append([]string(nil), labels...)
	}

	required := GreatestChangingField(labels)
	trimmed := make([]string, len(labels))
	trimmed[0] = mustParseDate(labels[0]).CompactForm(-1, required)
	for i := 1; i < len(labels); i++ {
		common := GreatestRedundancePrecision(labels[i-1], labels[i])
		trimmed[i] = mustParseDate(labels[i]).CompactForm(common, required)
	}
	return trimmed
}

// GreatestChangingField returns the finest precision at which at least one
// label differs from the first one. If only the fraction of the second
// changes, MillisecondPrecision is returned when all labels are whole
// milliseconds and NanosecondPrecision otherwise. Identical labels and
// lists of fewer than two labels yield NanosecondPrecision.
func GreatestChangingField(labels []string) int {
	if len(labels) < 2 {
		return NanosecondPrecision
	}
	fields := make([]DateFields, len(labels))
	for i, l := range labels {
		fields[i] = mustParseDate(l)
	}

	changing := -1
	for p := NanosecondPrecision; p >= YearPrecision && changing == -1; p-- {
		for _, f := range fields[1:] {
			if f[p] != fields[0][p] {
				changing = p
				break
			}
		}
	}

	switch changing {
	case -1:
		return NanosecondPrecision
	case MillisecondPrecision, NanosecondPrecision:
		for _, f := range fields {
			if f[NanosecondPrecision] != 0 {
				return NanosecondPrecision
			}
		}
		return MillisecondPrecision
	}
	return changing
}

// GreatestRedundancePrecision returns the finest precision up to which
// prev and curr are identical, -1 if they differ already in the year.
func GreatestRedundancePrecision(prev, curr string) int {
	a, b := mustParseDate(prev), mustParseDate(curr)
	for p := range a {
		if a[p] != b[p] {
			return p - 1
		}
	}
	return len(a) - 1
}

var (
	fieldWidths   = DateFields{4, 2, 2, 2, 2, 2, 3, 6}
	fieldDefaults = DateFields{0, 1, 1, 0, 0, 0, 0, 0}
	separators    = [8]string{"/", "/", " ", ":", ":", ".", "", ""}
)

// CompactForm renders d without the fields which are redundant up to
// commonPrecision and without trailing default fields, but always down to
// requiredPrecision. If commonPrecision reaches requiredPrecision the label
// carries no information and the empty string is returned.
func (d DateFields) CompactForm(commonPrecision, requiredPrecision int) string {
	if commonPrecision >= requiredPrecision {
		return ""
	}

	shown := bitset.New(uint(len(d))).Complement()
	removeRedundantPrecision(shown, commonPrecision)
	d.maintainRequiredPrecision(shown, requiredPrecision)

	// A day without its month means nothing.
	if shown.Test(DayPrecision) && !shown.Test(MonthPrecision) {
		shown.Set(MonthPrecision)
	}
	if shown.Test(MonthPrecision) && !shown.Test(DayPrecision) && !shown.Test(YearPrecision) {
		if requiredPrecision >= DayPrecision {
			shown.Set(DayPrecision)
		} else {
			shown.Set(YearPrecision)
		}
	}
	if shown.Test(HourPrecision) && !shown.Test(MinutePrecision) {
		shown.Set(MinutePrecision)
	}

	return d.buildDateString(shown)
}

// removeRedundantPrecision hides the date fields up to redundant. Time
// fields are never hidden for redundancy: "09:15" alone could be read as
// hours and minutes or as minutes and seconds.
func removeRedundantPrecision(shown *bitset.BitSet, redundant int) {
	for p := YearPrecision; p <= DayPrecision && p <= redundant; p++ {
		shown.Clear(uint(p))
	}
}

// maintainRequiredPrecision hides trailing fields at their default value
// which are finer than required.
func (d DateFields) maintainRequiredPrecision(shown *bitset.BitSet, required int) {
	for p := NanosecondPrecision; p > YearPrecision; p-- {
		if d[p] != fieldDefaults[p] || required >= p {
			return
		}
		shown.Clear(uint(p))
	}
}

func (d DateFields) buildDateString(shown *bitset.BitSet) string {
	var b strings.Builder
	for p := range d {
		if !shown.Test(uint(p)) {
			continue
		}
		fmt.Fprintf(&b, "%0*d", fieldWidths[p], d[p])
		if p+1 < len(d) && shown.Test(uint(p+1)) {
			b.WriteString(separators[p])
		}
	}
	return b.String()
}

package timescale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var trimLabelsTests = []struct {
	name   string
	labels []string
	want   []string
}{
	{
		"hours",
		[]string{
			"2014/11/26 09:00:00.000000000",
			"2014/11/26 10:00:00.000000000",
			"2014/11/26 11:00:00.000000000",
		},
		[]string{"2014/11/26 09:00", "10:00", "11:00"},
	},
	{
		"minutes across midnight",
		[]string{
			"2014/11/26 23:30:00.000000000",
			"2014/11/27 00:00:00.000000000",
			"2014/11/27 00:30:00.000000000",
		},
		[]string{"2014/11/26 23:30", "11/27 00:00", "00:30"},
	},
	{
		"days across month",
		[]string{
			"2014/11/29 00:00:00.000000000",
			"2014/11/30 00:00:00.000000000",
			"2014/12/01 00:00:00.000000000",
			"2014/12/02 00:00:00.000000000",
		},
		[]string{"2014/11/29", "11/30", "12/01", "12/02"},
	},
	{
		"months across year",
		[]string{
			"2014/11/01 00:00:00.000000000",
			"2014/12/01 00:00:00.000000000",
			"2015/01/01 00:00:00.000000000",
			"2015/02/01 00:00:00.000000000",
		},
		[]string{"2014/11", "2014/12", "2015/01", "2015/02"},
	},
	{
		"years",
		[]string{
			"2010/01/01 00:00:00.000000000",
			"2015/01/01 00:00:00.000000000",
			"2020/01/01 00:00:00.000000000",
		},
		[]string{"2010", "2015", "2020"},
	},
	{
		"milliseconds",
		[]string{
			"2014/11/26 09:00:00.000000000",
			"2014/11/26 09:00:00.500000000",
			"2014/11/26 09:00:01.000000000",
		},
		[]string{"2014/11/26 09:00:00.000", "09:00:00.500", "09:00:01.000"},
	},
	{
		"nanoseconds",
		[]string{
			"2014/11/26 09:00:00.000000000",
			"2014/11/26 09:00:00.000000500",
		},
		[]string{"2014/11/26 09:00:00.000000000", "09:00:00.000000500"},
	},
	{
		"identical",
		[]string{
			"2014/11/26 09:00:00.000000000",
			"2014/11/26 09:00:00.000000000",
			"2014/11/26 09:00:00.000000000",
		},
		[]string{"2014/11/26 09:00:00.000000000", "", ""},
	},
	{
		"single",
		[]string{"2014/11/26 09:00:00.000000000"},
		[]string{"2014/11/26 09:00:00.000000000"},
	},
	{
		"empty",
		[]string{},
		[]string{},
	},
}

func TestTrimLabels(t *testing.T) {
	for _, tc := range trimLabelsTests {
		t.Run(tc.name, func(t *testing.T) {
			got := TrimLabels(tc.labels)
			assert.Len(t, got, len(tc.labels))
			for i := range tc.want {
				assert.Equal(t, tc.want[i], got[i], "label %d", i)
			}
		})
	}
}

func TestTrimLabelsKeepsChangingField(t *testing.T) {
	// The changing field (minutes) is kept even where it is zero.
	labels := []string{
		"2014/11/26 09:45:00.000000000",
		"2014/11/26 10:00:00.000000000",
		"2014/11/26 10:15:00.000000000",
	}
	got := TrimLabels(labels)
	for _, l := range got {
		assert.True(t, strings.Count(l, ":") == 1, "%q lacks minutes", l)
	}
}

func TestGreatestChangingField(t *testing.T) {
	assert.Equal(t, HourPrecision, GreatestChangingField(trimLabelsTests[0].labels))
	assert.Equal(t, MillisecondPrecision, GreatestChangingField(trimLabelsTests[5].labels))
	assert.Equal(t, NanosecondPrecision, GreatestChangingField(trimLabelsTests[6].labels))
	assert.Equal(t, NanosecondPrecision, GreatestChangingField(trimLabelsTests[7].labels))
	assert.Equal(t, NanosecondPrecision, GreatestChangingField(nil))
	assert.Equal(t, NanosecondPrecision, GreatestChangingField([]string{"2014/11/26 09:00:00.000000000"}))
}

func TestGreatestRedundancePrecision(t *testing.T) {
	a := "2014/11/26 09:00:00.000000000"
	assert.Equal(t, -1, GreatestRedundancePrecision(a, "2015/11/26 09:00:00.000000000"))
	assert.Equal(t, DayPrecision, GreatestRedundancePrecision(a, "2014/11/26 10:00:00.000000000"))
	assert.Equal(t, SecondPrecision, GreatestRedundancePrecision(a, "2014/11/26 09:00:00.001000000"))
	assert.Equal(t, MillisecondPrecision, GreatestRedundancePrecision(a, "2014/11/26 09:00:00.000000001"))
	assert.Equal(t, NanosecondPrecision, GreatestRedundancePrecision(a, a))
}

func TestCompactForm(t *testing.T) {
	d := DateFields{2014, 11, 26, 9, 0, 0, 0, 0}
	assert.Equal(t, "", d.CompactForm(HourPrecision, HourPrecision))
	assert.Equal(t, "2014/11/26 09:00", d.CompactForm(-1, HourPrecision))
	assert.Equal(t, "09:00:00", d.CompactForm(DayPrecision, SecondPrecision))
	assert.Equal(t, "2014/11/26 09:00:00.000000000", d.CompactForm(-1, NanosecondPrecision))

	// Month without day or year falls back to the year.
	m := DateFields{2014, 3, 1, 0, 0, 0, 0, 0}
	assert.Equal(t, "2014/03", m.CompactForm(YearPrecision, MonthPrecision))
}

func TestTrimLabelsMalformed(t *testing.T) {
	assert.Panics(t, func() { TrimLabels([]string{"2014/11/26", "yesterday"}) })
}

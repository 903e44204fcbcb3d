package timescale

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "2014/11/26 09:05:07.123456789",
		FormatLabel(utc(2014, 11, 26, 9, 5, 7, 123456789)))
	assert.Equal(t, "0987/01/02 00:00:00.000000000",
		FormatLabel(utc(987, 1, 2, 0, 0, 0, 0)))
	assert.Equal(t, "2014/11/26 09:05:07.000000000",
		FormatLabel(utc(2014, 11, 26, 9, 5, 7, 0)))
}

func TestParseFieldsRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		want := [7]int{
			rnd.Intn(10000), 1 + rnd.Intn(12), 1 + rnd.Intn(28),
			rnd.Intn(24), rnd.Intn(60), rnd.Intn(60), rnd.Intn(1e9),
		}
		ts := time.Date(want[0], time.Month(want[1]), want[2],
			want[3], want[4], want[5], want[6], time.UTC)
		got, err := ParseFields(FormatLabel(ts))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2014/11/26 09:05:07.123456789")
	require.NoError(t, err)
	assert.Equal(t, DateFields{2014, 11, 26, 9, 5, 7, 123, 456789}, d)
}

func TestParseMalformed(t *testing.T) {
	for _, label := range []string{
		"",
		"2014/11/26",
		"2014/11/26 09:05:xx.000000000",
		"2014/11/26 09:05:07.000000000 12",
	} {
		_, err := ParseFields(label)
		assert.ErrorIs(t, err, ErrMalformedLabel, "label %q", label)
	}
}

func TestCreateLabels(t *testing.T) {
	assert.Empty(t, CreateLabels(nil))

	rnd := rand.New(rand.NewSource(3))
	times := make([]time.Time, 50)
	for i := range times {
		times[i] = utc(1990, 1, 1, 0, 0, 0, 0).Add(time.Duration(rnd.Int63()))
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	labels := CreateLabels(times)
	require.Len(t, labels, len(times))
	assert.True(t, sort.StringsAreSorted(labels))
}

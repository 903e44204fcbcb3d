package axis

import (
	"log"
	"strconv"
	"sync"
)

var debug = false

func debugf(format string, args ...interface{}) {
	if !debug {
		return
	}
	log.Printf("axis: "+format, args...)
}

// fixedFormats caches the fixed point label functions by number of
// fraction digits. It is filled lazily and safe for concurrent use.
var fixedFormats sync.Map // map[int]func(float64) string

// fixedFormat returns a function formatting numbers in fixed point
// notation with exactly digits fraction digits.
func fixedFormat(digits int) func(float64) string {
	if f, ok := fixedFormats.Load(digits); ok {
		return f.(func(float64) string)
	}
	f := func(x float64) string {
		return strconv.FormatFloat(x, 'f', digits, 64)
	}
	actual, _ := fixedFormats.LoadOrStore(digits, f)
	return actual.(func(float64) string)
}

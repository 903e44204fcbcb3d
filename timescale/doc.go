// Package timescale computes reference instants and their labels for
// time axes.
//
// A TimePeriod such as "15 minute" or "2 month" determines where the
// references of a TimeInterval lie: the start of the interval is rounded
// down to a period boundary using true calendar arithmetic, then the
// period is added until the end of the interval is passed. The nominal
// unit lengths used by ToTimePeriod, StepUp and StepDown are only used to
// classify durations.
//
// Labels
//
// Every reference is first rendered at full precision, e.g.
//   2014/11/26 09:30:00.000000000
// and TrimLabels then removes what is redundant between neighbouring
// labels and trailing default fields:
//   2014/11/26 09:30, 10:00, 10:30
package timescale

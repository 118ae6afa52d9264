package analysis

import (
	"time"

	"thermolog.xyz/temperature-analytics-service/pkg/common"
)

// DailyAggregate is one calendar-day row of the correlation dataset: how
// often and how long the zone heated, next to the mean cross-device
// difference observed that day.
type DailyAggregate struct {
	Date           string
	CycleCount     int
	TotalDuration  time.Duration
	MeanDifference float64
	SampleCount    int
}

// DifferenceFunc reduces one synchronized sample to a scalar difference
// metric. The second return reports whether the sample carries the devices
// the metric needs.
type DifferenceFunc func(SynchronizedSample) (float64, bool)

// DeviceDifference builds the standard metric: value of device a minus value
// of device b (room minus intake for the ventilation proxy).
func DeviceDifference(a, b string) DifferenceFunc {
	return func(s SynchronizedSample) (float64, bool) {
		va, okA := s.Values[a]
		vb, okB := s.Values[b]
		if !okA || !okB {
			return 0, false
		}
		return va - vb, true
	}
}

// AggregateDaily reduces detected cycles and synchronized samples to one row
// per calendar date. A cycle belongs entirely to the date it STARTED on,
// even when it ends after midnight. The output spans the full inclusive
// range from the first to the last observed date with explicit zero rows, so
// downstream correlation is never misleadingly sparse.
func AggregateDaily(cycles []HeatingCycle, samples []SynchronizedSample, diff DifferenceFunc) []DailyAggregate {
	counts := map[string]int{}
	durations := map[string]time.Duration{}
	for _, c := range cycles {
		key := DateKey(c.Start)
		counts[key]++
		durations[key] += c.Duration
	}

	diffSums := map[string]float64{}
	diffCounts := map[string]int{}
	if diff != nil {
		for _, s := range samples {
			value, ok := diff(s)
			if !ok {
				continue
			}
			key := DateKey(s.Timestamp)
			diffSums[key] += value
			diffCounts[key]++
		}
	}

	first, last, any := observedDateRange(cycles, samples)
	if !any {
		return []DailyAggregate{}
	}

	aggregates := []DailyAggregate{}
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := DateKey(day)
		row := DailyAggregate{
			Date:          key,
			CycleCount:    counts[key],
			TotalDuration: durations[key],
			SampleCount:   diffCounts[key],
		}
		if row.SampleCount > 0 {
			row.MeanDifference = diffSums[key] / float64(row.SampleCount)
		}
		aggregates = append(aggregates, row)
	}

	return aggregates
}

func observedDateRange(cycles []HeatingCycle, samples []SynchronizedSample) (first, last time.Time, any bool) {
	observe := func(t time.Time) {
		day, err := time.Parse(common.DateLayout, DateKey(t))
		if err != nil {
			return
		}
		if !any || day.Before(first) {
			first = day
		}
		if !any || day.After(last) {
			last = day
		}
		any = true
	}

	for _, c := range cycles {
		observe(c.Start)
	}
	for _, s := range samples {
		observe(s.Timestamp)
	}
	return first, last, any
}

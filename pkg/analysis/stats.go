package analysis

import "math"

// DifferenceStats summarizes the per-sample difference metric over a whole
// synchronized series.
type DifferenceStats struct {
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
	Range float64
	Count int
}

// SummarizeDifferences computes mean, population standard deviation and the
// value range of diff over the samples. Samples the metric cannot be applied
// to are skipped.
func SummarizeDifferences(samples []SynchronizedSample, diff DifferenceFunc) DifferenceStats {
	values := []float64{}
	for _, s := range samples {
		if v, ok := diff(s); ok {
			values = append(values, v)
		}
	}

	if len(values) == 0 {
		return DifferenceStats{}
	}

	stats := DifferenceStats{
		Min:   values[0],
		Max:   values[0],
		Count: len(values),
	}

	sum := 0.0
	for _, v := range values {
		sum += v
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
	}
	stats.Mean = sum / float64(len(values))
	stats.Range = stats.Max - stats.Min

	variance := 0.0
	for _, v := range values {
		d := v - stats.Mean
		variance += d * d
	}
	stats.Std = math.Sqrt(variance / float64(len(values)))

	return stats
}

package analysis

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"thermolog.xyz/temperature-analytics-service/pkg/common"
)

// SynchronizedSample is one cross-device instant: the most recent reading of
// every required device inside one tolerance window. Partial windows are
// discarded, never padded with fabricated values.
type SynchronizedSample struct {
	Timestamp time.Time
	Values    map[string]float64
}

type taggedReading struct {
	device string
	r      Reading
}

// SynchronizeDevices aligns independently-sampled device streams into one
// timeline. Windows are anchored at their first reading and absorb
// subsequent readings within tolerance of that anchor; inside a window the
// most recent reading per device wins. Only windows covered by every
// required device yield a sample; its timestamp is the midpoint of the
// earliest and latest readings actually kept.
func SynchronizeDevices(readingsByDevice map[string][]Reading, required []string, tolerance time.Duration) ([]SynchronizedSample, error) {
	if tolerance <= 0 {
		return nil, fmt.Errorf("%w: tolerance=%v", ErrNonPositiveDuration, tolerance)
	}

	merged := []taggedReading{}
	for _, device := range required {
		readings, ok := readingsByDevice[device]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingDevice, device)
		}
		if err := checkSorted(device, readings); err != nil {
			return nil, err
		}
		for _, r := range readings {
			merged = append(merged, taggedReading{device: device, r: r})
		}
	}

	logger := common.GetLoggerWith(
		common.LoggerNameAnalysisCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySync),
	)

	if len(merged) == 0 {
		return []SynchronizedSample{}, nil
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].r.Timestamp.Before(merged[j].r.Timestamp)
	})

	samples := []SynchronizedSample{}
	window := []taggedReading{}
	windowStart := merged[0].r.Timestamp

	for _, tr := range merged {
		if tr.r.Timestamp.Sub(windowStart) <= tolerance {
			window = append(window, tr)
			continue
		}

		if sample, ok := closeWindow(window, required); ok {
			samples = append(samples, sample)
		}

		window = []taggedReading{tr}
		windowStart = tr.r.Timestamp
	}

	if sample, ok := closeWindow(window, required); ok {
		samples = append(samples, sample)
	}

	logger.Info("Synchronized device streams",
		zap.Int("devices", len(required)),
		zap.Int("merged_readings", len(merged)),
		zap.Int("samples", len(samples)))

	return samples, nil
}

// closeWindow reduces one tolerance window to a sample, or reports false when
// at least one required device never reported inside it.
func closeWindow(window []taggedReading, required []string) (SynchronizedSample, bool) {
	latest := map[string]Reading{}
	for _, tr := range window {
		if kept, ok := latest[tr.device]; !ok || tr.r.Timestamp.After(kept.Timestamp) {
			latest[tr.device] = tr.r
		}
	}

	for _, device := range required {
		if _, ok := latest[device]; !ok {
			return SynchronizedSample{}, false
		}
	}

	var earliest, last time.Time
	values := make(map[string]float64, len(required))
	for _, device := range required {
		kept := latest[device]
		values[device] = kept.Temperature
		if earliest.IsZero() || kept.Timestamp.Before(earliest) {
			earliest = kept.Timestamp
		}
		if kept.Timestamp.After(last) {
			last = kept.Timestamp
		}
	}

	return SynchronizedSample{
		Timestamp: earliest.Add(last.Sub(earliest) / 2),
		Values:    values,
	}, true
}

package analysis

import (
	"errors"
	"fmt"
	"time"

	"thermolog.xyz/temperature-analytics-service/pkg/common"
)

var (
	// ErrNonPositiveDuration rejects degenerate duration parameters before
	// any processing starts.
	ErrNonPositiveDuration = errors.New("duration parameter must be positive")

	// ErrUnsortedReadings signals an upstream contract breach: the reading
	// store must hand over ascending, deduplicated sequences.
	ErrUnsortedReadings = errors.New("readings not in ascending timestamp order")

	// ErrMissingDevice carries the identifier of a required device that is
	// absent from the dataset.
	ErrMissingDevice = errors.New("required device not found in dataset")
)

// Reading is one temperature sample of a single device. All core operations
// consume readings in ascending timestamp order and never mutate them.
type Reading struct {
	Timestamp   time.Time
	Temperature float64
}

// DateKey is the calendar-day bucket of a timestamp, as a local wall-clock
// date string. No timezone arithmetic happens anywhere in the core.
func DateKey(t time.Time) string {
	return t.Format(common.DateLayout)
}

func checkSorted(deviceID string, readings []Reading) error {
	for i := 1; i < len(readings); i++ {
		if readings[i].Timestamp.Before(readings[i-1].Timestamp) {
			return fmt.Errorf("%w: device %s at index %d", ErrUnsortedReadings, deviceID, i)
		}
	}
	return nil
}

// DailyBaselines computes the minimum temperature recorded on each calendar
// day. Days without readings simply have no entry.
func DailyBaselines(readings []Reading) map[string]float64 {
	baselines := make(map[string]float64)
	for _, r := range readings {
		key := DateKey(r.Timestamp)
		if min, ok := baselines[key]; !ok || r.Temperature < min {
			baselines[key] = r.Temperature
		}
	}
	return baselines
}

package analysis

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"thermolog.xyz/temperature-analytics-service/pkg/common"
)

// ActiveInterval is a maximal span during which a device's readings are
// spaced no more than maxGap apart. ExpectedRecords is an estimate derived
// from the nominal sampling period, not ground truth, since devices keep
// their own native cadence.
type ActiveInterval struct {
	DeviceID        string
	Start           time.Time
	End             time.Time
	RecordCount     int
	ExpectedRecords int
	Completeness    float64
}

// Duration of the interval; zero for a single-reading interval.
func (ai ActiveInterval) Duration() time.Duration {
	return ai.End.Sub(ai.Start)
}

// SegmentActiveIntervals walks one device's sorted readings and splits them
// into contiguous active intervals wherever the silence between consecutive
// readings exceeds maxGap. Every reading lands in exactly one interval and
// intervals never overlap. A device with no readings yields an empty list.
func SegmentActiveIntervals(deviceID string, readings []Reading, expectedInterval, maxGap time.Duration) ([]ActiveInterval, error) {
	if expectedInterval <= 0 {
		return nil, fmt.Errorf("%w: expected_interval=%v", ErrNonPositiveDuration, expectedInterval)
	}
	if maxGap <= 0 {
		return nil, fmt.Errorf("%w: max_gap=%v", ErrNonPositiveDuration, maxGap)
	}
	if err := checkSorted(deviceID, readings); err != nil {
		return nil, err
	}

	logger := common.GetLoggerWith(
		common.LoggerNameAnalysisCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryInterval),
	)

	if len(readings) == 0 {
		return []ActiveInterval{}, nil
	}

	intervals := []ActiveInterval{}
	start := readings[0].Timestamp
	end := readings[0].Timestamp
	count := 1

	flush := func() {
		intervals = append(intervals, finishInterval(deviceID, start, end, count, expectedInterval))
	}

	for i := 1; i < len(readings); i++ {
		gap := readings[i].Timestamp.Sub(readings[i-1].Timestamp)
		if gap <= maxGap {
			end = readings[i].Timestamp
			count++
			continue
		}
		flush()
		start = readings[i].Timestamp
		end = readings[i].Timestamp
		count = 1
	}
	flush()

	logger.Info("Segmented active intervals",
		zap.String("device", deviceID),
		zap.Int("readings", len(readings)),
		zap.Int("intervals", len(intervals)))

	return intervals, nil
}

func finishInterval(deviceID string, start, end time.Time, count int, expectedInterval time.Duration) ActiveInterval {
	expected := int(end.Sub(start)/expectedInterval) + 1
	denominator := expected
	if denominator < 1 {
		denominator = 1
	}
	return ActiveInterval{
		DeviceID:        deviceID,
		Start:           start,
		End:             end,
		RecordCount:     count,
		ExpectedRecords: expected,
		Completeness:    float64(count) / float64(denominator),
	}
}

package analysis

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"thermolog.xyz/temperature-analytics-service/pkg/common"
)

// HeatingCycle is one contiguous episode where a zone's temperature rose
// from its daily baseline and later fell back from its local peak.
type HeatingCycle struct {
	DeviceID       string
	Start          time.Time
	End            time.Time
	MaxTemperature float64
	Duration       time.Duration
}

// Params tune cycle detection. The start threshold is relative to the day's
// minimum temperature so seasonal baseline drift does not produce false
// positives in winter or false negatives in summer; the end threshold is
// relative to the cycle's own running maximum so cycles that only partially
// heat still terminate.
type Params struct {
	RiseAboveMin      float64       // degrees above the daily minimum that starts a cycle
	DropBelowCycleMax float64       // degrees relative to the cycle max that ends it (negative)
	MinGap            time.Duration // idle gaps at or below this merge adjacent cycles
}

func DefaultParams() Params {
	return Params{
		RiseAboveMin:      5.0,
		DropBelowCycleMax: -1.0,
		MinGap:            15 * time.Minute,
	}
}

// cycleState is the explicit finite-state value threaded through the fold
// over the reading sequence: either idle, or heating with a known start and
// running maximum.
type cycleState struct {
	heating bool
	start   time.Time
	maxTemp float64
}

// step advances the state machine by one reading and returns the emitted
// cycle, if this reading closed one. A day without a computable baseline can
// never start a cycle, but an already-running cycle still tracks its maximum
// and may end on such a day.
func (s cycleState) step(deviceID string, r Reading, baseline float64, haveBaseline bool, p Params) (cycleState, *HeatingCycle) {
	if !s.heating {
		if !haveBaseline {
			return s, nil
		}
		if r.Temperature >= baseline+p.RiseAboveMin {
			return cycleState{heating: true, start: r.Timestamp, maxTemp: r.Temperature}, nil
		}
		return s, nil
	}

	if r.Temperature > s.maxTemp {
		s.maxTemp = r.Temperature
	}

	if r.Temperature <= s.maxTemp+p.DropBelowCycleMax {
		cycle := &HeatingCycle{
			DeviceID:       deviceID,
			Start:          s.start,
			End:            r.Timestamp,
			MaxTemperature: s.maxTemp,
			Duration:       r.Timestamp.Sub(s.start),
		}
		return cycleState{}, cycle
	}

	return s, nil
}

// DetectHeatingCycles runs the two-threshold state machine over a zone
// device's sorted readings and merges cycles separated by gaps of at most
// p.MinGap. A zone with no readings produces an empty cycle list.
func DetectHeatingCycles(deviceID string, readings []Reading, p Params) ([]HeatingCycle, error) {
	if p.MinGap <= 0 {
		return nil, fmt.Errorf("%w: min_gap=%v", ErrNonPositiveDuration, p.MinGap)
	}
	if err := checkSorted(deviceID, readings); err != nil {
		return nil, err
	}

	logger := common.GetLoggerWith(
		common.LoggerNameAnalysisCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryCycle),
	)

	if len(readings) == 0 {
		return []HeatingCycle{}, nil
	}

	baselines := DailyBaselines(readings)

	raw := []HeatingCycle{}
	state := cycleState{}
	for _, r := range readings {
		baseline, ok := baselines[DateKey(r.Timestamp)]

		var emitted *HeatingCycle
		state, emitted = state.step(deviceID, r, baseline, ok, p)
		if emitted != nil {
			raw = append(raw, *emitted)
		}
	}

	// stream ended mid-cycle: close at the last available timestamp instead
	// of silently losing the open cycle
	if state.heating {
		last := readings[len(readings)-1].Timestamp
		raw = append(raw, HeatingCycle{
			DeviceID:       deviceID,
			Start:          state.start,
			End:            last,
			MaxTemperature: state.maxTemp,
			Duration:       last.Sub(state.start),
		})
	}

	merged := MergeCycles(raw, p.MinGap)

	logger.Info("Detected heating cycles",
		zap.String("device", deviceID),
		zap.Int("readings", len(readings)),
		zap.Int("raw_cycles", len(raw)),
		zap.Int("merged_cycles", len(merged)))

	return merged, nil
}

// MergeCycles collapses cycles separated by idle gaps of at most minGap into
// single logical cycles, reflecting short off/on thermostat chatter. Merging
// is transitive and idempotent.
func MergeCycles(cycles []HeatingCycle, minGap time.Duration) []HeatingCycle {
	if len(cycles) == 0 {
		return []HeatingCycle{}
	}

	merged := []HeatingCycle{}
	current := cycles[0]

	for i := 1; i < len(cycles); i++ {
		next := cycles[i]
		gap := next.Start.Sub(current.End)

		if gap <= minGap {
			current.End = next.End
			if next.MaxTemperature > current.MaxTemperature {
				current.MaxTemperature = next.MaxTemperature
			}
			current.Duration = current.End.Sub(current.Start)
			continue
		}

		merged = append(merged, current)
		current = next
	}

	merged = append(merged, current)
	return merged
}

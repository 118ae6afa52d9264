package analysis

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thermolog.xyz/temperature-analytics-service/pkg/common"
	_ "thermolog.xyz/temperature-analytics-service/pkg/testing"
)

func TestDailyBaselines(t *testing.T) {
	readings := []Reading{
		{Timestamp: testBase, Temperature: 19.5},
		{Timestamp: testBase.Add(time.Hour), Temperature: 18.0},
		{Timestamp: testBase.Add(2 * time.Hour), Temperature: 22.0},
		{Timestamp: testBase.AddDate(0, 0, 1), Temperature: 17.0},
	}

	baselines := DailyBaselines(readings)
	require.Len(t, baselines, 2)
	assert.Equal(t, 18.0, baselines["2024-01-01"])
	assert.Equal(t, 17.0, baselines["2024-01-02"])
}

func TestDetectHeatingCycles_SingleCycle(t *testing.T) {
	common.SetTestLoggerNop()

	// The daily minimum settles at 20, the zone reaches the +5 start
	// threshold at T, peaks at +8 at T+20min, and falls back below peak-1
	// at T+35min.
	readings := []Reading{
		{Timestamp: testBase.Add(-time.Hour), Temperature: 20.0}, // establishes daily min
		{Timestamp: testBase, Temperature: 25.0},                 // start: 20 + 5
		{Timestamp: testBase.Add(20 * time.Minute), Temperature: 28.0},
		{Timestamp: testBase.Add(35 * time.Minute), Temperature: 27.0}, // end: peak - 1
	}

	cycles, err := DetectHeatingCycles(uuid.NewString(), readings, DefaultParams())
	require.NoError(t, err)
	require.Len(t, cycles, 1)

	assert.Equal(t, testBase, cycles[0].Start)
	assert.Equal(t, testBase.Add(35*time.Minute), cycles[0].End)
	assert.Equal(t, 28.0, cycles[0].MaxTemperature)
	assert.Equal(t, 35*time.Minute, cycles[0].Duration)
}

func TestDetectHeatingCycles_OpenCycleClosesAtStreamEnd(t *testing.T) {
	common.SetTestLoggerNop()

	readings := []Reading{
		{Timestamp: testBase.Add(-time.Hour), Temperature: 20.0},
		{Timestamp: testBase, Temperature: 26.0},
		{Timestamp: testBase.Add(10 * time.Minute), Temperature: 29.0},
		// still rising, stream just stops
	}

	cycles, err := DetectHeatingCycles(uuid.NewString(), readings, DefaultParams())
	require.NoError(t, err)
	require.Len(t, cycles, 1)

	assert.Equal(t, testBase, cycles[0].Start)
	assert.Equal(t, testBase.Add(10*time.Minute), cycles[0].End)
	assert.Equal(t, 29.0, cycles[0].MaxTemperature)
}

func TestDetectHeatingCycles_MergesShortGaps(t *testing.T) {
	common.SetTestLoggerNop()

	// two raw cycles separated by a 10 minute gap, below the 15 minute
	// merge threshold, become one logical episode
	readings := []Reading{
		{Timestamp: testBase.Add(-time.Hour), Temperature: 20.0},
		{Timestamp: testBase, Temperature: 26.0},
		{Timestamp: testBase.Add(10 * time.Minute), Temperature: 28.0},
		{Timestamp: testBase.Add(20 * time.Minute), Temperature: 26.5}, // ends first cycle
		{Timestamp: testBase.Add(30 * time.Minute), Temperature: 27.0}, // restarts within 10min
		{Timestamp: testBase.Add(40 * time.Minute), Temperature: 29.0},
		{Timestamp: testBase.Add(50 * time.Minute), Temperature: 27.5}, // ends second cycle
	}

	cycles, err := DetectHeatingCycles(uuid.NewString(), readings, DefaultParams())
	require.NoError(t, err)
	require.Len(t, cycles, 1)

	assert.Equal(t, testBase, cycles[0].Start)
	assert.Equal(t, testBase.Add(50*time.Minute), cycles[0].End)
	assert.Equal(t, 29.0, cycles[0].MaxTemperature)
	assert.Equal(t, 50*time.Minute, cycles[0].Duration)
}

func TestDetectHeatingCycles_OrderingInvariant(t *testing.T) {
	common.SetTestLoggerNop()

	// three heat spikes over one day with comfortable idle gaps
	readings := []Reading{}
	at := func(min int, temp float64) {
		readings = append(readings, Reading{Timestamp: testBase.Add(time.Duration(min) * time.Minute), Temperature: temp})
	}
	at(-120, 20.0)
	for _, startMin := range []int{0, 120, 240} {
		at(startMin, 26.0)
		at(startMin+10, 30.0)
		at(startMin+20, 28.5)
	}

	cycles, err := DetectHeatingCycles(uuid.NewString(), readings, DefaultParams())
	require.NoError(t, err)
	require.Len(t, cycles, 3)

	for i, c := range cycles {
		assert.False(t, c.End.Before(c.Start))
		assert.GreaterOrEqual(t, c.MaxTemperature, 26.0)
		if i > 0 {
			assert.True(t, cycles[i-1].End.Before(c.Start))
		}
	}
}

func TestDetectHeatingCycles_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	deviceID := uuid.NewString()

	cycles, err := DetectHeatingCycles(deviceID, []Reading{}, DefaultParams())
	require.NoError(t, err)
	assert.Empty(t, cycles)

	p := DefaultParams()
	p.MinGap = 0
	_, err = DetectHeatingCycles(deviceID, []Reading{}, p)
	require.ErrorIs(t, err, ErrNonPositiveDuration)

	unsorted := []Reading{
		{Timestamp: testBase.Add(time.Minute), Temperature: 20},
		{Timestamp: testBase, Temperature: 20},
	}
	_, err = DetectHeatingCycles(deviceID, unsorted, DefaultParams())
	require.ErrorIs(t, err, ErrUnsortedReadings)
}

func TestCycleState_StepSkipsStartWithoutBaseline(t *testing.T) {
	p := DefaultParams()
	r := Reading{Timestamp: testBase, Temperature: 40.0}

	// idle with no baseline for the day: no start, whatever the reading
	state, emitted := cycleState{}.step("z1", r, 0, false, p)
	assert.False(t, state.heating)
	assert.Nil(t, emitted)

	// already heating: the running maximum still updates and the cycle can
	// even end on a baseline-less day
	heating := cycleState{heating: true, start: testBase.Add(-time.Hour), maxTemp: 30.0}
	state, emitted = heating.step("z1", r, 0, false, p)
	assert.True(t, state.heating)
	assert.Equal(t, 40.0, state.maxTemp)
	assert.Nil(t, emitted)

	drop := Reading{Timestamp: testBase.Add(time.Minute), Temperature: 38.0}
	state, emitted = state.step("z1", drop, 0, false, p)
	assert.False(t, state.heating)
	require.NotNil(t, emitted)
	assert.Equal(t, 40.0, emitted.MaxTemperature)
}

func TestMergeCycles_Transitive(t *testing.T) {
	mk := func(startMin, endMin int, max float64) HeatingCycle {
		return HeatingCycle{
			DeviceID:       "z1",
			Start:          testBase.Add(time.Duration(startMin) * time.Minute),
			End:            testBase.Add(time.Duration(endMin) * time.Minute),
			MaxTemperature: max,
			Duration:       time.Duration(endMin-startMin) * time.Minute,
		}
	}

	// two small gaps in a row collapse three cycles into one
	cycles := []HeatingCycle{mk(0, 30, 28), mk(40, 60, 30), mk(70, 90, 29)}
	merged := MergeCycles(cycles, 15*time.Minute)
	require.Len(t, merged, 1)
	assert.Equal(t, testBase, merged[0].Start)
	assert.Equal(t, testBase.Add(90*time.Minute), merged[0].End)
	assert.Equal(t, 30.0, merged[0].MaxTemperature)
	assert.Equal(t, 90*time.Minute, merged[0].Duration)
}

func TestMergeCycles_Idempotent(t *testing.T) {
	mk := func(startMin, endMin int, max float64) HeatingCycle {
		return HeatingCycle{
			Start:          testBase.Add(time.Duration(startMin) * time.Minute),
			End:            testBase.Add(time.Duration(endMin) * time.Minute),
			MaxTemperature: max,
			Duration:       time.Duration(endMin-startMin) * time.Minute,
		}
	}

	cycles := []HeatingCycle{mk(0, 30, 28), mk(40, 60, 30), mk(120, 150, 27)}
	once := MergeCycles(cycles, 15*time.Minute)
	twice := MergeCycles(once, 15*time.Minute)
	assert.Equal(t, once, twice)

	assert.Empty(t, MergeCycles(nil, 15*time.Minute))
}

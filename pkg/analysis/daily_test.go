package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "thermolog.xyz/temperature-analytics-service/pkg/testing"
)

func TestAggregateDaily_FillsDateGapsWithZeros(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)
	day4 := time.Date(2024, 1, 4, 7, 0, 0, 0, time.UTC)

	cycles := []HeatingCycle{
		{DeviceID: "z1", Start: day1, End: day1.Add(time.Hour), MaxTemperature: 28, Duration: time.Hour},
		{DeviceID: "z1", Start: day4, End: day4.Add(30 * time.Minute), MaxTemperature: 27, Duration: 30 * time.Minute},
	}

	rows := AggregateDaily(cycles, nil, nil)
	require.Len(t, rows, 4)

	assert.Equal(t, "2024-01-01", rows[0].Date)
	assert.Equal(t, 1, rows[0].CycleCount)
	assert.Equal(t, time.Hour, rows[0].TotalDuration)

	// the two quiet days appear explicitly with zeros
	for _, row := range rows[1:3] {
		assert.Equal(t, 0, row.CycleCount)
		assert.Equal(t, time.Duration(0), row.TotalDuration)
	}

	assert.Equal(t, "2024-01-04", rows[3].Date)
	assert.Equal(t, 1, rows[3].CycleCount)
}

func TestAggregateDaily_CrossMidnightCycleBelongsToStartDate(t *testing.T) {
	lateEvening := time.Date(2024, 2, 10, 23, 30, 0, 0, time.UTC)

	cycles := []HeatingCycle{
		{DeviceID: "z1", Start: lateEvening, End: lateEvening.Add(2 * time.Hour), MaxTemperature: 29, Duration: 2 * time.Hour},
	}

	rows := AggregateDaily(cycles, nil, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-02-10", rows[0].Date)
	assert.Equal(t, 1, rows[0].CycleCount)
	assert.Equal(t, 2*time.Hour, rows[0].TotalDuration)
}

func TestAggregateDaily_MeanDifferencePerDate(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

	samples := []SynchronizedSample{
		{Timestamp: day1, Values: map[string]float64{"room": 22, "intake": 18}},
		{Timestamp: day1.Add(time.Hour), Values: map[string]float64{"room": 23, "intake": 17}},
		{Timestamp: day2, Values: map[string]float64{"room": 21, "intake": 21}},
	}
	cycles := []HeatingCycle{
		{DeviceID: "z1", Start: day1, End: day1.Add(time.Hour), MaxTemperature: 28, Duration: time.Hour},
	}

	rows := AggregateDaily(cycles, samples, DeviceDifference("room", "intake"))
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-03-01", rows[0].Date)
	assert.Equal(t, 2, rows[0].SampleCount)
	assert.InDelta(t, 5.0, rows[0].MeanDifference, 1e-9) // mean of +4 and +6

	assert.Equal(t, "2024-03-02", rows[1].Date)
	assert.Equal(t, 0, rows[1].CycleCount)
	assert.Equal(t, 1, rows[1].SampleCount)
	assert.InDelta(t, 0.0, rows[1].MeanDifference, 1e-9)
}

func TestAggregateDaily_EmptyInputs(t *testing.T) {
	rows := AggregateDaily(nil, nil, nil)
	assert.Empty(t, rows)
}

func TestDeviceDifference_RequiresBothDevices(t *testing.T) {
	diff := DeviceDifference("room", "intake")

	_, ok := diff(SynchronizedSample{Values: map[string]float64{"room": 22}})
	assert.False(t, ok)

	v, ok := diff(SynchronizedSample{Values: map[string]float64{"room": 22, "intake": 18}})
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)
}

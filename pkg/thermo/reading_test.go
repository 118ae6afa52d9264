package thermo

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"thermolog.xyz/temperature-analytics-service/pkg/common"
	"thermolog.xyz/temperature-analytics-service/pkg/models"
	_ "thermolog.xyz/temperature-analytics-service/pkg/testing"
)

func TestStoreReadingAndGetDeviceReadings(t *testing.T) {
	common.SetTestLoggerNop()

	thermoObj := GetThermoWithMemorySqliteDialector(t)
	deviceID := uuid.NewString()
	base := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

	// insert out of chronological order; the store must hand them back sorted
	seedReading(t, thermoObj, deviceID, base.Add(10*time.Minute), 21.5)
	seedReading(t, thermoObj, deviceID, base, 20.0)
	seedReading(t, thermoObj, deviceID, base.Add(5*time.Minute), 20.7)

	readings, err := thermoObj.Reading.GetDeviceReadings(deviceID)
	require.NoError(t, err)
	require.Len(t, readings, 3)

	assert.Equal(t, 20.0, readings[0].Temperature)
	assert.Equal(t, 20.7, readings[1].Temperature)
	assert.Equal(t, 21.5, readings[2].Temperature)
	for i := 1; i < len(readings); i++ {
		assert.True(t, readings[i].Timestamp.After(readings[i-1].Timestamp))
	}
}

func TestStoreReading_DeduplicatesByContentHash(t *testing.T) {
	common.SetTestLoggerNop()

	thermoObj := GetThermoWithMemorySqliteDialector(t)
	deviceID := uuid.NewString()
	at := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

	input := &models.Reading{Timestamp: at, Temperature: 20.0, Humidity: 45.0, BatteryMV: 2900}
	require.NoError(t, thermoObj.Reading.StoreReading(deviceID, input))
	require.NoError(t, thermoObj.Reading.StoreReading(deviceID, input)) // exact duplicate

	// same instant, different payload: a distinct record, not a duplicate
	changed := &models.Reading{Timestamp: at, Temperature: 20.1, Humidity: 45.0, BatteryMV: 2900}
	require.NoError(t, thermoObj.Reading.StoreReading(deviceID, changed))

	readings, err := thermoObj.Reading.GetDeviceReadings(deviceID)
	require.NoError(t, err)
	assert.Len(t, readings, 2)
}

func TestListDevices(t *testing.T) {
	common.SetTestLoggerNop()

	thermoObj := GetThermoWithMemorySqliteDialector(t)
	at := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

	deviceA := "a_" + uuid.NewString()
	deviceB := "b_" + uuid.NewString()
	seedReading(t, thermoObj, deviceB, at, 20.0)
	seedReading(t, thermoObj, deviceA, at, 20.0)
	seedReading(t, thermoObj, deviceA, at.Add(time.Minute), 20.5)

	devices, err := thermoObj.Reading.ListDevices()
	require.NoError(t, err)

	found := map[string]bool{}
	for _, device := range devices {
		found[device] = true
	}
	assert.True(t, found[deviceA])
	assert.True(t, found[deviceB])
}

func TestStoreReading_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	thermoObj := GetThermoWithMemorySqliteDialector(t)
	deviceID := uuid.NewString()
	at := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

	seedReading(t, thermoObj, deviceID, at, 22.5)

	logs := ParseLogs(buf)

	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "reading" &&
			lobj["logger"] == "thermo_core" &&
			lobj["msg"] == "Stored reading for device" &&
			lobj["reading"].(map[string]any)["DeviceID"] == deviceID {
			found = true
		}
	}
	assert.True(t, found)
}

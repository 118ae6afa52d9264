package thermo

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"thermolog.xyz/temperature-analytics-service/pkg/db"
	"thermolog.xyz/temperature-analytics-service/pkg/models"
)

func GetThermoWithMemorySqliteDialector(t *testing.T) *Thermo {
	t.Helper()

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	thermoInstance := &Thermo{Db: *dbInstance}

	thermoInstance.WithServices(ServiceOpts{
		Reading:  thermoInstance.GetIReading(),
		Analysis: thermoInstance.GetIAnalysis(),
		Import:   thermoInstance.GetIImport(),
	})

	return thermoInstance
}

func seedReading(t *testing.T, thermoInstance *Thermo, deviceID string, at time.Time, temperature float64) {
	t.Helper()

	err := thermoInstance.Reading.StoreReading(deviceID, &models.Reading{
		Timestamp:   at,
		Temperature: temperature,
		Humidity:    45.0,
		BatteryMV:   2900,
	})
	if err != nil {
		t.Fatalf("seeding reading for %s: %v", deviceID, err)
	}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

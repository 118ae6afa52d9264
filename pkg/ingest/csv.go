package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Sensor exports are CSV files with the device name on the first line, a
// header on the second, and semicolon-separated rows of
// unixTimestamp;temperature;humidity;battery_mv after that.

const (
	minExportTimestamp int64 = 946684800  // 2000-01-01, anything earlier is a faulty record
	maxExportTimestamp int64 = 4102444800 // ~2100-01-01
)

type ParsedRecord struct {
	Timestamp   time.Time
	Temperature float64
	Humidity    float64
	BatteryMV   int
}

type ParsedFile struct {
	DeviceName string
	Records    []ParsedRecord
	Malformed  int
}

// ParseCSV reads one sensor export. Malformed rows are counted and skipped,
// never fatal; a file without the two leading lines is rejected as a whole.
func ParseCSV(r io.Reader) (*ParsedFile, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("sensor export has no device name line")
	}
	deviceName := strings.TrimSpace(scanner.Text())
	if deviceName == "" {
		return nil, fmt.Errorf("sensor export has an empty device name")
	}

	if !scanner.Scan() {
		return nil, fmt.Errorf("sensor export %q has no header line", deviceName)
	}

	parsed := &ParsedFile{DeviceName: deviceName}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		record, err := parseRow(line)
		if err != nil {
			parsed.Malformed++
			continue
		}
		parsed.Records = append(parsed.Records, *record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading sensor export %q: %w", deviceName, err)
	}

	return parsed, nil
}

func parseRow(line string) (*ParsedRecord, error) {
	parts := strings.Split(line, ";")
	if len(parts) < 4 {
		return nil, fmt.Errorf("expected 4 fields, got %d", len(parts))
	}

	rawTimestamp, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, err
	}
	timestamp, err := exportTimestamp(rawTimestamp)
	if err != nil {
		return nil, err
	}

	temperature, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, err
	}
	humidity, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return nil, err
	}
	batteryMV, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return nil, err
	}

	return &ParsedRecord{
		Timestamp:   timestamp,
		Temperature: temperature,
		Humidity:    humidity,
		BatteryMV:   batteryMV,
	}, nil
}

func exportTimestamp(raw float64) (time.Time, error) {
	seconds := int64(raw)
	if seconds < minExportTimestamp {
		return time.Time{}, fmt.Errorf("timestamp %d is before 2000 (likely faulty)", seconds)
	}
	if seconds > maxExportTimestamp {
		return time.Time{}, fmt.Errorf("timestamp %d is after 2100", seconds)
	}
	return time.Unix(seconds, 0), nil
}

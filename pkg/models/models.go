package models

import "time"

// Reading is one sensor sample as delivered by a wireless device. The Hash
// column carries the content hash used for import deduplication; readings are
// unique per device by timestamp+content.
type Reading struct {
	ID          uint   `gorm:"primaryKey"`
	DeviceID    string `gorm:"index:idx_readings_device_ts"`
	Timestamp   time.Time `gorm:"index:idx_readings_device_ts"`
	Temperature float64
	Humidity    float64
	BatteryMV   int
	Hash        string `gorm:"uniqueIndex"`
}

// ImportBatch records one processed archive so repeated imports are traceable.
type ImportBatch struct {
	ID         string `gorm:"primaryKey"`
	Source     string
	ImportedAt time.Time
	NewRecords int
	Duplicates int
	SkippedOld int
	Malformed  int
}

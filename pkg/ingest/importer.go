package ingest

import (
	"archive/zip"
	"crypto/md5"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"thermolog.xyz/temperature-analytics-service/pkg/common"
	"thermolog.xyz/temperature-analytics-service/pkg/db"
	"thermolog.xyz/temperature-analytics-service/pkg/metrics"
	"thermolog.xyz/temperature-analytics-service/pkg/models"
)

// Records before this date are dropped on import; devices occasionally boot
// with a bogus clock and emit early-epoch timestamps.
var minImportDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)

type Importer struct {
	Db db.DB
}

type ImportSummary struct {
	BatchID    string
	Source     string
	Devices    []string
	NewRecords int
	Duplicates int
	SkippedOld int
	Malformed  int
}

// RecordHash is the dedup key of one reading: same device, timestamp and
// payload means the same record, whichever archive it came from.
func RecordHash(deviceName string, timestamp time.Time, temperature, humidity float64, batteryMV int) string {
	payload := fmt.Sprintf("%s|%s|%v|%v|%v",
		deviceName, timestamp.Format(common.TimeLayout), temperature, humidity, batteryMV)
	return fmt.Sprintf("%x", md5.Sum([]byte(payload)))
}

// ImportArchive merges every CSV sensor export inside the ZIP archive into
// the reading store. Duplicates are skipped via the content-hash unique
// index; each run is recorded as an ImportBatch.
func (im *Importer) ImportArchive(path string) (*ImportSummary, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameIngest,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryImport),
	)

	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer archive.Close()

	summary := &ImportSummary{
		BatchID: uuid.NewString(),
		Source:  path,
	}
	seenDevices := map[string]bool{}

	for _, file := range archive.File {
		if !strings.HasSuffix(file.Name, ".csv") {
			continue
		}

		reader, err := file.Open()
		if err != nil {
			logger.Error("Failed to open archive entry", zap.String("entry", file.Name), zap.Error(err))
			continue
		}

		parsed, err := ParseCSV(reader)
		reader.Close()
		if err != nil {
			logger.Error("Failed to parse sensor export", zap.String("entry", file.Name), zap.Error(err))
			continue
		}

		summary.Malformed += parsed.Malformed
		if !seenDevices[parsed.DeviceName] {
			seenDevices[parsed.DeviceName] = true
			summary.Devices = append(summary.Devices, parsed.DeviceName)
		}

		if err := im.storeRecords(parsed, summary); err != nil {
			return nil, err
		}

		logger.Info("Processed sensor export",
			zap.String("entry", file.Name),
			zap.String("device", parsed.DeviceName),
			zap.Int("records", len(parsed.Records)),
			zap.Int("malformed", parsed.Malformed))
	}

	batch := models.ImportBatch{
		ID:         summary.BatchID,
		Source:     path,
		ImportedAt: time.Now(),
		NewRecords: summary.NewRecords,
		Duplicates: summary.Duplicates,
		SkippedOld: summary.SkippedOld,
		Malformed:  summary.Malformed,
	}
	if err := im.Db.Conn.Create(&batch).Error; err != nil {
		return nil, err
	}

	logger.Info("Import finished",
		zap.String("batch", summary.BatchID),
		zap.Strings("devices", summary.Devices),
		zap.Int("new_records", summary.NewRecords),
		zap.Int("duplicates", summary.Duplicates),
		zap.Int("skipped_old", summary.SkippedOld))

	return summary, nil
}

func (im *Importer) storeRecords(parsed *ParsedFile, summary *ImportSummary) error {
	for _, record := range parsed.Records {
		if record.Timestamp.Before(minImportDate) {
			summary.SkippedOld++
			continue
		}

		reading := models.Reading{
			DeviceID:    parsed.DeviceName,
			Timestamp:   record.Timestamp,
			Temperature: record.Temperature,
			Humidity:    record.Humidity,
			BatteryMV:   record.BatteryMV,
			Hash: RecordHash(parsed.DeviceName, record.Timestamp,
				record.Temperature, record.Humidity, record.BatteryMV),
		}

		result := im.Db.Conn.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hash"}},
			DoNothing: true,
		}).Create(&reading)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			summary.Duplicates++
			metrics.ImportDuplicates.Inc()
		} else {
			summary.NewRecords++
			metrics.ReadingsIngested.Inc()
		}
	}
	return nil
}

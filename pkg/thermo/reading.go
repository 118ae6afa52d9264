package thermo

import (
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"thermolog.xyz/temperature-analytics-service/pkg/analysis"
	"thermolog.xyz/temperature-analytics-service/pkg/common"
	"thermolog.xyz/temperature-analytics-service/pkg/ingest"
	"thermolog.xyz/temperature-analytics-service/pkg/metrics"
	"thermolog.xyz/temperature-analytics-service/pkg/models"
)

func (t *Thermo) storeReading(deviceID string, input *models.Reading) error {
	logger := common.GetLoggerWith(
		common.LoggerNameThermoCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReading),
	)

	reading := models.Reading{
		DeviceID:    deviceID,
		Timestamp:   input.Timestamp,
		Temperature: input.Temperature,
		Humidity:    input.Humidity,
		BatteryMV:   input.BatteryMV,
		Hash: ingest.RecordHash(deviceID, input.Timestamp,
			input.Temperature, input.Humidity, input.BatteryMV),
	}

	logger.Info("Received reading for device", zap.Reflect("reading", reading))

	result := t.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hash"}},
		DoNothing: true,
	}).Create(&reading)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		logger.Info("Duplicate reading skipped", zap.String("device", deviceID))
		metrics.ImportDuplicates.Inc()
		return nil
	}

	logger.Info("Stored reading for device", zap.Reflect("reading", reading))
	metrics.ReadingsIngested.Inc()
	return nil
}

func (t *Thermo) getDeviceReadings(deviceID string) ([]analysis.Reading, error) {
	var rows []models.Reading
	err := t.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("timestamp asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return common.Mapper(rows, func(row models.Reading) analysis.Reading {
		return analysis.Reading{Timestamp: row.Timestamp, Temperature: row.Temperature}
	}), nil
}

func (t *Thermo) listDevices() ([]string, error) {
	var devices []string
	err := t.Db.Conn.
		Model(&models.Reading{}).
		Distinct("device_id").
		Order("device_id asc").
		Pluck("device_id", &devices).Error
	return devices, err
}

type IReadingImpl struct {
	thermo *Thermo
}

func (ir *IReadingImpl) StoreReading(deviceID string, input *models.Reading) error {
	return ir.thermo.storeReading(deviceID, input)
}

func (ir *IReadingImpl) GetDeviceReadings(deviceID string) ([]analysis.Reading, error) {
	return ir.thermo.getDeviceReadings(deviceID)
}

func (ir *IReadingImpl) ListDevices() ([]string, error) {
	return ir.thermo.listDevices()
}

func (t *Thermo) GetIReading() IReading {
	return &IReadingImpl{thermo: t}
}

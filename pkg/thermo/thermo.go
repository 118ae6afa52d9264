package thermo

import (
	"time"

	"thermolog.xyz/temperature-analytics-service/pkg/analysis"
	"thermolog.xyz/temperature-analytics-service/pkg/db"
	"thermolog.xyz/temperature-analytics-service/pkg/ingest"
	"thermolog.xyz/temperature-analytics-service/pkg/models"
)

// MinSyncSamples is the smallest synchronized series the ventilation
// analysis considers meaningful; anything below is reported as insufficient
// rather than failing.
const MinSyncSamples = 10

type IReading interface {
	StoreReading(deviceID string, input *models.Reading) error
	GetDeviceReadings(deviceID string) ([]analysis.Reading, error)
	ListDevices() ([]string, error)
}

type IAnalysis interface {
	DeviceIntervals(deviceID string, expectedInterval, maxGap time.Duration) ([]analysis.ActiveInterval, error)
	AllDeviceIntervals(expectedInterval, maxGap time.Duration) (map[string][]analysis.ActiveInterval, error)
	ZoneCycles(deviceID string, p analysis.Params) ([]analysis.HeatingCycle, error)
	ZoneSummary(deviceID string, p analysis.Params) (*ZoneSummary, error)
	Ventilation(required []string, internalDevice, externalDevice string, tolerance time.Duration) (*VentilationReport, error)
	DailyStatistics(zoneDevice, internalDevice, externalDevice string, p analysis.Params, tolerance time.Duration) ([]analysis.DailyAggregate, error)
}

type IImport interface {
	ImportArchive(path string) (*ingest.ImportSummary, error)
}

type Thermo struct {
	Db       db.DB
	Reading  IReading
	Analysis IAnalysis
	Import   IImport
}

type ServiceOpts struct {
	Reading  IReading
	Analysis IAnalysis
	Import   IImport
}

func (t *Thermo) WithServices(opts ServiceOpts) *Thermo {
	if opts.Reading != nil {
		t.Reading = opts.Reading
	}
	if opts.Analysis != nil {
		t.Analysis = opts.Analysis
	}
	if opts.Import != nil {
		t.Import = opts.Import
	}
	return t
}

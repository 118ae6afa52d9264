package thermo

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"thermolog.xyz/temperature-analytics-service/pkg/analysis"
	"thermolog.xyz/temperature-analytics-service/pkg/common"
	"thermolog.xyz/temperature-analytics-service/pkg/metrics"
)

// ZoneSummary condenses a zone's detected cycles to the headline numbers of
// the heating report.
type ZoneSummary struct {
	DeviceID          string
	CycleCount        int
	TotalHeating      time.Duration
	AvgCycleDuration  time.Duration
	AvgMaxTemperature float64
}

// VentilationReport is the synchronized cross-device series plus summary
// statistics of the room-minus-intake difference. Insufficient marks series
// shorter than MinSyncSamples; that is an explicit outcome, not an error.
type VentilationReport struct {
	Samples        []analysis.SynchronizedSample
	Stats          analysis.DifferenceStats
	InternalDevice string
	ExternalDevice string
	Insufficient   bool
}

func (t *Thermo) deviceIntervals(deviceID string, expectedInterval, maxGap time.Duration) ([]analysis.ActiveInterval, error) {
	readings, err := t.Reading.GetDeviceReadings(deviceID)
	if err != nil {
		return nil, err
	}
	metrics.AnalysisRequests.WithLabelValues("intervals").Inc()
	return analysis.SegmentActiveIntervals(deviceID, readings, expectedInterval, maxGap)
}

func (t *Thermo) allDeviceIntervals(expectedInterval, maxGap time.Duration) (map[string][]analysis.ActiveInterval, error) {
	devices, err := t.Reading.ListDevices()
	if err != nil {
		return nil, err
	}

	results := make(map[string][]analysis.ActiveInterval, len(devices))
	for _, device := range devices {
		intervals, err := t.deviceIntervals(device, expectedInterval, maxGap)
		if err != nil {
			return nil, fmt.Errorf("device %s: %w", device, err)
		}
		results[device] = intervals
	}
	return results, nil
}

func (t *Thermo) zoneCycles(deviceID string, p analysis.Params) ([]analysis.HeatingCycle, error) {
	readings, err := t.Reading.GetDeviceReadings(deviceID)
	if err != nil {
		return nil, err
	}
	metrics.AnalysisRequests.WithLabelValues("cycles").Inc()
	return analysis.DetectHeatingCycles(deviceID, readings, p)
}

func (t *Thermo) zoneSummary(deviceID string, p analysis.Params) (*ZoneSummary, error) {
	cycles, err := t.zoneCycles(deviceID, p)
	if err != nil {
		return nil, err
	}

	summary := &ZoneSummary{DeviceID: deviceID, CycleCount: len(cycles)}
	if len(cycles) == 0 {
		return summary, nil
	}

	summary.TotalHeating = common.Reducer(cycles,
		func(acc time.Duration, c analysis.HeatingCycle) time.Duration { return acc + c.Duration },
		time.Duration(0))
	summary.AvgCycleDuration = summary.TotalHeating / time.Duration(len(cycles))
	summary.AvgMaxTemperature = common.Reducer(cycles,
		func(acc float64, c analysis.HeatingCycle) float64 { return acc + c.MaxTemperature },
		0.0) / float64(len(cycles))

	return summary, nil
}

func (t *Thermo) ventilation(required []string, internalDevice, externalDevice string, tolerance time.Duration) (*VentilationReport, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameThermoCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryVentilation),
	)

	samples, err := t.synchronizedSamples(required, tolerance)
	if err != nil {
		return nil, err
	}
	metrics.AnalysisRequests.WithLabelValues("ventilation").Inc()

	report := &VentilationReport{
		Samples:        samples,
		InternalDevice: internalDevice,
		ExternalDevice: externalDevice,
	}

	if len(samples) < MinSyncSamples {
		logger.Warn("Insufficient synchronized samples for ventilation analysis",
			zap.Int("samples", len(samples)),
			zap.Int("minimum", MinSyncSamples))
		report.Insufficient = true
		return report, nil
	}

	report.Stats = analysis.SummarizeDifferences(samples,
		analysis.DeviceDifference(internalDevice, externalDevice))

	logger.Info("Ventilation analysis complete",
		zap.Int("samples", len(samples)),
		zap.Float64("mean_difference", report.Stats.Mean))

	return report, nil
}

func (t *Thermo) dailyStatistics(zoneDevice, internalDevice, externalDevice string, p analysis.Params, tolerance time.Duration) ([]analysis.DailyAggregate, error) {
	cycles, err := t.zoneCycles(zoneDevice, p)
	if err != nil {
		return nil, err
	}

	samples, err := t.synchronizedSamples([]string{internalDevice, externalDevice}, tolerance)
	if err != nil {
		return nil, err
	}

	metrics.AnalysisRequests.WithLabelValues("daily").Inc()
	return analysis.AggregateDaily(cycles, samples,
		analysis.DeviceDifference(internalDevice, externalDevice)), nil
}

// synchronizedSamples gates the core synchronizer behind the store: a device
// that never reported at all is a missing-input error carrying its id.
func (t *Thermo) synchronizedSamples(required []string, tolerance time.Duration) ([]analysis.SynchronizedSample, error) {
	known, err := t.Reading.ListDevices()
	if err != nil {
		return nil, err
	}
	knownSet := make(map[string]bool, len(known))
	for _, device := range known {
		knownSet[device] = true
	}

	readingsByDevice := make(map[string][]analysis.Reading, len(required))
	for _, device := range required {
		if !knownSet[device] {
			return nil, fmt.Errorf("%w: %s", analysis.ErrMissingDevice, device)
		}
		readings, err := t.Reading.GetDeviceReadings(device)
		if err != nil {
			return nil, err
		}
		readingsByDevice[device] = readings
	}

	return analysis.SynchronizeDevices(readingsByDevice, required, tolerance)
}

type IAnalysisImpl struct {
	thermo *Thermo
}

func (ia *IAnalysisImpl) DeviceIntervals(deviceID string, expectedInterval, maxGap time.Duration) ([]analysis.ActiveInterval, error) {
	return ia.thermo.deviceIntervals(deviceID, expectedInterval, maxGap)
}

func (ia *IAnalysisImpl) AllDeviceIntervals(expectedInterval, maxGap time.Duration) (map[string][]analysis.ActiveInterval, error) {
	return ia.thermo.allDeviceIntervals(expectedInterval, maxGap)
}

func (ia *IAnalysisImpl) ZoneCycles(deviceID string, p analysis.Params) ([]analysis.HeatingCycle, error) {
	return ia.thermo.zoneCycles(deviceID, p)
}

func (ia *IAnalysisImpl) ZoneSummary(deviceID string, p analysis.Params) (*ZoneSummary, error) {
	return ia.thermo.zoneSummary(deviceID, p)
}

func (ia *IAnalysisImpl) Ventilation(required []string, internalDevice, externalDevice string, tolerance time.Duration) (*VentilationReport, error) {
	return ia.thermo.ventilation(required, internalDevice, externalDevice, tolerance)
}

func (ia *IAnalysisImpl) DailyStatistics(zoneDevice, internalDevice, externalDevice string, p analysis.Params, tolerance time.Duration) ([]analysis.DailyAggregate, error) {
	return ia.thermo.dailyStatistics(zoneDevice, internalDevice, externalDevice, p, tolerance)
}

func (t *Thermo) GetIAnalysis() IAnalysis {
	return &IAnalysisImpl{thermo: t}
}

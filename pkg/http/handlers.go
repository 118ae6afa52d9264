package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"thermolog.xyz/temperature-analytics-service/pkg/analysis"
	"thermolog.xyz/temperature-analytics-service/pkg/common"
	"thermolog.xyz/temperature-analytics-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// Query-parameter defaults for the analysis endpoints. They match the
// sampling behavior of the deployed sensors: one reading every five minutes,
// with anything past 35 minutes treated as the logger being off.
const (
	defaultExpectedIntervalMinutes = 5.0
	defaultMaxGapMinutes           = 35.0
	defaultToleranceMinutes        = 15.0
)

type ReadingRequest struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	BatteryMV   int       `json:"battery_mv"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"Timestamp":   z.Time().Required(),
	"Temperature": z.Float64().Required(),
	"Humidity":    z.Float64(),
	"BatteryMV":   z.Int(),
})

func (rs *RestfulServer) PostReadings(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest

	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Thermo.Reading.StoreReading(deviceID, &models.Reading{
		Timestamp:   req.Timestamp,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		BatteryMV:   req.BatteryMV,
	}); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) ListDevices(c *gin.Context) {
	devices, err := rs.Thermo.Reading.ListDevices()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"devices": devices})
}

type IntervalResponse struct {
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	DurationHours       float64 `json:"duration_hours"`
	DurationDays        float64 `json:"duration_days"`
	RecordCount         int     `json:"record_count"`
	ExpectedRecords     int     `json:"expected_records"`
	CompletenessPercent float64 `json:"completeness_percent"`
}

func toIntervalResponse(interval analysis.ActiveInterval) IntervalResponse {
	duration := interval.Duration()
	return IntervalResponse{
		StartTime:           interval.Start.Format(common.TimeLayout),
		EndTime:             interval.End.Format(common.TimeLayout),
		DurationHours:       duration.Hours(),
		DurationDays:        duration.Hours() / 24,
		RecordCount:         interval.RecordCount,
		ExpectedRecords:     interval.ExpectedRecords,
		CompletenessPercent: interval.Completeness * 100,
	}
}

func (rs *RestfulServer) GetIntervals(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	expectedInterval, err := queryMinutes(c, "expected_interval_minutes", defaultExpectedIntervalMinutes)
	if err != nil {
		return
	}
	maxGap, err := queryMinutes(c, "max_gap_minutes", defaultMaxGapMinutes)
	if err != nil {
		return
	}

	intervals, err := rs.Thermo.Analysis.DeviceIntervals(deviceID, expectedInterval, maxGap)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"device_id": deviceID,
		"intervals": common.Mapper(intervals, toIntervalResponse),
	})
}

type CycleResponse struct {
	Start           string  `json:"start"`
	End             string  `json:"end"`
	MaxTemperature  float64 `json:"max_temperature"`
	DurationMinutes float64 `json:"duration_minutes"`
}

func toCycleResponse(cycle analysis.HeatingCycle) CycleResponse {
	return CycleResponse{
		Start:           cycle.Start.Format(common.TimeLayout),
		End:             cycle.End.Format(common.TimeLayout),
		MaxTemperature:  cycle.MaxTemperature,
		DurationMinutes: cycle.Duration.Minutes(),
	}
}

func (rs *RestfulServer) GetCycles(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	params, err := queryParams(c)
	if err != nil {
		return
	}

	cycles, err := rs.Thermo.Analysis.ZoneCycles(deviceID, params)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"device_id": deviceID,
		"cycles":    common.Mapper(cycles, toCycleResponse),
	})
}

type SummaryResponse struct {
	DeviceID                string  `json:"device_id"`
	CycleCount              int     `json:"cycle_count"`
	TotalHeatingHours       float64 `json:"total_heating_hours"`
	AvgCycleDurationMinutes float64 `json:"avg_cycle_duration_minutes"`
	AvgMaxTemperature       float64 `json:"avg_max_temperature"`
}

func (rs *RestfulServer) GetCycleSummary(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	params, err := queryParams(c)
	if err != nil {
		return
	}

	summary, err := rs.Thermo.Analysis.ZoneSummary(deviceID, params)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		DeviceID:                summary.DeviceID,
		CycleCount:              summary.CycleCount,
		TotalHeatingHours:       summary.TotalHeating.Hours(),
		AvgCycleDurationMinutes: summary.AvgCycleDuration.Minutes(),
		AvgMaxTemperature:       summary.AvgMaxTemperature,
	})
}

type SampleResponse struct {
	Timestamp string             `json:"timestamp"`
	Values    map[string]float64 `json:"values"`
}

type VentilationResponse struct {
	InternalDevice string           `json:"internal_device"`
	ExternalDevice string           `json:"external_device"`
	SampleCount    int              `json:"sample_count"`
	Insufficient   bool             `json:"insufficient"`
	Mean           float64          `json:"mean_difference"`
	Std            float64          `json:"std_difference"`
	Min            float64          `json:"min_difference"`
	Max            float64          `json:"max_difference"`
	Range          float64          `json:"range_difference"`
	Samples        []SampleResponse `json:"samples"`
}

func (rs *RestfulServer) GetVentilation(c *gin.Context) {
	internal := c.Query("internal_device")
	external := c.Query("external_device")
	if internal == "" || external == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "internal_device and external_device are required"})
		return
	}

	tolerance, err := queryMinutes(c, "tolerance_minutes", defaultToleranceMinutes)
	if err != nil {
		return
	}

	report, err := rs.Thermo.Analysis.Ventilation(
		[]string{internal, external}, internal, external, tolerance)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, VentilationResponse{
		InternalDevice: report.InternalDevice,
		ExternalDevice: report.ExternalDevice,
		SampleCount:    len(report.Samples),
		Insufficient:   report.Insufficient,
		Mean:           report.Stats.Mean,
		Std:            report.Stats.Std,
		Min:            report.Stats.Min,
		Max:            report.Stats.Max,
		Range:          report.Stats.Range,
		Samples: common.Mapper(report.Samples, func(s analysis.SynchronizedSample) SampleResponse {
			return SampleResponse{
				Timestamp: s.Timestamp.Format(common.TimeLayout),
				Values:    s.Values,
			}
		}),
	})
}

type DailyResponse struct {
	Date                 string  `json:"date"`
	CycleCount           int     `json:"cycle_count"`
	TotalDurationMinutes float64 `json:"total_duration_minutes"`
	MeanDifference       float64 `json:"mean_difference"`
	SampleCount          int     `json:"sample_count"`
}

func (rs *RestfulServer) GetDaily(c *gin.Context) {
	zone := c.Query("zone_device")
	internal := c.Query("internal_device")
	external := c.Query("external_device")
	if zone == "" || internal == "" || external == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zone_device, internal_device and external_device are required"})
		return
	}

	params, err := queryParams(c)
	if err != nil {
		return
	}
	tolerance, err := queryMinutes(c, "tolerance_minutes", defaultToleranceMinutes)
	if err != nil {
		return
	}

	days, err := rs.Thermo.Analysis.DailyStatistics(zone, internal, external, params, tolerance)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days": common.Mapper(days, func(d analysis.DailyAggregate) DailyResponse {
			return DailyResponse{
				Date:                 d.Date,
				CycleCount:           d.CycleCount,
				TotalDurationMinutes: d.TotalDuration.Minutes(),
				MeanDifference:       d.MeanDifference,
				SampleCount:          d.SampleCount,
			}
		}),
	})
}

type ImportRequest struct {
	Path string `json:"path"`
}

var importRequestSchema = z.Struct(z.Shape{
	"Path": z.String().Required(),
})

func (rs *RestfulServer) PostImport(c *gin.Context) {
	var req ImportRequest
	if err := importRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	summary, err := rs.Thermo.Import.ImportArchive(req.Path)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"batch_id":    summary.BatchID,
		"source":      summary.Source,
		"devices":     summary.Devices,
		"new_records": summary.NewRecords,
		"duplicates":  summary.Duplicates,
		"skipped_old": summary.SkippedOld,
		"malformed":   summary.Malformed,
	})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// queryParams gathers the cycle-detection knobs shared by the cycle and
// daily endpoints. A parse failure writes the 400 itself; callers just return.
func queryParams(c *gin.Context) (analysis.Params, error) {
	params := analysis.DefaultParams()

	rise, err := queryFloat(c, "rise_above_min", params.RiseAboveMin)
	if err != nil {
		return params, err
	}
	drop, err := queryFloat(c, "drop_below_cycle_max", params.DropBelowCycleMax)
	if err != nil {
		return params, err
	}
	minGap, err := queryMinutes(c, "min_gap_minutes", params.MinGap.Minutes())
	if err != nil {
		return params, err
	}

	params.RiseAboveMin = rise
	params.DropBelowCycleMax = drop
	params.MinGap = minGap
	return params, nil
}

func queryMinutes(c *gin.Context, key string, defMinutes float64) (time.Duration, error) {
	minutes, err := queryFloat(c, key, defMinutes)
	if err != nil {
		return 0, err
	}
	return time.Duration(minutes * float64(time.Minute)), nil
}

func queryFloat(c *gin.Context, key string, def float64) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return 0, err
	}
	return value, nil
}

func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analysis.ErrMissingDevice):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, analysis.ErrNonPositiveDuration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

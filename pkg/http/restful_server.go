package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"thermolog.xyz/temperature-analytics-service/pkg/thermo"
)

type RestfulServer struct {
	Server           *gin.Engine
	Thermo           *thermo.Thermo
	RateLimiterStore *thermo.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rs.Server.GET("/devices", rs.ListDevices)
	rs.Server.POST("/import", rs.PostImport)

	devices := rs.Server.Group("/devices/:device_id")
	{
		devices.POST("/readings", rs.PostReadings)
		devices.GET("/intervals", rs.GetIntervals)
		devices.GET("/cycles", rs.GetCycles)
		devices.GET("/cycles/summary", rs.GetCycleSummary)
		devices.POST("/limiter", rs.PostLimiter)
	}

	analysis := rs.Server.Group("/analysis")
	{
		analysis.GET("/ventilation", rs.GetVentilation)
		analysis.GET("/daily", rs.GetDaily)
	}
}

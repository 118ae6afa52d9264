package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"thermolog.xyz/temperature-analytics-service/pkg/common"
	"thermolog.xyz/temperature-analytics-service/pkg/db"
	tmHttp "thermolog.xyz/temperature-analytics-service/pkg/http"
	"thermolog.xyz/temperature-analytics-service/pkg/thermo"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	tmDbType := os.Getenv(common.EnvKeyTMDBType)
	switch tmDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown TM_DB_TYPE: " + tmDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyTMHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyTMDefaultRate), 64); err != nil {
		log.Fatal("Invalid TM_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyTMDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid TM_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	thermoCore := thermo.Thermo{
		Db: *dbInstance,
	}
	thermoCore.WithServices(thermo.ServiceOpts{
		Reading:  thermoCore.GetIReading(),
		Analysis: thermoCore.GetIAnalysis(),
		Import:   thermoCore.GetIImport(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &tmHttp.RestfulServer{
		Server:           gin.Default(),
		Thermo:           &thermoCore,
		RateLimiterStore: thermo.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}

package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyTMDBType  string = "TM_DB_TYPE"
	EnvKeyTMDbPath  string = "TM_DB_PATH"
	EnvKeyTMDataDir string = "TM_DATA_DIR"

	EnvKeyTMHttpHostPort string = "TM_HTTP_HOST_PORT"

	EnvKeyTMDefaultRate  string = "TM_DEFAULT_RATE"
	EnvKeyTMDefaultBurst string = "TM_DEFAULT_BURST"

	// Timestamps are exchanged as local wall-clock date-times, no zone math.
	TimeLayout string = "2006-01-02T15:04:05"
	DateLayout string = "2006-01-02"

	LoggerNameAnalysisCore  string = "analysis_core"
	LoggerNameThermoCore    string = "thermo_core"
	LoggerNameIngest        string = "ingest"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldCategory       string = "category"
	LoggerCategoryInterval    string = "interval"
	LoggerCategoryCycle       string = "cycle"
	LoggerCategorySync        string = "sync"
	LoggerCategoryDaily       string = "daily"
	LoggerCategoryReading     string = "reading"
	LoggerCategoryImport      string = "import"
	LoggerCategoryVentilation string = "ventilation"
)

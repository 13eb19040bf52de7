package config

// Environment variable names
const (
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvEnvironment    = "ENVIRONMENT"
	EnvServiceName    = "SERVICE_NAME"
	EnvVersion        = "VERSION"
	EnvSimulationDays = "SIMULATION_DAYS"
	EnvFixturePath    = "FIXTURE_PATH"
	EnvWorkers        = "WORKERS"
	EnvMetricsFile    = "METRICS_FILE"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "gildedrose"
	DefaultVersion     = "dev"
	DefaultDays        = 2
	DefaultWorkers     = 1
)

// ValidLogFormats lists the accepted LOG_FORMAT values
var ValidLogFormats = []string{"text", "json"}

package logger

// Accepted LOG_LEVEL values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Fallback identity used before configuration is loaded
const (
	DefaultServiceName = "idlefarm"
	DefaultVersion     = "dev"
)

// Environment values, matching the ENVIRONMENT setting
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "production"
)

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldBackend    = "backend"
	FieldCategory   = "category"
	FieldWeekday    = "weekday"
	FieldCurrency   = "currency"
	FieldTicker     = "ticker"
	FieldRefDate    = "reference_date"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldRows       = "rows"
	FieldReportPath = "report_path"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentReport    = "report"
	ComponentDashboard = "dashboard"
	ComponentStorage   = "storage"
	ComponentSource    = "source"
	ComponentAMQP      = "amqp"
	ComponentRates     = "rates"
	ComponentQuotes    = "quotes"
	ComponentCache     = "cache"
	ComponentBackend   = "backend"
)

// Operations defines standard operation names
const (
	OpLoad      = "load"
	OpAggregate = "aggregate"
	OpAssemble  = "assemble"
	OpFetch     = "fetch"
	OpWrite     = "write"
	OpImport    = "import"
	OpPublish   = "publish"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)

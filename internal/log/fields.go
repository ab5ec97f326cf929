package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldClientIP      = "client_ip"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldStatusCode    = "status_code"
	FieldDuration      = "duration_ms"
	FieldUserAgent     = "user_agent"
	FieldError         = "error"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldModel         = "model"
	FieldDate          = "date"
	FieldMonth         = "month"
	FieldWeek          = "week"
	FieldQuery         = "query"
	FieldPage          = "page"
	FieldCount         = "count"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentStore    = "store"
	ComponentReport   = "report"
	ComponentForm     = "form"
	ComponentCache    = "cache"
	ComponentTemplate = "template"
)

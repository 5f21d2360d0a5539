package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldAction    = "action"
	FieldUserID    = "user_id"
	FieldRecordID  = "record_id"
	FieldStore     = "store"
	FieldPath      = "path"
	FieldBackend   = "backend"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldCount     = "count"
	FieldDuration  = "duration_ms"
)

// Components defines standard component names
const (
	ComponentSkill    = "skill"
	ComponentCalendar = "calendar"
	ComponentCashflow = "cashflow"
	ComponentNotes    = "notes"
	ComponentStorage  = "storage"
	ComponentBackend  = "backend"
	ComponentEvents   = "events"
	ComponentHTTP     = "http"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpSearch   = "search"
	OpPublish  = "publish"
	OpValidate = "validate"
	OpDispatch = "dispatch"
)

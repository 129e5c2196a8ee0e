package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldKey       = "key"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldSuccess   = "success"
	FieldCount     = "count"
	FieldURL       = "url"
	FieldMethod    = "method"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldLanguage  = "language"
	FieldCurrency  = "currency"
	FieldTxID      = "transaction_id"
	FieldGoalName  = "goal_name"
	FieldEmail     = "email"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentCache   = "cache"
	ComponentPrefs   = "prefs"
	ComponentSession = "session"
	ComponentLedger  = "ledger"
	ComponentGoals   = "goals"
	ComponentAPI     = "api"
	ComponentRefresh = "refresh"
)

// Operations defines standard operation names
const (
	OpSave     = "save"
	OpLoad     = "load"
	OpAppend   = "append"
	OpReplace  = "replace"
	OpFetch    = "fetch"
	OpRefresh  = "refresh"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldKey       = "key"
	FieldCategory  = "category"
	FieldAmount    = "amount_cents"
	FieldCount     = "count"
	FieldPath      = "path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentStore   = "store"
	ComponentStorage = "storage"
	ComponentCharts  = "charts"
)

package logging

// Standardized field names for structured logging.
// Keep log output filterable by using these instead of ad-hoc keys.
const (
	FieldFile            = "file_path"
	FieldLoader          = "loader"
	FieldRecordIndex     = "record_index"
	FieldBookkeepingType = "bookkeeping_type"
	FieldGroupBy         = "group_by"
	FieldCategory        = "category"
	FieldWindow          = "window"
	FieldKey             = "key"
	FieldTotal           = "total"
	FieldCount           = "count"
	FieldInputCount      = "input_count"
	FieldRetainedCount   = "retained_count"
	FieldFormat          = "format"
)

// pkg/model/cleaning.go
package model

// CleaningOperation represents a single data cleaning mutation
type CleaningOperation struct {
	Column        string      // Column that was cleaned; empty for whole-row operations
	RowIndex      int         // Index label of the affected row
	OriginalValue interface{} // Original value (may be nil)
	NewValue      interface{} // New value after cleaning (nil when the cell became missing)
	Operation     string      // Type of cleaning performed (e.g., "placeholder_replacement")
	Reason        string      // Reason for cleaning (e.g., "unknown_value_sentinel")
}

// Operation types recorded by the cleaner
const (
	OpRowDrop                = "row_drop"
	OpPlaceholderReplacement = "placeholder_replacement"
	OpTypeStandardization    = "type_standardization"
)

// Cleaning reasons recorded by the cleaner
const (
	ReasonBedroomsOutlier  = "bedrooms_entry_outlier"
	ReasonUnknownSentinel  = "unknown_value_sentinel"
	ReasonConvertedToFloat = "converted_to_float"
	ReasonMissingCritical  = "missing_critical_value"
)

package world

import "fmt"

// ConfigurationError reports a generation parameter outside its valid range.
type ConfigurationError struct {
	Field  string // Parameter name (e.g., "gridSize")
	Value  int    // Value that was rejected
	Reason string // What the value must satisfy
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

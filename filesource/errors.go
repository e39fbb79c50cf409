package filesource

import "fmt"

// ConfigError is the single error kind raised by configuration
// validation. Validation is fail-fast: the first unmet rule is
// reported and no further rules are evaluated.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

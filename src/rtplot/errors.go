package rtplot

import "fmt"

// ConfigurationError reports bad input from the caller: a line-count
// mismatch, an unknown static kind, an invalid style spec. It is returned
// synchronously from the call that caused it and never coerced away.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}
	return "configuration error: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func configErr(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func configWrap(reason string, err error) error {
	return &ConfigurationError{Reason: reason, Err: err}
}

// LifecycleError reports a call that is illegal in the plot's current state,
// such as starting a plot twice.
type LifecycleError struct {
	Op     string
	Reason string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

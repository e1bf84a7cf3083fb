package agent

import "fmt"

// ServiceError means the tool process failed to launch or exited non-zero.
// It is fatal for the current pipeline stage only.
type ServiceError struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *ServiceError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("tool %s failed: %v: %s", e.Tool, e.Err, e.Stderr)
	}
	return fmt.Sprintf("tool %s failed: %v", e.Tool, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// ResponseParseError means the tool's reply carried no delimited response
// block. Raw keeps the full output for a debug view.
type ResponseParseError struct {
	Raw string
}

func (e *ResponseParseError) Error() string {
	return "no response block found in tool output"
}

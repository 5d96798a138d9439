package cli

import "fmt"

// CLIError wraps a fatal startup error with operator guidance and an exit
// code. Query failures never become CLIErrors; they are reported as plain
// text and the process still exits 0.
type CLIError struct {
	Message  string
	Hints    []string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg string, err error, hints ...string) *CLIError {
	return &CLIError{
		Message:  msg,
		Hints:    hints,
		Err:      err,
		ExitCode: 1,
	}
}

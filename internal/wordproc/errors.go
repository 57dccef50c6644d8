package wordproc

import "fmt"

// PackError reports a failure while writing one part of the package.
type PackError struct {
	Part  string
	Cause error
}

func (e *PackError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("docx package error: %v", e.Cause)
	}
	return fmt.Sprintf("docx package error in %s: %v", e.Part, e.Cause)
}

func (e *PackError) Unwrap() error {
	return e.Cause
}

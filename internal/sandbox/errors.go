package sandbox

import "fmt"

// Stage names a step of rasterization.
type Stage string

const (
	StageCreate   Stage = "create"
	StageLoad     Stage = "load"
	StageSettle   Stage = "settle"
	StageCapture  Stage = "capture"
	StageDecode   Stage = "decode"
	StageTeardown Stage = "teardown"
)

// StageError reports which rasterization step failed.
type StageError struct {
	Stage Stage
	Cause error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("sandbox %s failed: %v", e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}

package pipeline

import "fmt"

// Stage names a step of the run.
type Stage string

const (
	StageDecode    Stage = "decode"
	StageComposite Stage = "composite"
	StageMkdir     Stage = "mkdir"
	StageEncode    Stage = "encode"
)

// StageError is a failure tagged with the stage and path it happened at.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s failed for %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

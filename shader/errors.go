package shader

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBuild matches every CompileError and LinkError with errors.Is.
var ErrBuild = errors.New("shader program build failed")

// CompileError reports a stage rejected by the device's compiler.
type CompileError struct {
	Stage StageKind
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, strings.TrimSpace(e.Log))
}

func (e *CompileError) Is(target error) bool { return target == ErrBuild }

// LinkError reports two compiled stages that could not be linked.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link program: %s", strings.TrimSpace(e.Log))
}

func (e *LinkError) Is(target error) bool { return target == ErrBuild }

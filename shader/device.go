package shader

import reMath "learn-opengl/math"

// StageKind identifies a programmable pipeline stage.
type StageKind int

const (
	Vertex StageKind = iota
	Fragment
)

func (k StageKind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// StageHandle and ProgramHandle are device-issued object names. Zero is
// never a valid handle.
type (
	StageHandle   uint32
	ProgramHandle uint32
)

// UniformLocation is a device uniform slot. NotFound is returned for names
// the linked program does not declare or that the compiler optimized out.
type UniformLocation int32

const NotFound UniformLocation = -1

// Device is the GPU boundary a Program drives. Implementations are bound to
// one graphics context and must be called from the thread that owns it.
type Device interface {
	// CompileStage compiles source for kind. A non-blank diagnostic means
	// the stage was rejected; the returned handle, if non-zero, still has to
	// be released.
	CompileStage(kind StageKind, source string) (StageHandle, string)

	// LinkProgram links compiled stages. The program handle is returned even
	// when linking fails so the caller can release it.
	LinkProgram(stages ...StageHandle) (handle ProgramHandle, linked bool, diagnostic string)

	ReleaseStage(h StageHandle)
	ReleaseProgram(h ProgramHandle)

	// UseProgram makes h the program used by subsequent draw calls.
	UseProgram(h ProgramHandle)

	UniformLocation(p ProgramHandle, name string) UniformLocation

	// Uniform writes address the program explicitly rather than whatever
	// program happens to be in use.
	Uniform1i(p ProgramHandle, loc UniformLocation, v int32)
	Uniform1f(p ProgramHandle, loc UniformLocation, v float32)
	UniformMatrix4(p ProgramHandle, loc UniformLocation, m reMath.Mat4)
}

// Package opengl implements shader.Device and the buffer and texture uploads
// the learngl driver needs on top of go-gl.
package opengl

import (
	"fmt"
	"log/slog"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	reMath "learn-opengl/math"
	"learn-opengl/shader"
)

// Device talks to the OpenGL context current on the calling thread.
type Device struct{}

var _ shader.Device = (*Device)(nil)

// NewDevice loads the GL function pointers. It must be called after the
// window's context is made current.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Info("OpenGL initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return &Device{}, nil
}

func stageType(kind shader.StageKind) uint32 {
	if kind == shader.Fragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// CompileStage returns the driver's info log as the diagnostic. Any
// non-empty log, warnings included, counts as a rejection.
func (d *Device) CompileStage(kind shader.StageKind, source string) (shader.StageHandle, string) {
	sh := gl.CreateShader(stageType(kind))
	if sh == 0 {
		return 0, fmt.Sprintf("glCreateShader failed: 0x%X", gl.GetError())
	}
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	log := shaderInfoLog(sh)
	if status == gl.FALSE && strings.TrimSpace(log) == "" {
		log = "compile failed without a log"
	}
	return shader.StageHandle(sh), log
}

func (d *Device) LinkProgram(stages ...shader.StageHandle) (shader.ProgramHandle, bool, string) {
	prog := gl.CreateProgram()
	for _, sh := range stages {
		gl.AttachShader(prog, uint32(sh))
	}
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return shader.ProgramHandle(prog), false, programInfoLog(prog)
	}
	for _, sh := range stages {
		gl.DetachShader(prog, uint32(sh))
	}
	return shader.ProgramHandle(prog), true, ""
}

func (d *Device) ReleaseStage(h shader.StageHandle) {
	gl.DeleteShader(uint32(h))
}

func (d *Device) ReleaseProgram(h shader.ProgramHandle) {
	gl.DeleteProgram(uint32(h))
}

func (d *Device) UseProgram(h shader.ProgramHandle) {
	gl.UseProgram(uint32(h))
}

func (d *Device) UniformLocation(p shader.ProgramHandle, name string) shader.UniformLocation {
	return shader.UniformLocation(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (d *Device) Uniform1i(p shader.ProgramHandle, loc shader.UniformLocation, v int32) {
	gl.ProgramUniform1i(uint32(p), int32(loc), v)
}

func (d *Device) Uniform1f(p shader.ProgramHandle, loc shader.UniformLocation, v float32) {
	gl.ProgramUniform1f(uint32(p), int32(loc), v)
}

func (d *Device) UniformMatrix4(p shader.ProgramHandle, loc shader.UniformLocation, m reMath.Mat4) {
	gl.ProgramUniformMatrix4fv(uint32(p), int32(loc), 1, false, m.Ptr())
}

// Clear fills the color and depth buffers.
func (d *Device) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func shaderInfoLog(sh uint32) string {
	var logLen int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func programInfoLog(prog uint32) string {
	var logLen int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 1 {
		return "link failed without a log"
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// Package shader owns the compile and link lifecycle of two-stage GPU
// programs and exposes a small typed uniform interface on top of a Device.
package shader

import (
	"strings"

	reMath "learn-opengl/math"
)

// Program is a linked vertex+fragment program. A *Program only exists once
// both stages compiled and linked; there is no partially built state.
//
// Setting a uniform the program does not declare is a silent no-op, so one
// call site can drive several shader variants.
type Program struct {
	device    Device
	handle    ProgramHandle
	locations map[string]UniformLocation
}

// NewProgram compiles both stages and links them. Stage objects are released
// before it returns whether or not linking succeeded. Failures are reported
// as *CompileError or *LinkError.
func NewProgram(dev Device, vertexSrc, fragmentSrc string) (*Program, error) {
	handle, err := build(dev, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		device:    dev,
		handle:    handle,
		locations: make(map[string]UniformLocation),
	}, nil
}

func build(dev Device, vertexSrc, fragmentSrc string) (ProgramHandle, error) {
	vert, err := compileStage(dev, Vertex, vertexSrc)
	if err != nil {
		return 0, err
	}
	defer dev.ReleaseStage(vert)

	frag, err := compileStage(dev, Fragment, fragmentSrc)
	if err != nil {
		return 0, err
	}
	defer dev.ReleaseStage(frag)

	prog, linked, log := dev.LinkProgram(vert, frag)
	if !linked || prog == 0 {
		if prog != 0 {
			dev.ReleaseProgram(prog)
		}
		if linked {
			log = "device returned no program"
		}
		return 0, &LinkError{Log: log}
	}
	return prog, nil
}

func compileStage(dev Device, kind StageKind, src string) (StageHandle, error) {
	h, log := dev.CompileStage(kind, src)
	if strings.TrimSpace(log) != "" {
		if h != 0 {
			dev.ReleaseStage(h)
		}
		return 0, &CompileError{Stage: kind, Log: log}
	}
	if h == 0 {
		return 0, &CompileError{Stage: kind, Log: "device returned no shader object"}
	}
	return h, nil
}

// Valid reports whether the program still owns a linked handle.
func (p *Program) Valid() bool {
	return p.handle != 0
}

// Use makes this the current program on the device.
func (p *Program) Use() {
	if p.handle == 0 {
		return
	}
	p.device.UseProgram(p.handle)
}

// SetBool sends value as an int uniform, 1 for true.
func (p *Program) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	p.SetInt(name, v)
}

func (p *Program) SetInt(name string, value int32) {
	if loc, ok := p.location(name); ok {
		p.device.Uniform1i(p.handle, loc, value)
	}
}

func (p *Program) SetFloat(name string, value float32) {
	if loc, ok := p.location(name); ok {
		p.device.Uniform1f(p.handle, loc, value)
	}
}

func (p *Program) SetMat4(name string, value reMath.Mat4) {
	if loc, ok := p.location(name); ok {
		p.device.UniformMatrix4(p.handle, loc, value)
	}
}

// location resolves name once per linked program. Misses are cached too.
func (p *Program) location(name string) (UniformLocation, bool) {
	if p.handle == 0 {
		return NotFound, false
	}
	loc, ok := p.locations[name]
	if !ok {
		loc = p.device.UniformLocation(p.handle, name)
		p.locations[name] = loc
	}
	return loc, loc != NotFound
}

// Reload rebuilds the program from new sources. On failure the current
// program is left untouched and still usable.
func (p *Program) Reload(vertexSrc, fragmentSrc string) error {
	handle, err := build(p.device, vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}
	if p.handle != 0 {
		p.device.ReleaseProgram(p.handle)
	}
	p.handle = handle
	clear(p.locations)
	return nil
}

// Release frees the linked program. Further Use and Set calls do nothing.
// It is safe to call more than once.
func (p *Program) Release() {
	if p.handle == 0 {
		return
	}
	p.device.ReleaseProgram(p.handle)
	p.handle = 0
	clear(p.locations)
}

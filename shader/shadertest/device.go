// Package shadertest provides an in-memory shader.Device for tests. It
// understands just enough GLSL to reject broken sources, to check that the
// stages' interfaces line up at link time, and to assign uniform locations.
package shadertest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	reMath "learn-opengl/math"
	"learn-opengl/shader"
)

var (
	mainRe  = regexp.MustCompile(`void\s+main\s*\(\s*(void)?\s*\)`)
	declRe  = regexp.MustCompile(`(?m)^[ \t]*(?:layout\s*\([^)]*\)\s*)?(?:flat\s+|smooth\s+)?(uniform|in|out)\s+(\w+)\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*;`)
	errorRe = regexp.MustCompile(`(?m)^[ \t]*#error[ \t]*(.*)$`)
)

type stage struct {
	kind     shader.StageKind
	uniforms map[string]string
	ins      map[string]string
	outs     map[string]string
}

type program struct {
	linked    bool
	locations map[string]shader.UniformLocation
	types     map[shader.UniformLocation]string
	values    map[shader.UniformLocation]any
}

// UniformWrite records one Uniform* call that reached a declared uniform.
type UniformWrite struct {
	Program shader.ProgramHandle
	Name    string
	Value   any
}

// Device is a fake GPU. The zero value is not usable; call NewDevice.
type Device struct {
	next     uint32
	stages   map[shader.StageHandle]*stage
	programs map[shader.ProgramHandle]*program
	active   shader.ProgramHandle

	lookups int
	writes  []UniformWrite
	// Errors collects calls a real driver would flag as GL_INVALID_OPERATION.
	Errors []string
}

var _ shader.Device = (*Device)(nil)

func NewDevice() *Device {
	return &Device{
		stages:   make(map[shader.StageHandle]*stage),
		programs: make(map[shader.ProgramHandle]*program),
	}
}

func (d *Device) id() uint32 {
	d.next++
	return d.next
}

func (d *Device) CompileStage(kind shader.StageKind, source string) (shader.StageHandle, string) {
	h := shader.StageHandle(d.id())
	st := &stage{
		kind:     kind,
		uniforms: make(map[string]string),
		ins:      make(map[string]string),
		outs:     make(map[string]string),
	}
	d.stages[h] = st

	src := stripComments(source)
	if m := errorRe.FindStringSubmatch(src); m != nil {
		return h, fmt.Sprintf("ERROR: 0:%d: '#error' : %s\n", lineOf(src, m[0]), strings.TrimSpace(m[1]))
	}
	if !mainRe.MatchString(src) {
		return h, "ERROR: 0:1: 'main' : function not defined\n"
	}
	if strings.Count(src, "{") != strings.Count(src, "}") ||
		strings.Count(src, "(") != strings.Count(src, ")") {
		return h, "ERROR: 0:1: '' : syntax error, unexpected end of file\n"
	}

	for _, m := range declRe.FindAllStringSubmatch(src, -1) {
		qualifier, typ, name := m[1], m[2], m[3]
		switch qualifier {
		case "uniform":
			st.uniforms[name] = typ
		case "in":
			st.ins[name] = typ
		case "out":
			st.outs[name] = typ
		}
	}
	return h, ""
}

func (d *Device) LinkProgram(stages ...shader.StageHandle) (shader.ProgramHandle, bool, string) {
	h := shader.ProgramHandle(d.id())
	prog := &program{
		locations: make(map[string]shader.UniformLocation),
		types:     make(map[shader.UniformLocation]string),
		values:    make(map[shader.UniformLocation]any),
	}
	d.programs[h] = prog

	var vert, frag *stage
	for _, sh := range stages {
		st, ok := d.stages[sh]
		if !ok {
			return h, false, fmt.Sprintf("error: shader object %d does not exist\n", sh)
		}
		switch st.kind {
		case shader.Vertex:
			vert = st
		case shader.Fragment:
			frag = st
		}
	}
	if vert == nil || frag == nil {
		return h, false, "error: program needs both a vertex and a fragment shader\n"
	}

	for name, typ := range frag.ins {
		outType, ok := vert.outs[name]
		if !ok {
			return h, false, fmt.Sprintf("error: fragment shader input %q has no matching vertex shader output\n", name)
		}
		if outType != typ {
			return h, false, fmt.Sprintf("error: type mismatch for %q: vertex %s, fragment %s\n", name, outType, typ)
		}
	}

	types := make(map[string]string)
	for _, st := range []*stage{vert, frag} {
		for name, typ := range st.uniforms {
			if prev, ok := types[name]; ok && prev != typ {
				return h, false, fmt.Sprintf("error: uniform %q declared as %s and %s\n", name, prev, typ)
			}
			types[name] = typ
		}
	}
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		loc := shader.UniformLocation(i)
		prog.locations[name] = loc
		prog.types[loc] = types[name]
	}

	prog.linked = true
	return h, true, ""
}

func (d *Device) ReleaseStage(h shader.StageHandle) {
	if _, ok := d.stages[h]; !ok {
		d.Errors = append(d.Errors, fmt.Sprintf("release of unknown shader %d", h))
		return
	}
	delete(d.stages, h)
}

func (d *Device) ReleaseProgram(h shader.ProgramHandle) {
	if _, ok := d.programs[h]; !ok {
		d.Errors = append(d.Errors, fmt.Sprintf("release of unknown program %d", h))
		return
	}
	delete(d.programs, h)
	if d.active == h {
		d.active = 0
	}
}

func (d *Device) UseProgram(h shader.ProgramHandle) {
	prog, ok := d.programs[h]
	if !ok || !prog.linked {
		d.Errors = append(d.Errors, fmt.Sprintf("use of invalid program %d", h))
		return
	}
	d.active = h
}

func (d *Device) UniformLocation(p shader.ProgramHandle, name string) shader.UniformLocation {
	d.lookups++
	prog, ok := d.programs[p]
	if !ok || !prog.linked {
		d.Errors = append(d.Errors, fmt.Sprintf("uniform lookup on invalid program %d", p))
		return shader.NotFound
	}
	loc, ok := prog.locations[name]
	if !ok {
		return shader.NotFound
	}
	return loc
}

func (d *Device) Uniform1i(p shader.ProgramHandle, loc shader.UniformLocation, v int32) {
	d.set(p, loc, v, "int", "bool", "sampler2D")
}

func (d *Device) Uniform1f(p shader.ProgramHandle, loc shader.UniformLocation, v float32) {
	d.set(p, loc, v, "float")
}

func (d *Device) UniformMatrix4(p shader.ProgramHandle, loc shader.UniformLocation, m reMath.Mat4) {
	d.set(p, loc, m, "mat4")
}

func (d *Device) set(p shader.ProgramHandle, loc shader.UniformLocation, v any, accepted ...string) {
	prog, ok := d.programs[p]
	if !ok || !prog.linked {
		d.Errors = append(d.Errors, fmt.Sprintf("uniform write to invalid program %d", p))
		return
	}
	typ, ok := prog.types[loc]
	if !ok {
		d.Errors = append(d.Errors, fmt.Sprintf("uniform write to unknown location %d", loc))
		return
	}
	for _, a := range accepted {
		if a == typ {
			prog.values[loc] = v
			d.writes = append(d.writes, UniformWrite{Program: p, Name: nameOf(prog, loc), Value: v})
			return
		}
	}
	d.Errors = append(d.Errors, fmt.Sprintf("uniform %s at location %d written as %T", typ, loc, v))
}

// Active returns the program selected by the last UseProgram call.
func (d *Device) Active() shader.ProgramHandle { return d.active }

// Uniform returns the last value written to name in program p.
func (d *Device) Uniform(p shader.ProgramHandle, name string) (any, bool) {
	prog, ok := d.programs[p]
	if !ok {
		return nil, false
	}
	loc, ok := prog.locations[name]
	if !ok {
		return nil, false
	}
	v, ok := prog.values[loc]
	return v, ok
}

// Writes returns every accepted uniform write in call order.
func (d *Device) Writes() []UniformWrite { return d.writes }

// Lookups counts UniformLocation calls.
func (d *Device) Lookups() int { return d.lookups }

// LiveStages is the number of shader objects not yet released.
func (d *Device) LiveStages() int { return len(d.stages) }

// LivePrograms is the number of program objects not yet released.
func (d *Device) LivePrograms() int { return len(d.programs) }

// Programs lists live program handles in creation order.
func (d *Device) Programs() []shader.ProgramHandle {
	out := make([]shader.ProgramHandle, 0, len(d.programs))
	for h := range d.programs {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func nameOf(prog *program, loc shader.UniformLocation) string {
	for name, l := range prog.locations {
		if l == loc {
			return name
		}
	}
	return ""
}

// stripComments blanks out // and /* */ comments. Newlines inside block
// comments are kept so diagnostics report the original line numbers.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); i++ {
		switch {
		case strings.HasPrefix(src[i:], "//"):
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				return b.String()
			}
			i += end - 1
		case strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				end = len(src) - i - 2
			}
			comment := src[i : i+2+end]
			b.WriteString(strings.Repeat("\n", strings.Count(comment, "\n")))
			b.WriteByte(' ')
			i += 2 + end + 1
		default:
			b.WriteByte(src[i])
		}
	}
	return b.String()
}

func lineOf(src, match string) int {
	idx := strings.Index(src, match)
	if idx < 0 {
		return 1
	}
	return strings.Count(src[:idx], "\n") + 1
}

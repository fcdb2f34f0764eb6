package shader

import (
	"fmt"
	"io/fs"
)

// Sources holds the text of both stages.
type Sources struct {
	Vertex   string
	Fragment string
}

// ReadSources loads both stage files from fsys.
func ReadSources(fsys fs.FS, vertexPath, fragmentPath string) (Sources, error) {
	vert, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return Sources{}, fmt.Errorf("read vertex shader %q: %w", vertexPath, err)
	}
	frag, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return Sources{}, fmt.Errorf("read fragment shader %q: %w", fragmentPath, err)
	}
	return Sources{Vertex: string(vert), Fragment: string(frag)}, nil
}

// NewProgramFromFS reads both stages from fsys and builds a Program.
func NewProgramFromFS(dev Device, fsys fs.FS, vertexPath, fragmentPath string) (*Program, error) {
	src, err := ReadSources(fsys, vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return NewProgram(dev, src.Vertex, src.Fragment)
}

// Package config loads the learngl driver settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	reMath "learn-opengl/math"
)

type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Projection ProjectionConfig `yaml:"projection"`
	Shaders    ShaderConfig     `yaml:"shaders"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type CameraConfig struct {
	Position        [3]float32 `yaml:"position"`
	Yaw             float32    `yaml:"yaw"`
	Pitch           float32    `yaml:"pitch"`
	Zoom            float32    `yaml:"zoom"`
	MovementSpeed   float32    `yaml:"movement_speed"`
	LookSensitivity float32    `yaml:"look_sensitivity"`
	ConstrainPitch  bool       `yaml:"constrain_pitch"`
}

type ProjectionConfig struct {
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// ShaderConfig names GLSL files on disk. Empty paths select the sources
// built into the binary.
type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Learn OpenGL",
			VSync:  true,
		},
		Camera: CameraConfig{
			Position:        [3]float32{0, 0, 3},
			Yaw:             -90,
			Pitch:           0,
			Zoom:            45,
			MovementSpeed:   2.5,
			LookSensitivity: 0.1,
			ConstrainPitch:  true,
		},
		Projection: ProjectionConfig{
			Near: 0.1,
			Far:  100,
		},
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Projection.Near <= 0 || c.Projection.Near >= c.Projection.Far {
		return fmt.Errorf("invalid clip planes near=%v far=%v", c.Projection.Near, c.Projection.Far)
	}
	if (c.Shaders.Vertex == "") != (c.Shaders.Fragment == "") {
		return errors.New("shaders: vertex and fragment must be set together")
	}
	return nil
}

// Aspect is the width over height. A zero height, as reported for a
// minimized window, yields 1.
func (w WindowConfig) Aspect() float32 {
	if w.Height <= 0 {
		return 1
	}
	return float32(w.Width) / float32(w.Height)
}

func (c CameraConfig) PositionVec() reMath.Vec3 {
	return reMath.NewVec3(c.Position[0], c.Position[1], c.Position[2])
}

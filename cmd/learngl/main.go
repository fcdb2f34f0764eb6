// Command learngl flies a first-person camera through ten textured cubes.
//
// Controls: WASD or arrow keys move, the mouse looks around, the scroll
// wheel zooms, Tab releases or recaptures the mouse, R reloads shaders from
// disk when paths are configured and ESC quits.
package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"learn-opengl/camera"
	"learn-opengl/config"
	"learn-opengl/core"
	"learn-opengl/input"
	"learn-opengl/internal/opengl"
	"learn-opengl/shader"
)

//go:embed shaders
var builtinShaders embed.FS

type binding struct {
	key int
	dir camera.Direction
}

var movementKeys = []binding{
	{core.KeyW, camera.Forward},
	{core.KeyUp, camera.Forward},
	{core.KeyS, camera.Backward},
	{core.KeyDown, camera.Backward},
	{core.KeyA, camera.Left},
	{core.KeyLeft, camera.Left},
	{core.KeyD, camera.Right},
	{core.KeyRight, camera.Right},
}

func main() {
	configPath := flag.String("config", "learngl.yml", "path to the YAML config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*configPath); err != nil {
		slog.Error("learngl failed", "error", err)
		os.Exit(1)
	}
}

// shaderSource picks the configured files or the embedded defaults.
func shaderSource(cfg config.ShaderConfig) (fsys fs.FS, vertex, fragment string) {
	if cfg.Vertex == "" {
		return builtinShaders, "shaders/camera.vert", "shaders/camera.frag"
	}
	return os.DirFS("."), filepath.ToSlash(filepath.Clean(cfg.Vertex)), filepath.ToSlash(filepath.Clean(cfg.Fragment))
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	window, err := core.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	dev, err := opengl.NewDevice()
	if err != nil {
		return err
	}
	viewport := cfg.Window
	viewport.Width, viewport.Height = window.Width, window.Height
	dev.SetViewport(viewport.Width, viewport.Height)
	window.SetResizeCallback(func(width, height int) {
		viewport.Width, viewport.Height = width, height
		dev.SetViewport(width, height)
	})

	shaderFS, vertPath, fragPath := shaderSource(cfg.Shaders)
	prog, err := shader.NewProgramFromFS(dev, shaderFS, vertPath, fragPath)
	if err != nil {
		return fmt.Errorf("build shader program: %w", err)
	}
	defer prog.Release()

	cube, err := opengl.NewMesh(cubeVertices, 3, 2)
	if err != nil {
		return fmt.Errorf("upload cube: %w", err)
	}
	defer cube.Destroy()

	tex1, err := opengl.UploadImage(checkerImage(256, 8))
	if err != nil {
		return fmt.Errorf("upload texture1: %w", err)
	}
	defer tex1.Destroy()
	tex2, err := opengl.UploadImage(ringImage(256))
	if err != nil {
		return fmt.Errorf("upload texture2: %w", err)
	}
	defer tex2.Destroy()

	bindSamplers := func() {
		prog.SetInt("texture1", 0)
		prog.SetInt("texture2", 1)
	}
	bindSamplers()

	camCfg := cfg.Camera
	cam := camera.New(camCfg.PositionVec(),
		camera.WithYawPitch(camCfg.Yaw, camCfg.Pitch),
		camera.WithZoom(camCfg.Zoom),
		camera.WithMovementSpeed(camCfg.MovementSpeed),
		camera.WithLookSensitivity(camCfg.LookSensitivity),
	)

	var cursor input.CursorTracker
	var scroll input.ScrollAccumulator
	window.CaptureCursor(true)
	window.SetCursorPosCallback(func(x, y float64) {
		d := cursor.Move(x, y)
		cam.ProcessLook(d.X, d.Y, camCfg.ConstrainPitch)
	})
	window.SetScrollCallback(scroll.Add)

	slog.Info("render loop started", "cubes", len(cubePositions))

	lastTime := window.Time()
	fpsTime := lastTime
	frames := 0
	var reloadKey, captureKey keyLatch

	for !window.ShouldClose() {
		now := window.Time()
		dt := float32(now - lastTime)
		lastTime = now

		window.PollEvents()
		if window.IsKeyPressed(core.KeyEscape) {
			window.Close()
		}
		for _, b := range movementKeys {
			if window.IsKeyPressed(b.key) {
				cam.Move(b.dir, dt)
			}
		}
		cam.ProcessZoom(scroll.Drain())

		if reloadKey.pressed(window.IsKeyPressed(core.KeyR)) && cfg.Shaders.Vertex != "" {
			reloadShaders(prog, shaderFS, vertPath, fragPath, bindSamplers)
		}
		if captureKey.pressed(window.IsKeyPressed(core.KeyTab)) {
			if cursor.Captured() {
				cursor.Release()
			} else {
				cursor.Capture()
			}
			window.CaptureCursor(cursor.Captured())
		}

		dev.Clear(0.2, 0.3, 0.3, 1.0)
		tex1.Bind(0)
		tex2.Bind(1)

		prog.Use()
		prog.SetFloat("mixValue", 0.2)
		prog.SetMat4("view", cam.ViewMatrix())
		prog.SetMat4("projection", cam.ProjectionMatrix(viewport.Aspect(), cfg.Projection.Near, cfg.Projection.Far))

		for i, pos := range cubePositions {
			prog.SetMat4("model", cubeModel(i, pos))
			cube.Draw()
		}

		window.SwapBuffers()

		frames++
		if now-fpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s - FPS: %d", cfg.Window.Title, frames))
			frames = 0
			fpsTime = now
		}
	}

	slog.Info("exiting")
	return nil
}

// keyLatch reports a held key once, on the frame it goes down.
type keyLatch struct {
	held bool
}

func (l *keyLatch) pressed(down bool) bool {
	fire := down && !l.held
	l.held = down
	return fire
}

func reloadShaders(prog *shader.Program, fsys fs.FS, vertPath, fragPath string, bindSamplers func()) {
	src, err := shader.ReadSources(fsys, vertPath, fragPath)
	if err != nil {
		slog.Warn("shader reload skipped", "error", err)
		return
	}
	if err := prog.Reload(src.Vertex, src.Fragment); err != nil {
		slog.Warn("shader reload failed, keeping previous program", "error", err)
		return
	}
	bindSamplers()
	slog.Info("shaders reloaded", "vertex", vertPath, "fragment", fragPath)
}

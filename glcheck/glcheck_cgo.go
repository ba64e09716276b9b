//go:build !tinygo && cgo

package glcheck

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

// Validate compiles and links the program made up of the compiled stages.
// Stage keys must be "vert" and "frag", or "comp" alone. Validate creates and
// destroys a hidden window so it must be called from the main thread.
func Validate(code map[string]string) error {
	return ValidateWithConfig(code, Config{})
}

// ValidateWithConfig is like [Validate] with a custom context configuration.
func ValidateWithConfig(code map[string]string, cfg Config) error {
	vert, frag, comp, err := splitStages(code)
	if err != nil {
		return err
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	terminate, err := startHiddenGLFW(cfg)
	if err != nil {
		return err
	}
	defer terminate()
	cfg.debug("glcheck context", slog.String("GL_VERSION", gl.GoStr(gl.GetString(gl.VERSION))))
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   nulTerminate(vert),
		Fragment: nulTerminate(frag),
		Compute:  nulTerminate(comp),
	})
	if err != nil {
		return fmt.Errorf("glcheck: %w", err)
	}
	prog.Delete()
	return glgl.Err()
}

func startHiddenGLFW(cfg Config) (terminate func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glcheck: initializing GLFW: %w", err)
	}
	major, minor := cfg.version()
	glfw.WindowHint(glfw.ContextVersionMajor, major)
	glfw.WindowHint(glfw.ContextVersionMinor, minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	glfw.WindowHint(glfw.Visible, glfw.False)
	window, err := glfw.CreateWindow(1, 1, "glcheck", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glcheck: creating GLFW window: %w", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("glcheck: initializing OpenGL: %w", err)
	}
	return func() {
		window.Destroy()
		glfw.Terminate()
	}, nil
}

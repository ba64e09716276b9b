// Package glcheck validates compiled GLSL programs by compiling and linking
// them with the local OpenGL driver.
package glcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Stage keys recognized by [Validate].
const (
	StageVertex   = "vert"
	StageFragment = "frag"
	StageCompute  = "comp"
)

// Config configures the hidden OpenGL context used for validation.
type Config struct {
	// Version is the OpenGL context version requested. Defaults to 4.6.
	Version [2]int
	// Logger receives driver details at debug level. Nil disables logging.
	Logger *slog.Logger
}

func (cfg Config) debug(msg string, attrs ...slog.Attr) {
	if cfg.Logger != nil {
		cfg.Logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
	}
}

func (cfg Config) version() (major, minor int) {
	if cfg.Version == [2]int{} {
		return 4, 6
	}
	return cfg.Version[0], cfg.Version[1]
}

// splitStages maps compiled stage sources to vertex, fragment and compute sources.
func splitStages(code map[string]string) (vert, frag, comp string, err error) {
	for key, src := range code {
		switch key {
		case StageVertex:
			vert = src
		case StageFragment:
			frag = src
		case StageCompute:
			comp = src
		default:
			return "", "", "", fmt.Errorf("glcheck: unknown stage key %q", key)
		}
	}
	switch {
	case comp != "" && (vert != "" || frag != ""):
		return "", "", "", errors.New("glcheck: compute stage cannot be linked with vertex or fragment stages")
	case comp == "" && (vert == "" || frag == ""):
		return "", "", "", errors.New("glcheck: program requires both vert and frag stages")
	}
	return vert, frag, comp, nil
}

func nulTerminate(src string) string {
	if src == "" || src[len(src)-1] == 0 {
		return src
	}
	return src + "\x00"
}

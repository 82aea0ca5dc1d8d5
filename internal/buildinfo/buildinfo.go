// Package buildinfo carries the build identity stamped in with
//
//	go build -ldflags "-X fractalzoom/internal/buildinfo.Version=v1.2.0 -X fractalzoom/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import (
	"fmt"

	"go.uber.org/zap"
)

// Name is the program name shown in the window title.
const Name = "Mandelbrot Fractal Zoomer"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, or the commit for untagged builds.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Title is the window title.
func Title() string {
	return fmt.Sprintf("%s (%s)", Name, Short())
}

// String is the -version output.
func String() string {
	return fmt.Sprintf("fractalzoom %s commit %s built %s", Version, Commit, Date)
}

// Fields describes the build for the startup log line.
func Fields() []zap.Field {
	return []zap.Field{
		zap.String("version", Version),
		zap.String("commit", Commit),
		zap.String("built", Date),
	}
}

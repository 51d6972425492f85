// Package app provides the application structure of the polyroots command.
// It parses the configuration, dispatches to completion, version or the
// rebuild-and-validate run, and maps the outcome to an exit code.
package app

import (
	"fmt"
	"io"
	"runtime"
)

// Build-time variables set via -ldflags, for example:
//
//	go build -ldflags="-X github.com/agbru/polyroots/internal/app.Version=v1.0.0 -X github.com/agbru/polyroots/internal/app.Commit=abc123"
var (
	// Version is the semantic version of the application (e.g., "v1.0.0").
	Version = "dev"
	// Commit is the short Git commit hash.
	Commit = "unknown"
	// BuildDate is the ISO 8601 timestamp of the build.
	BuildDate = "unknown"
)

// HasVersionFlag reports whether any argument asks for the version, so
// that -version works in any position and even with otherwise invalid flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-V" {
			return true
		}
	}
	return false
}

// PrintVersion writes version, commit, build date and runtime information.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "polyroots %s\n", Version)
	fmt.Fprintf(out, "  Commit:     %s\n", Commit)
	fmt.Fprintf(out, "  Built:      %s\n", BuildDate)
	fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// VersionData is the version information in structured form.
type VersionData struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionData {
	return VersionData{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

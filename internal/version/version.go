// Package version provides version information for implgen.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// cueModulePath identifies the CUE SDK in the binary's build info.
const cueModulePath = "cuelang.org/go"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// Platform is the target OS/architecture.
	Platform string `json:"platform"`

	// CUESDKVersion is the CUE SDK version used for config validation.
	CUESDKVersion string `json:"cueSDKVersion"`
}

// Get returns the version information of the running binary.
func Get() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		Platform:      runtime.GOOS + "/" + runtime.GOARCH,
		CUESDKVersion: cueSDKVersion(debug.ReadBuildInfo),
	}
}

// String returns a multi-line human readable representation.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "implgen version %s\n", i.Version)
	fmt.Fprintf(&sb, "  Commit:    %s\n", i.GitCommit)
	fmt.Fprintf(&sb, "  Built:     %s\n", i.BuildDate)
	fmt.Fprintf(&sb, "  Go:        %s\n", i.GoVersion)
	fmt.Fprintf(&sb, "  Platform:  %s\n", i.Platform)
	fmt.Fprintf(&sb, "  CUE SDK:   %s\n", i.CUESDKVersion)
	return sb.String()
}

func cueSDKVersion(readBuildInfo func() (*debug.BuildInfo, bool)) string {
	info, ok := readBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != cueModulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}

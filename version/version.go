// Package version provides build version information embedding.
//
// Version and git commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/gatewaykit/version.Version=1.0.0"
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
)

// Info represents resolved build information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
}

// Get returns the build information, falling back to the module's embedded
// VCS metadata when the -ldflags variables were not set.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		if info.GitCommit == "" {
			for _, setting := range buildInfo.Settings {
				if setting.Key == "vcs.revision" {
					info.GitCommit = setting.Value
					if len(info.GitCommit) > 7 {
						info.GitCommit = info.GitCommit[:7]
					}
				}
			}
		}
	}

	return info
}

// Short returns a compact version string.
func Short() string {
	info := Get()
	if info.GitCommit != "" {
		return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
	}
	return info.Version
}

// UserAgent returns the User-Agent string sent on outbound requests.
func UserAgent() string {
	return "gatewaykit/" + Version
}

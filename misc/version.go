// Package misc keeps program identification set at build time.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X cssm/misc.version=... -X cssm/misc.gitHash=..."
var (
	appName = "cssm"
	version = "dev"
	gitHash string
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns commit program was built from, falling back to VCS
// information embedded by go build.
func GetGitHash() string {
	if len(gitHash) != 0 {
		return gitHash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}

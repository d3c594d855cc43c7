package version

import (
	"fmt"
	"runtime"
)

// These variables are set via ldflags during build.
var (
	Version   = "dev"
	Commit    = "none"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// ShortCommit returns the first seven characters of Commit, or "" when no
// commit was stamped into the build.
func ShortCommit() string {
	if Commit == "" || Commit == "none" {
		return ""
	}
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}

func Summary() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if short := ShortCommit(); short != "" {
		return fmt.Sprintf("%s (%s)", v, short)
	}
	return v
}

// Details returns the multi-line build report printed by `termnote version`.
func Details() string {
	return fmt.Sprintf("termnote %s\n  commit:   %s\n  built:    %s\n  go:       %s\n  platform: %s",
		Summary(), Commit, Date, GoVersion, Platform())
}

package main

import (
	"runtime"

	"github.com/bnema/sarf/internal/bootstrap"
	"github.com/bnema/sarf/internal/cli/cmd"
	"github.com/bnema/sarf/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	bootstrap.EnableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}

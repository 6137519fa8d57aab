package main

import (
	"github.com/bnema/ghostconf/internal/cli/cmd"
)

// Build information set via ldflags
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cmd.SetVersion(version, commit)
	cmd.Execute()
}

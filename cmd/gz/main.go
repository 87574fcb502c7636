// Package main is the entry point for the gz application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chmouel/gz/internal/buildinfo"
	"github.com/chmouel/gz/internal/log"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date, builtBy)

	err := newRootCommand().Run(context.Background(), os.Args)
	if cerr := log.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", cerr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

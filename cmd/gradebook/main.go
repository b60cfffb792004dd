// Package main implements the gradebook command: a local tool that keeps a
// roster of students and their assignment scores in a JSON document and
// exports it as a formatted spreadsheet.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "alpha 1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// Command treedata generates, verifies and serves constrained hierarchical
// datasets.
//
// Usage:
//
//	treedata generate [--config FILE] [--seed N] [--rel] [--format json|yaml] [--out FILE] [--verify]
//	treedata verify FILE [--format json|yaml]
//	treedata init [--out FILE] [--force]
//	treedata serve [--config FILE] [--addr :8080]
//
// Global flags: --log-level (debug|info|warn|error), --log-json.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run executes the CLI with args, writing command output to stdout and
// logs to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}

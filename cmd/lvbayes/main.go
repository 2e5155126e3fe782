// Command lvbayes runs causal-structure, independence, elimination-order,
// exact-inference and sampling queries against the built-in graphs and
// Bayesian networks.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, "lvbayes:", err)
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}

	return 1
}

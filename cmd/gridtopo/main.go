// SPDX-License-Identifier: MIT

// Command gridtopo checks whether a grid network is connected from its root
// and lists the fundamental cycles of its spanning tree.
//
//	gridtopo connectivity network.json --root 14319
//	gridtopo cycles network.json
//	gridtopo components network.db
//	gridtopo analyze network.yaml --root 1 --root 2 -o json
//	gridtopo import network.json network.db
//
// Exit status: 0 on success, 1 on error, 2 when connectivity finds a cloud.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// exitError ends the command with a status code and no error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd, a := newRootCmd(stdout, stderr)
	defer a.close()

	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(stderr, "gridtopo: %v\n", err)

	return 1
}

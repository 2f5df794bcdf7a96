package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/necklace/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit status.
// The picture goes to stdout; logs and errors go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := cli.New(stderr, cli.LogInfo)
	c.Out = stdout

	root := c.RootCommand()
	root.SilenceErrors = true
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return exitCode(stderr, root.ExecuteContext(ctx))
}

// exitCode maps err to a status: 0 on success, 130 after an interrupt and 1
// for every other failure, which is printed to w.
func exitCode(w io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	}
	fmt.Fprintf(w, "necklace: %v\n", err)
	return 1
}

// Command txflow deploys token faucets and submits transactions through a
// Tarantool wallet.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func run(ctx context.Context, a *app, args []string) error {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	return errors.Join(err, a.teardown())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, newApp(os.Stdout), os.Args[1:])

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

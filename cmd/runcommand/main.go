package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"appname/config"
	"appname/internal/delivery/cli"
	"appname/internal/domain/lifecycle"
	"appname/internal/infra/analytics"
	logs "appname/internal/infra/log"

	"go.uber.org/fx"
)

func main() {
	os.Exit(run())
}

// run returns non-zero only when the command cannot be bootstrapped. Failed
// analytics steps are part of the transcript, not an exit status.
// The transcript goes to stdout; logs go to stderr so the two never interleave.
func run() int {
	var check *cli.AnalyticsCheck

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			fx.Annotate(
				func() io.Writer { return os.Stderr },
				fx.ResultTags(`name:"logOutput"`),
			),
			func() *cli.Console { return cli.NewConsole(os.Stdout) },
			cli.NewAnalyticsCheck,
		),
		analytics.Module,
		fx.Populate(&check),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "runcommand: %v\n", err)

		return 1
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "runcommand: %v\n", err)

		return 1
	}

	check.Run(context.Background())

	// Stopping flushes events still queued in the analytics client.
	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "runcommand: %v\n", err)
	}

	return 0
}

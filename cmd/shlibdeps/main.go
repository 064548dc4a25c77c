// Package main is the entry point for the shlibdeps CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/shlibdeps/cmd/shlibdeps/commands"
	"go.trai.ch/shlibdeps/internal/app"
	"go.trai.ch/shlibdeps/internal/core/domain"
	_ "go.trai.ch/shlibdeps/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return domain.ExitFailure
	}

	logs, _ := components.Logger.(commands.LogControl)
	cli := commands.New(components.App, logs)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return domain.ExitCode(err)
	}
	return domain.ExitOK
}

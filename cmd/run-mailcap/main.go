package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/run-mailcap/cmd/run-mailcap/commands"
	"github.com/arthur-debert/run-mailcap/pkg/ui/styles"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := commands.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	// The handler already reported its own failure
	var exitErr *commands.ExitStatusError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
	return 1
}

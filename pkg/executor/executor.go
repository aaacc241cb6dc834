package executor

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/run-mailcap/pkg/errors"
	"github.com/arthur-debert/run-mailcap/pkg/logging"
)

// Options contains configuration for the executor
type Options struct {
	// DryRun prints the command instead of running it
	DryRun bool
	// Shell is invoked as `Shell -c command`, sh when empty
	Shell  string
	Logger zerolog.Logger

	// Standard streams of the command, the process streams when nil
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Result describes one command run
type Result struct {
	Command  string
	ExitCode int
	// Skipped is set in dry-run mode
	Skipped  bool
	Duration time.Duration
}

// Executor runs resolved mailcap commands
type Executor struct {
	dryRun bool
	shell  string
	logger zerolog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	e := &Executor{
		dryRun: opts.DryRun,
		shell:  opts.Shell,
		logger: logger,
		stdin:  opts.Stdin,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
	}
	if e.shell == "" {
		e.shell = "sh"
	}
	if e.stdin == nil {
		e.stdin = os.Stdin
	}
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	return e
}

// Run executes command, or prints it in dry-run mode. A command that starts
// and exits with a non-zero status is not an error, its status is returned
// in the result. Failing to start the shell is a COMMAND_EXECUTE error.
// ctx is only checked before starting: once running, the command is waited
// for even if ctx is cancelled.
func (e *Executor) Run(ctx context.Context, command string) (Result, error) {
	start := time.Now()

	e.logger.Debug().
		Str("command", command).
		Bool("dry_run", e.dryRun).
		Msg("Executing command")

	if e.dryRun {
		if _, err := fmt.Fprintln(e.stdout, command); err != nil {
			return Result{Command: command}, errors.Wrap(err, errors.ErrCommandExecute, "failed to print command")
		}
		return Result{
			Command:  command,
			Skipped:  true,
			Duration: time.Since(start),
		}, nil
	}

	if err := ctx.Err(); err != nil {
		return Result{Command: command}, errors.Wrap(err, errors.ErrCommandExecute, "not started")
	}

	// The handler owns the terminal until it exits. It gets terminal signals
	// from its process group and is never killed on our behalf.
	cmd := exec.Command(e.shell, "-c", command)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	logging.LogCommand(e.logger, cmd.String())

	err := cmd.Run()
	result := Result{Command: command, Duration: time.Since(start)}

	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			result.ExitCode = exitStatus(exitErr)
			e.logger.Info().
				Str("command", command).
				Int("exit_code", result.ExitCode).
				Msg("Command exited with non-zero status")
			return result, nil
		}

		e.logger.Error().
			Err(err).
			Str("command", command).
			Msg("Command execution failed")
		return result, errors.Wrapf(err, errors.ErrCommandExecute, "failed to run %s", command).
			WithDetail("command", command)
	}

	e.logger.Debug().
		Str("command", command).
		Dur("duration", result.Duration).
		Msg("Command executed successfully")

	return result, nil
}

// exitStatus returns the shell convention status of a finished command,
// 128+N when it was killed by signal N
func exitStatus(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return exitErr.ExitCode()
}

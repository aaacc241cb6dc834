package mailcap

import (
	"context"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/run-mailcap/pkg/logging"
)

// discardOutput is appended to test commands so their output never reaches
// the user
const discardOutput = " >/dev/null 2>&1"

// Evaluator decides whether an already substituted test command passes
type Evaluator interface {
	Passes(ctx context.Context, command string) bool
}

// ShellEvaluator runs test commands through a POSIX shell. A test passes
// when the shell exits with status 0; failing to start the shell, a non-zero
// status and hitting the timeout all count as failure.
type ShellEvaluator struct {
	// Shell is the interpreter invoked as `Shell -c command`
	Shell string
	// Timeout bounds each test, zero means no limit
	Timeout time.Duration

	logger zerolog.Logger
}

// NewShellEvaluator creates an evaluator using sh with the given timeout
func NewShellEvaluator(timeout time.Duration) *ShellEvaluator {
	return &ShellEvaluator{
		Shell:   "sh",
		Timeout: timeout,
		logger:  logging.GetLogger("mailcap.evaluator"),
	}
}

// Passes runs command and reports whether it succeeded
func (e *ShellEvaluator) Passes(ctx context.Context, command string) bool {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.Shell, "-c", command+discardOutput)
	logging.LogCommand(e.logger, cmd.String())

	if err := cmd.Run(); err != nil {
		e.logger.Debug().
			Err(err).
			Str("test", command).
			Bool("timedOut", ctx.Err() == context.DeadlineExceeded).
			Msg("Test command failed")
		return false
	}

	e.logger.Trace().Str("test", command).Msg("Test command passed")
	return true
}

// EvaluateTest reports whether an entry with the given test template applies
// to filename. An empty template always applies and runs nothing.
func EvaluateTest(ctx context.Context, evaluator Evaluator, testTemplate, filename, mimeType string) bool {
	if testTemplate == "" {
		return true
	}
	return evaluator.Passes(ctx, Substitute(testTemplate, filename, mimeType))
}

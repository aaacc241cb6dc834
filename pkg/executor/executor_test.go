package executor_test

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/run-mailcap/pkg/errors"
	"github.com/arthur-debert/run-mailcap/pkg/executor"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func newExecutor(dryRun bool, stdin string) (*executor.Executor, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	e := executor.New(executor.Options{
		DryRun: dryRun,
		Logger: zerolog.Nop(),
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	return e, &stdout, &stderr
}

func TestRun_DryRunPrintsCommand(t *testing.T) {
	e, stdout, _ := newExecutor(true, "")

	result, err := e.Run(context.Background(), "less '/tmp/it'\\''s.txt'")
	require.NoError(t, err)

	assert.True(t, result.Skipped)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "less '/tmp/it'\\''s.txt'\n", stdout.String())
}

func TestRun_AttachesStreams(t *testing.T) {
	requireShell(t)
	e, stdout, stderr := newExecutor(false, "from stdin\n")

	result, err := e.Run(context.Background(), "cat; echo oops >&2")
	require.NoError(t, err)

	assert.False(t, result.Skipped)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "from stdin\n", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}

func TestRun_PropagatesExitStatus(t *testing.T) {
	requireShell(t)
	e, _, _ := newExecutor(false, "")

	result, err := e.Run(context.Background(), "exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
}

func TestRun_ShellMissing(t *testing.T) {
	e := executor.New(executor.Options{
		Shell:  "/nonexistent/shell",
		Logger: zerolog.Nop(),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})

	_, err := e.Run(context.Background(), "true")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandExecute))
	assert.Equal(t, "true", errors.GetErrorDetails(err)["command"])
}

func TestRun_SignalledCommand(t *testing.T) {
	requireShell(t)
	e, _, _ := newExecutor(false, "")

	result, err := e.Run(context.Background(), "kill -TERM $$")
	require.NoError(t, err)
	assert.Equal(t, 128+15, result.ExitCode)
}

func TestRun_CancelDoesNotKillRunningCommand(t *testing.T) {
	requireShell(t)
	e, stdout, _ := newExecutor(false, "")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	result, err := e.Run(ctx, "sleep 1; echo done")
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "done\n", stdout.String())
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	e, stdout, _ := newExecutor(false, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Run(ctx, "echo never")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandExecute))
	assert.Empty(t, stdout.String())
}

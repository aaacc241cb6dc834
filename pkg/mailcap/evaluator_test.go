package mailcap

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestShellEvaluator_Passes(t *testing.T) {
	requireShell(t)
	e := NewShellEvaluator(0)
	ctx := context.Background()

	assert.True(t, e.Passes(ctx, "true"))
	assert.False(t, e.Passes(ctx, "false"))
	assert.True(t, e.Passes(ctx, `test "abc" = "abc"`))
	assert.False(t, e.Passes(ctx, "exit 3"))
	assert.True(t, e.Passes(ctx, "echo noisy output; echo noisy error >&2"))
}

func TestShellEvaluator_SpawnFailureIsFailure(t *testing.T) {
	e := NewShellEvaluator(0)
	e.Shell = filepath.Join(t.TempDir(), "no-such-shell")

	assert.False(t, e.Passes(context.Background(), "true"))
}

func TestShellEvaluator_Timeout(t *testing.T) {
	requireShell(t)
	e := NewShellEvaluator(100 * time.Millisecond)

	start := time.Now()
	assert.False(t, e.Passes(context.Background(), "sleep 5"))
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestShellEvaluator_CancelledContext(t *testing.T) {
	requireShell(t)
	e := NewShellEvaluator(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, e.Passes(ctx, "true"))
}

func TestEvaluateTest(t *testing.T) {
	t.Run("empty test never runs", func(t *testing.T) {
		fake := &fakeEvaluator{}
		assert.True(t, EvaluateTest(context.Background(), fake, "", "a.txt", "text/plain"))
		assert.Empty(t, fake.commands)
	})

	t.Run("placeholders are substituted", func(t *testing.T) {
		want := `test -s 'it'\''s.txt' -a text/plain = text/plain`
		fake := &fakeEvaluator{pass: map[string]bool{want: true}}

		assert.True(t, EvaluateTest(context.Background(), fake, "test -s '%s' -a %t = text/plain", "it's.txt", "text/plain"))
		assert.Equal(t, []string{want}, fake.commands)
	})

	t.Run("real shell sees the file", func(t *testing.T) {
		requireShell(t)
		dir := t.TempDir()
		e := NewShellEvaluator(5 * time.Second)

		assert.False(t, EvaluateTest(context.Background(), e, "test -e '%s'", filepath.Join(dir, "missing"), "text/plain"))
		assert.True(t, EvaluateTest(context.Background(), e, "test -d '%s'", dir, "inode/directory"))
	})
}

// fakeEvaluator records the commands it is asked about and answers from pass
type fakeEvaluator struct {
	pass     map[string]bool
	commands []string
}

func (f *fakeEvaluator) Passes(_ context.Context, command string) bool {
	f.commands = append(f.commands, command)
	return f.pass[command]
}

package mailcap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/run-mailcap/pkg/types"
)

func newContext(action types.Action) types.Context {
	return types.Context{
		Filename: "test.txt",
		MIMEType: "text/plain",
		Action:   action,
		Pager:    "less",
		XTermCmd: "xterm",
	}
}

func resolve(t *testing.T, rc types.Context, isatty bool, entries []Entry) (string, bool) {
	t.Helper()
	return NewResolver(&fakeEvaluator{}).Resolve(context.Background(), rc, isatty, entries)
}

func TestResolver_ActionSelection(t *testing.T) {
	entries := []Entry{
		{View: "cat '%s'"},
		{Edit: "vim '%s'"},
	}

	command, ok := resolve(t, newContext(types.ActionView), false, entries)
	assert.True(t, ok)
	assert.Equal(t, "cat 'test.txt'", command)

	command, ok = resolve(t, newContext(types.ActionEdit), false, entries)
	assert.True(t, ok)
	assert.Equal(t, "vim 'test.txt'", command)

	command, ok = resolve(t, newContext(types.ActionCompose), false, entries)
	assert.False(t, ok)
	assert.Empty(t, command)
}

func TestResolver_EachActionUsesItsTemplate(t *testing.T) {
	entry := Entry{
		View:          "view %s",
		Edit:          "edit %s",
		Compose:       "compose %s",
		Print:         "print %s",
		CopiousOutput: true,
	}

	tests := []struct {
		action types.Action
		want   string
	}{
		{types.ActionView, "view test.txt|less"},
		{types.ActionCat, "view test.txt"},
		{types.ActionEdit, "edit test.txt"},
		{types.ActionCompose, "compose test.txt"},
		{types.ActionPrint, "print test.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			command, ok := resolve(t, newContext(tt.action), false, []Entry{entry})
			assert.True(t, ok)
			assert.Equal(t, tt.want, command)
		})
	}
}

func TestResolver_CatRequiresCopiousOutput(t *testing.T) {
	entries := []Entry{
		{View: "xdg-open '%s'"},
		{View: "cat '%s'", CopiousOutput: true},
	}

	command, ok := resolve(t, newContext(types.ActionCat), false, entries)
	assert.True(t, ok)
	assert.Equal(t, "cat 'test.txt'", command, "cat never pipes into the pager")

	_, ok = resolve(t, newContext(types.ActionCat), false, entries[:1])
	assert.False(t, ok)
}

func TestResolver_Pager(t *testing.T) {
	entries := []Entry{{View: "cat '%s'", CopiousOutput: true}}

	rc := newContext(types.ActionView)
	command, ok := resolve(t, rc, false, entries)
	assert.True(t, ok)
	assert.Equal(t, "cat 'test.txt'|less", command)

	rc.NoPager = true
	command, ok = resolve(t, rc, false, entries)
	assert.True(t, ok)
	assert.Equal(t, "cat 'test.txt'", command)

	rc.NoPager = false
	rc.Pager = "most -s"
	command, _ = resolve(t, rc, false, entries)
	assert.Equal(t, "cat 'test.txt'|most -s", command)

	rc.Pager = ""
	command, ok = resolve(t, rc, false, entries)
	assert.True(t, ok)
	assert.Equal(t, "cat 'test.txt'", command)
}

func TestResolver_NeedsTerminal(t *testing.T) {
	entries := []Entry{{View: "vim '%s'", Edit: "vim '%s'", Print: "lp '%s'", NeedsTerminal: true}}

	t.Run("attached to a terminal", func(t *testing.T) {
		command, ok := resolve(t, newContext(types.ActionView), true, entries)
		assert.True(t, ok)
		assert.Equal(t, "vim 'test.txt'", command)
	})

	t.Run("running in X wraps in a terminal emulator", func(t *testing.T) {
		rc := newContext(types.ActionEdit)
		rc.RunningInX = true
		rc.XTermCmd = "urxvt"

		command, ok := resolve(t, rc, false, entries)
		assert.True(t, ok)
		assert.Equal(t, `urxvt -T "vim 'test.txt'" -e sh -c "vim 'test.txt'"`, command)
	})

	t.Run("no terminal and no display gives up", func(t *testing.T) {
		command, ok := resolve(t, newContext(types.ActionView), false, entries)
		assert.False(t, ok)
		assert.Empty(t, command)
	})

	t.Run("giving up does not fall through to later entries", func(t *testing.T) {
		withFallback := append([]Entry{}, entries...)
		withFallback = append(withFallback, Entry{View: "cat '%s'"})

		_, ok := resolve(t, newContext(types.ActionView), false, withFallback)
		assert.False(t, ok)
	})

	t.Run("print ignores the terminal requirement", func(t *testing.T) {
		command, ok := resolve(t, newContext(types.ActionPrint), false, entries)
		assert.True(t, ok)
		assert.Equal(t, "lp 'test.txt'", command)
	})
}

func TestResolver_PagerThenTerminalWrap(t *testing.T) {
	entries := []Entry{{View: "cat '%s'", CopiousOutput: true, NeedsTerminal: true}}
	rc := newContext(types.ActionView)
	rc.RunningInX = true

	command, ok := resolve(t, rc, false, entries)
	assert.True(t, ok)
	assert.Equal(t, `xterm -T "cat 'test.txt'|less" -e sh -c "cat 'test.txt'|less"`, command)
}

func TestResolver_Tests(t *testing.T) {
	entries := []Entry{
		{View: "feh '%s'", Test: `test -n "$DISPLAY"`},
		{View: "img2txt '%s'", Test: "test %t = text/plain"},
		{View: "hexdump '%s'"},
	}

	t.Run("failed tests skip to the next entry", func(t *testing.T) {
		fake := &fakeEvaluator{}
		command, ok := NewResolver(fake).Resolve(context.Background(), newContext(types.ActionView), false, entries)

		assert.True(t, ok)
		assert.Equal(t, "hexdump 'test.txt'", command)
		assert.Equal(t, []string{`test -n "$DISPLAY"`, "test text/plain = text/plain"}, fake.commands)
	})

	t.Run("first passing test wins and stops the scan", func(t *testing.T) {
		fake := &fakeEvaluator{pass: map[string]bool{`test -n "$DISPLAY"`: true}}
		command, ok := NewResolver(fake).Resolve(context.Background(), newContext(types.ActionView), false, entries)

		assert.True(t, ok)
		assert.Equal(t, "feh 'test.txt'", command)
		assert.Len(t, fake.commands, 1)
	})

	t.Run("tests are not run for entries without the action", func(t *testing.T) {
		fake := &fakeEvaluator{}
		_, ok := NewResolver(fake).Resolve(context.Background(), newContext(types.ActionEdit), false, entries)

		assert.False(t, ok)
		assert.Empty(t, fake.commands)
	})
}

func TestResolver_NoEntries(t *testing.T) {
	_, ok := resolve(t, newContext(types.ActionView), true, nil)
	assert.False(t, ok)
}

func TestResolver_QuotesFilename(t *testing.T) {
	rc := newContext(types.ActionView)
	rc.Filename = "fo'o.txt"

	command, ok := resolve(t, rc, false, []Entry{{View: "cat '%s'"}})
	assert.True(t, ok)
	assert.Equal(t, `cat 'fo'\''o.txt'`, command)
}

func TestWrapInTerminal(t *testing.T) {
	assert.Equal(t, `xterm -T "less 'a'" -e sh -c "less 'a'"`, WrapInTerminal("xterm", "less 'a'"))

	// the command is not escaped for the outer double quotes
	assert.Equal(t, `xterm -T "less '$(id).txt'" -e sh -c "less '$(id).txt'"`,
		WrapInTerminal("xterm", "less '$(id).txt'"))
}

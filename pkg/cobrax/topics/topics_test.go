package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() fstest.MapFS {
	return fstest.MapFS{
		"mailcap-format.md":       {Data: []byte("# Mailcap format\n\nOne entry per line.")},
		"placeholders.txt":        {Data: []byte("%s is the file name")},
		"option-norun.md":         {Data: []byte("Print the command instead of running it")},
		"nested/search-path.md":   {Data: []byte("MAILCAPS replaces the search list")},
		"notes.json":              {Data: []byte("{}")},
		"nested/ignored.markdown": {Data: []byte("not a topic")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testSource())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"mailcap-format", true, "# Mailcap format\n\nOne entry per line."},
			{"placeholders", true, "%s is the file name"},
			{"search-path", true, "MAILCAPS replaces the search list"},
			{"notes", false, ""},
			{"ignored", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testSource(), Options{Extensions: []string{".markdown"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"ignored"}, tm.ListTopics())
	})

	t.Run("nil source has no topics", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(testSource())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"option-norun", "norun", "--norun", "-norun"} {
		topic, exists := tm.GetTopic(name)
		require.True(t, exists, name)
		assert.Equal(t, "option-norun", topic.Name)
	}

	_, exists := tm.GetTopic("missing")
	assert.False(t, exists)
}

func TestTopicManager_ListTopics(t *testing.T) {
	tm := New(testSource())
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"mailcap-format", "option-norun", "placeholders", "search-path"}, tm.ListTopics())
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "run-mailcap", Short: "Run the mailcap command for a file"}
	root.AddCommand(&cobra.Command{Use: "gen-config", Short: "Print a configuration file", Run: func(*cobra.Command, []string) {}})

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)

	require.NoError(t, Initialize(root, testSource()))
	return root, out
}

func TestIntegration_HelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "placeholders"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "%s is the file name", out.String())
	})

	t.Run("flag topic", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "--", "--norun"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Print the command instead of running it")
	})

	t.Run("topic list", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())

		listing := out.String()
		assert.Contains(t, listing, "General topics:\n  mailcap-format\n  placeholders\n  search-path\n")
		assert.Contains(t, listing, "Option topics:\n  --norun\n")
		assert.Contains(t, listing, "Use 'run-mailcap help <topic>'")
	})

	t.Run("command", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "gen-config"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Print a configuration file")
	})

	t.Run("no arguments", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Run the mailcap command for a file")
	})
}

func TestRenderers(t *testing.T) {
	plain := &PlainRenderer{}
	assert.Equal(t, "# Title", plain.Render("# Title", ".md"))

	glamour := &GlamourRenderer{Style: "notty", Width: 60}
	assert.Equal(t, "plain text", glamour.Render("plain text", ".txt"))

	rendered := glamour.Render("# Title\n\nSome *text*.", ".md")
	assert.Contains(t, rendered, "Title")
	assert.False(t, strings.HasPrefix(rendered, "# Title\n"), "markdown is rendered")
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input  string
		want   Action
		wantOK bool
	}{
		{"view", ActionView, true},
		{"cat", ActionCat, true},
		{"edit", ActionEdit, true},
		{"compose", ActionCompose, true},
		{"print", ActionPrint, true},
		{"", ActionView, false},
		{"EDIT", ActionView, false},
		{"bogus", ActionView, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseAction(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestActionFromProgramName(t *testing.T) {
	tests := []struct {
		argv0 string
		want  Action
	}{
		{"run-mailcap", ActionView},
		{"see", ActionView},
		{"change", ActionEdit},
		{"create", ActionCompose},
		{"compose", ActionCompose},
		{"/usr/bin/compose", ActionCompose},
		{"/usr/local/bin/print", ActionPrint},
		{"cat", ActionCat},
		{"edit", ActionEdit},
		{"see-rs", ActionView},
		{"change-rs", ActionEdit},
		{"/opt/bin/create-go", ActionCompose},
		{"print-new", ActionPrint},
		{"cat-v2.sh", ActionCat},
		{"mailcap-print", ActionView},
		{"-edit", ActionView},
	}

	for _, tt := range tests {
		t.Run(tt.argv0, func(t *testing.T) {
			assert.Equal(t, tt.want, ActionFromProgramName(tt.argv0))
		})
	}
}

func TestActionString(t *testing.T) {
	for _, name := range []string{"view", "cat", "edit", "compose", "print"} {
		action, ok := ParseAction(name)
		assert.True(t, ok)
		assert.Equal(t, name, action.String())
	}
	assert.Equal(t, "unknown", Action(42).String())
}

package mailcap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchType(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		subject string
		want    bool
	}{
		{"exact", "text/plain", "text/plain", true},
		{"different subtype", "text/plain", "text/html", false},
		{"different type", "text/plain", "image/plain", false},
		{"wildcard subtype", "text/*", "text/html", true},
		{"wildcard subtype other type", "text/*", "image/png", false},
		{"wildcard type", "*/plain", "text/plain", true},
		{"wildcard both", "*/*", "video/x-matroska", true},
		{"case sensitive", "Text/Plain", "text/plain", false},
		{"single component pattern", "text", "text/plain", false},
		{"bare wildcard", "*", "text/plain", false},
		{"three component pattern", "text/plain/extra", "text/plain", false},
		{"empty pattern", "", "text/plain", false},
		{"comment marker is part of the type", "#text/plain", "text/plain", false},
		{"only first two subject components compared", "text/plain", "text/plain/extra", true},
		{"short subject", "text/*", "text", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchType(tt.pattern, tt.subject))
		})
	}
}

func TestMatchType_Law(t *testing.T) {
	components := []string{"text", "plain", "*", "image", ""}
	subjects := []string{"text/plain", "image/png", "text/html", "application/octet-stream"}

	for _, a := range components {
		for _, b := range components {
			pattern := a + "/" + b
			for _, subject := range subjects {
				parts := strings.SplitN(subject, "/", 2)
				want := (a == "*" || a == parts[0]) && (b == "*" || b == parts[1])
				assert.Equal(t, want, MatchType(pattern, subject), "%s vs %s", pattern, subject)
			}
		}
	}
}

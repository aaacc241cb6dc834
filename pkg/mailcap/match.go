package mailcap

import "strings"

// MatchType reports whether the database pattern matches the concrete MIME
// type subject. Components are compared byte for byte, a * component in the
// pattern matches anything. The pattern must have exactly two components;
// at most the first two components of subject take part in the comparison.
func MatchType(pattern, subject string) bool {
	patternParts := strings.Split(pattern, "/")
	if len(patternParts) != 2 {
		return false
	}

	subjectParts := strings.Split(subject, "/")
	for i := 0; i < len(patternParts) && i < len(subjectParts); i++ {
		if patternParts[i] != "*" && patternParts[i] != subjectParts[i] {
			return false
		}
	}
	return true
}

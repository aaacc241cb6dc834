package mailcap

import "strings"

// substState is the scanner state of the placeholder substitution engine
type substState int

const (
	// statePlain copies characters through
	statePlain substState = iota
	// stateAfterPercent has seen a % that introduces a placeholder
	stateAfterPercent
	// stateAfterBackslash has seen a \ that may escape the next character
	stateAfterBackslash
)

// substituter carries the scanner state across characters
type substituter struct {
	state         substState
	inSingleQuote bool
	filename      string
	mimeType      string
	out           strings.Builder
}

// Substitute expands the placeholders of a command template:
//
//	%s  the filename, with embedded single quotes escaped for the quoting
//	    context the placeholder appears in
//	%t  the MIME type, verbatim
//	%%  a literal %
//	\%  a literal %
//	\\  a literal \
//
// Any other sequence is copied through unchanged. A trailing lone % or \ is
// dropped. Substitute never fails.
func Substitute(template, filename, mimeType string) string {
	s := &substituter{
		filename: filename,
		mimeType: mimeType,
	}
	s.out.Grow(len(template) + len(filename))

	for _, c := range template {
		s.step(c)
	}
	return s.out.String()
}

// step is the transition function: it consumes one character in the
// current state, emits output and moves to the next state.
func (s *substituter) step(c rune) {
	switch s.state {
	case statePlain:
		switch c {
		case '%':
			s.state = stateAfterPercent
		case '\\':
			s.state = stateAfterBackslash
		case '\'':
			s.inSingleQuote = !s.inSingleQuote
			s.out.WriteRune(c)
		default:
			s.out.WriteRune(c)
		}

	case stateAfterPercent:
		switch c {
		case 's':
			s.out.WriteString(quoteFilename(s.filename, s.inSingleQuote))
			s.state = statePlain
		case 't':
			s.out.WriteString(s.mimeType)
			s.state = statePlain
		case '%':
			// a run of % collapses pairwise
			s.out.WriteByte('%')
		default:
			s.out.WriteByte('%')
			s.out.WriteRune(c)
			s.state = statePlain
		}

	case stateAfterBackslash:
		switch c {
		case '%':
			s.out.WriteByte('%')
			s.state = statePlain
		case '\\':
			s.out.WriteByte('\\')
		default:
			s.out.WriteByte('\\')
			s.out.WriteRune(c)
			s.state = statePlain
		}
	}
}

// quoteFilename escapes the single quotes of filename. Inside a single-quoted
// string a quote has to close the string, add an escaped quote and reopen it.
func quoteFilename(filename string, inSingleQuote bool) string {
	if inSingleQuote {
		return strings.ReplaceAll(filename, "'", `'\''`)
	}
	return strings.ReplaceAll(filename, "'", `\'`)
}

package mailcap

import (
	"bufio"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/run-mailcap/pkg/errors"
	"github.com/arthur-debert/run-mailcap/pkg/logging"
	"github.com/arthur-debert/run-mailcap/pkg/types"
)

// maxLineSize bounds a single physical database line
const maxLineSize = 1024 * 1024

// Parser reads mailcap databases through a types.FS
type Parser struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewParser creates a parser reading from fsys
func NewParser(fsys types.FS) *Parser {
	return &Parser{
		fs:     fsys,
		logger: logging.GetLogger("mailcap.parser"),
	}
}

// Load reads every database in paths, in order, and returns the entries
// matching mimeType in file-then-line order. Paths that cannot be opened are
// skipped. When none of them can be opened the error has code
// ErrDatabaseNotFound; an empty result without error means the databases
// exist but nothing matched.
func (p *Parser) Load(paths []string, mimeType string) ([]Entry, error) {
	var entries []Entry
	opened := 0

	for _, path := range paths {
		file, err := p.fs.Open(path)
		if err != nil {
			p.logger.Debug().Err(err).Str("path", path).Msg("Skipping mailcap file")
			continue
		}
		opened++

		before := len(entries)
		err = ScanLogicalLines(file, func(line string) {
			if entry, ok := ParseLine(line, mimeType); ok {
				entry.Source = path
				entries = append(entries, entry)
			}
		})
		_ = file.Close()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDatabaseRead, "failed to read %s", path).
				WithDetail("path", path)
		}

		p.logger.Debug().
			Str("path", path).
			Int("matches", len(entries)-before).
			Msg("Read mailcap file")
	}

	if opened == 0 {
		return nil, errors.New(errors.ErrDatabaseNotFound, "no usable mailcap file found").
			WithDetail("paths", paths)
	}

	return entries, nil
}

// ScanLogicalLines reads r and calls fn for every logical line that is not a
// comment. Physical lines ending in an unescaped backslash are joined with
// the next one, the backslash itself is dropped. A continuation still open
// at end of input is discarded.
func ScanLogicalLines(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var logical strings.Builder
	for scanner.Scan() {
		logical.WriteString(scanner.Text())

		line := logical.String()
		if endsWithContinuation(line) {
			logical.Reset()
			logical.WriteString(line[:len(line)-1])
			continue
		}
		logical.Reset()

		if strings.HasPrefix(line, "#") {
			continue
		}
		fn(line)
	}
	return scanner.Err()
}

// endsWithContinuation reports whether line ends in an odd run of
// backslashes, that is a backslash that is not itself escaped.
func endsWithContinuation(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// ParseLine parses one logical line. It returns false when the line's type
// pattern does not match mimeType or when the line has no command field.
func ParseLine(line, mimeType string) (Entry, bool) {
	fields := strings.Split(line, ";")

	// hand-edited files often pad the type, "text/plain ; less" still matches
	pattern := strings.TrimSpace(fields[0])
	if !MatchType(pattern, mimeType) || len(fields) < 2 {
		return Entry{}, false
	}

	entry := Entry{
		MIMEType: pattern,
		View:     strings.TrimSpace(fields[1]),
	}

	for _, field := range fields[2:] {
		key, value, keyed := strings.Cut(field, "=")
		key = strings.TrimSpace(key)

		if keyed {
			switch key {
			case "edit":
				entry.Edit = value
			case "compose":
				entry.Compose = value
			case "print":
				entry.Print = value
			case "test":
				entry.Test = value
			}
			continue
		}

		switch key {
		case "needsterminal":
			entry.NeedsTerminal = true
		case "copiousoutput":
			entry.CopiousOutput = true
		}
	}

	return entry, true
}

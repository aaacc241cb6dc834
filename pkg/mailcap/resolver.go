package mailcap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/run-mailcap/pkg/logging"
	"github.com/arthur-debert/run-mailcap/pkg/types"
)

// Resolver picks the command for a file from its candidate entries
type Resolver struct {
	evaluator Evaluator
	logger    zerolog.Logger
}

// NewResolver creates a resolver running entry tests with evaluator
func NewResolver(evaluator Evaluator) *Resolver {
	return &Resolver{
		evaluator: evaluator,
		logger:    logging.GetLogger("mailcap.resolver"),
	}
}

// Resolve walks entries in priority order and returns the command line of
// the first one that supports the requested action and passes its test.
// isatty tells whether stdout is already a terminal. The boolean is false
// when no command should be run, which is not an error: either nothing
// matched or a terminal is required and none can be provided.
func (r *Resolver) Resolve(ctx context.Context, rc types.Context, isatty bool, entries []Entry) (string, bool) {
	done := logging.LogOperationStart(r.logger, "resolve")
	defer done()

	for i, entry := range entries {
		logger := r.logger.With().
			Int("entry", i).
			Str("type", entry.MIMEType).
			Str("source", entry.Source).
			Logger()

		template := entry.Template(rc.Action)
		if template == "" {
			logger.Debug().Str("action", rc.Action.String()).Msg("Skipping entry without command for action")
			continue
		}

		if rc.Action == types.ActionCat && !entry.CopiousOutput {
			logger.Debug().Msg("Skipping entry without copiousoutput for cat")
			continue
		}

		command := Substitute(template, rc.Filename, rc.MIMEType)

		if !EvaluateTest(ctx, r.evaluator, entry.Test, rc.Filename, rc.MIMEType) {
			logger.Debug().Str("test", entry.Test).Msg("Skipping entry whose test failed")
			continue
		}

		if entry.CopiousOutput && rc.Action == types.ActionView && !rc.NoPager && rc.Pager != "" {
			command = command + "|" + rc.Pager
		}

		if entry.NeedsTerminal && rc.Action != types.ActionPrint {
			switch {
			case isatty:
				// already attached to a terminal
			case rc.RunningInX:
				command = WrapInTerminal(rc.XTermCmd, command)
			default:
				logger.Info().Msg("Entry needs a terminal but none is available")
				return "", false
			}
		}

		logger.Debug().Str("command", command).Msg("Resolved command")
		return command, true
	}

	r.logger.Debug().Int("entries", len(entries)).Msg("No entry produced a command")
	return "", false
}

// WrapInTerminal builds the command line that runs command in a new window of
// the xterm-compatible terminal emulator xtermCmd, titled with the command.
//
// command is placed verbatim inside double quotes. The shell running the
// result therefore expands $, backquotes and \ in it, including in a
// substituted filename that %s had protected with single quotes. Files whose
// names contain those characters should not be opened through needsterminal
// entries under X.
func WrapInTerminal(xtermCmd, command string) string {
	return fmt.Sprintf(`%s -T "%s" -e sh -c "%s"`, xtermCmd, command, command)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/run-mailcap/pkg/config"
	"github.com/arthur-debert/run-mailcap/pkg/errors"
	"github.com/arthur-debert/run-mailcap/pkg/executor"
	"github.com/arthur-debert/run-mailcap/pkg/logging"
	"github.com/arthur-debert/run-mailcap/pkg/mailcap"
	"github.com/arthur-debert/run-mailcap/pkg/mimetype"
	"github.com/arthur-debert/run-mailcap/pkg/types"
	"github.com/arthur-debert/run-mailcap/pkg/ui"
	"github.com/arthur-debert/run-mailcap/pkg/ui/display"
)

// ExitStatusError carries the non-zero exit status of the command that was
// run, main exits with it
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf(MsgExitStatusFmt, e.Code)
}

// loadConfig merges the configuration with the flags the user set
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	overrides := map[string]interface{}{}
	set := func(name, key string, value interface{}) {
		if fl := cmd.Flags().Lookup(name); fl != nil && fl.Changed {
			overrides[key] = value
		}
	}
	set("debug", "debug", f.debug)
	set("nopager", "nopager", f.noPager)
	set("norun", "norun", f.noRun)
	set("format", "format", f.format)
	set("test-timeout", "test_timeout", f.testTimeout)

	return config.Load(config.Options{
		ConfigFile: f.configFile,
		Overrides:  overrides,
	})
}

// selectAction applies --action over the action named by the program
func selectAction(programName, flagValue string) types.Action {
	action := types.ActionFromProgramName(programName)
	if flagValue == "" {
		return action
	}
	if parsed, ok := types.ParseAction(flagValue); ok {
		return parsed
	}
	logger := logging.GetLogger("cmd.resolve")
	logger.Warn().Str("action", flagValue).Msg(MsgUnknownAction)
	return types.ActionView
}

// runResolve detects the type of the file, resolves the mailcap command and
// runs or prints it
func runResolve(cmd *cobra.Command, args []string, opts *Options, f *flags) error {
	logger := logging.GetLogger("cmd.resolve")

	if len(args) == 0 {
		_ = cmd.Usage()
		return errors.New(errors.ErrInvalidInput, MsgNoFileGiven)
	}
	filename := args[0]

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	action := selectAction(opts.ProgramName, f.action)

	mimeType := f.mimeType
	if mimeType == "" {
		detector := mimetype.NewDetector(opts.FS, mimetype.Options{
			MimeTypesPaths: cfg.MimeTypesPaths,
			SharedMIMEDirs: cfg.SharedMIMEPaths,
		})
		if mimeType, err = detector.Detect(filename); err != nil {
			return err
		}
	}

	logger.Info().
		Str("file", filename).
		Str("type", mimeType).
		Str("action", action.String()).
		Msg("Resolving mailcap command")

	entries, err := mailcap.NewParser(opts.FS).Load(cfg.MailcapPaths, mimeType)
	if err != nil {
		return err
	}

	rc := cfg.ToContext(filename, mimeType, action)

	if rc.Debug {
		if err := renderDebug(cfg, rc, entries, opts); err != nil {
			return err
		}
	}

	evaluator := opts.Evaluator
	if evaluator == nil {
		evaluator = mailcap.NewShellEvaluator(cfg.TestTimeout)
	}

	command, ok := mailcap.NewResolver(evaluator).Resolve(cmd.Context(), rc, opts.IsTerminal(), entries)
	if !ok {
		logger.Info().Str("type", mimeType).Msg(MsgNoCommand)
		return nil
	}

	runner := executor.New(executor.Options{
		DryRun: rc.NoRun,
		Logger: logging.GetLogger("executor"),
		Stdin:  opts.Stdin,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})
	result, err := runner.Run(cmd.Context(), command)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return &ExitStatusError{Code: result.ExitCode}
	}
	return nil
}

func renderDebug(cfg *config.Config, rc types.Context, entries []mailcap.Entry, opts *Options) error {
	format, err := ui.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, opts.Stdout)
	if err != nil {
		return err
	}
	return renderer.RenderResult(&display.DebugReport{
		Filename:     rc.Filename,
		MIMEType:     rc.MIMEType,
		Action:       rc.Action.String(),
		MailcapPaths: cfg.MailcapPaths,
		Entries:      entries,
	})
}

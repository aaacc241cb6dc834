// Package commands builds the run-mailcap command line interface
package commands

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/run-mailcap/cmd/run-mailcap/commands/topics"
	"github.com/arthur-debert/run-mailcap/internal/version"
	cobratopics "github.com/arthur-debert/run-mailcap/pkg/cobrax/topics"
	"github.com/arthur-debert/run-mailcap/pkg/filesystem"
	"github.com/arthur-debert/run-mailcap/pkg/logging"
	"github.com/arthur-debert/run-mailcap/pkg/mailcap"
	"github.com/arthur-debert/run-mailcap/pkg/paths"
	"github.com/arthur-debert/run-mailcap/pkg/types"
	"github.com/arthur-debert/run-mailcap/pkg/ui"
)

// Options are the collaborators of the command tree. Zero values select the
// real process environment.
type Options struct {
	// ProgramName is argv[0], it selects the default action
	ProgramName string

	FS     types.FS
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// IsTerminal reports whether stdout is a terminal
	IsTerminal func() bool

	// Evaluator runs test= commands, a shell evaluator when nil
	Evaluator mailcap.Evaluator
}

func (o *Options) setDefaults() {
	if o.ProgramName == "" {
		o.ProgramName = os.Args[0]
	}
	if o.FS == nil {
		o.FS = filesystem.NewOS()
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.IsTerminal == nil {
		o.IsTerminal = func() bool { return ui.IsTerminal(os.Stdout) }
	}
}

// flags holds the values of the root command's flags
type flags struct {
	verbosity   int
	action      string
	mimeType    string
	debug       bool
	noPager     bool
	noRun       bool
	format      string
	configFile  string
	testTimeout time.Duration
}

// NewRootCmd creates and returns the root command for the running process
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command with explicit collaborators
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	opts.setDefaults()

	// Initialize custom template formatting functions
	initTemplateFormatting()

	f := &flags{}

	rootCmd := &cobra.Command{
		Use:     "run-mailcap [flags] FILE",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(f.verbosity, paths.New().LogFilePath())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, &opts, f)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.SetIn(opts.Stdin)
	rootCmd.SetOut(opts.Stdout)
	rootCmd.SetErr(opts.Stderr)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&f.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&f.configFile, "config", "", MsgFlagConfig)

	// Resolution flags
	rootCmd.Flags().StringVar(&f.action, "action", "", MsgFlagAction)
	rootCmd.Flags().StringVarP(&f.mimeType, "type", "t", "", MsgFlagType)
	rootCmd.Flags().BoolVar(&f.debug, "debug", false, MsgFlagDebug)
	rootCmd.Flags().BoolVar(&f.noPager, "nopager", false, MsgFlagNoPager)
	rootCmd.Flags().BoolVar(&f.noRun, "norun", false, MsgFlagNoRun)
	rootCmd.Flags().StringVar(&f.format, "format", "auto", MsgFlagFormat)
	rootCmd.Flags().DurationVar(&f.testTimeout, "test-timeout", 0, MsgFlagTestTimeout)

	_ = rootCmd.RegisterFlagCompletionFunc("action", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"view", "cat", "edit", "compose", "print"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenConfigCmd(f))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Initialize topic-based help system
	topicOpts := cobratopics.Options{
		Extensions: []string{".md"},
		Renderer:   cobratopics.NewGlamourRenderer(),
	}
	if err := cobratopics.InitializeWithOptions(rootCmd, topics.FS, topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

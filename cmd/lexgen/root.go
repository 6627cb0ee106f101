package main

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pradeesh-kumar/lex-engine/config"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	flags      generateFlags

	// resolved by setup
	cfg    config.Config
	logger *zap.Logger
}

type generateFlags struct {
	spec       string
	outputDir  string
	template   string
	encoding   string
	noMinimize bool
	maxStates  int
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lexgen",
		Short:         "lexgen - generate table-driven lexers from regular expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// no flags: display help
			if cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			return a.generate(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", config.FileName, "configuration file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&a.flags.spec, "spec", "s", "", "lexer specification file")
	pf.StringVarP(&a.flags.outputDir, "output-directory", "d", "", "directory receiving the generated lexer")
	pf.StringVarP(&a.flags.template, "template", "t", "", "custom scanner template file")
	pf.StringVar(&a.flags.template, "scanner-class-file", "", "alias of --template")
	_ = pf.MarkHidden("scanner-class-file")
	pf.StringVarP(&a.flags.encoding, "encoding", "e", "", "character set of the specification file")
	pf.BoolVar(&a.flags.noMinimize, "no-minimize", false, "skip DFA minimization")
	pf.IntVar(&a.flags.maxStates, "max-states", 0, "maximum number of DFA states (0 = unlimited)")

	root.AddCommand(newGenerateCmd(a), newInitCmd(a), newCheckCmd(a))
	return root
}

// setup resolves the configuration: file values first, then flags set on
// the command line. init starts from the defaults instead of the file it is
// about to write.
func (a *app) setup(cmd *cobra.Command) error {
	c := config.Default()
	if cmd.Name() != "init" {
		var err error
		c, err = config.Load(a.configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
			c = config.Default()
		case err != nil:
			return err
		}
	}

	f := cmd.Flags()
	if f.Changed("spec") {
		c.Spec = a.flags.spec
	}
	if f.Changed("output-directory") {
		c.OutputDirectory = a.flags.outputDir
	}
	if f.Changed("template") || f.Changed("scanner-class-file") {
		c.Template = a.flags.template
	}
	if f.Changed("encoding") {
		c.Encoding = a.flags.encoding
	}
	if f.Changed("verbose") {
		c.Verbose = a.verbose
	}
	if f.Changed("no-minimize") {
		c.Minimize = !a.flags.noMinimize
	}
	if f.Changed("max-states") {
		c.MaxStates = a.flags.maxStates
	}
	if err := c.Validate(); err != nil {
		return err
	}
	a.cfg = c

	if a.logger == nil {
		logger, err := newLogger(c.Verbose)
		if err != nil {
			return err
		}
		a.logger = logger
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

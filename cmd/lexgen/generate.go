package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	lexengine "github.com/pradeesh-kumar/lex-engine"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the lexer source for a specification file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd)
		},
	}
}

func (a *app) generate(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	printBanner(out)

	a.logger.Debug("generating lexer",
		zap.String("spec", a.cfg.Spec),
		zap.String("outputDirectory", a.cfg.OutputDirectory),
		zap.Bool("minimize", a.cfg.Minimize))

	path, err := lexengine.Generate(a.cfg.GenerateOptions(a.logger))
	if err != nil {
		return err
	}
	successStyle.Fprintf(out, "generated %s\n", path)
	return nil
}

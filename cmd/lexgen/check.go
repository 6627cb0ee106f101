package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	lexengine "github.com/pradeesh-kumar/lex-engine"
	"github.com/pradeesh-kumar/lex-engine/spec"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <spec> <input>...",
		Short: "Report which rule of a specification accepts each input",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := spec.ParseFile(args[0], a.cfg.Encoding)
			if err != nil {
				return err
			}
			lx, err := lexengine.CompileSpec(s, a.cfg.Engine(a.logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, in := range args[1:] {
				fileStyle.Fprint(out, strconv.Quote(in))
				fmt.Fprint(out, "\t")
				if action, ok := lx.Match(in); ok {
					acceptStyle.Fprintln(out, action)
				} else {
					errorStyle.Fprintln(out, "rejected")
				}
			}
			return nil
		},
	}
}

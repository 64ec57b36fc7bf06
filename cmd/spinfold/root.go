package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spinfold/internal/logger"
)

type rootFlags struct {
	themePath string
	scale     float64
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "spinfold",
		Short:         "Spinfold renders animated fold-out numeric buttons in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Running with no subcommand launches the demo.
			if len(args) == 0 {
				return runDemo(log, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.themePath, "theme", "", "Path to a YAML theme file")
	cmd.PersistentFlags().Float64Var(&flags.scale, "scale", 1.0, "Global scale multiplier applied to every button")

	cmd.AddCommand(newDemoCmd(log, flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Package main provides the tensorkata CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tensorkata/tensorkata/internal/render"
	"github.com/tensorkata/tensorkata/puzzles"
)

const version = "v0.1.0"

var logger *zap.Logger

func main() {
	verbose := false
	root := newRootCmd(&verbose)

	cobra.OnInitialize(func() {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(verbose *bool) *cobra.Command {
	reg := puzzles.NewRegistry()

	root := &cobra.Command{
		Use:           "kata",
		Short:         "Closed-form tensor puzzle solutions",
		Long:          "kata evaluates the twenty-one classic array-programming puzzles,\neach solved as a single closed-form tensor expression.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(newListCmd(reg))
	root.AddCommand(newShowCmd(reg))
	root.AddCommand(newRunCmd(reg))
	root.AddCommand(newVersionCmd())

	return root
}

func newListCmd(reg *puzzles.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all puzzles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range reg.Names() {
				p, _ := reg.Get(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", p.Name, p.Brief)
			}
			return nil
		},
	}
}

func newShowCmd(reg *puzzles.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "show <puzzle>",
		Short: "Show a puzzle's contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := reg.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown puzzle: %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n  %s\n\n  contract: %s\n", p.Name, p.Brief, p.Contract)
			return nil
		},
	}
}

func newRunCmd(reg *puzzles.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "run <puzzle>",
		Short: "Evaluate a puzzle on its sample input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				logger.Info("running puzzle", zap.String("name", args[0]))
			}

			demo, err := reg.Run(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, in := range demo.Inputs {
				fmt.Fprintf(out, "%s:\n%s\n", in.Label, render.Text(in.Value))
			}
			fmt.Fprintf(out, "%s:\n%s", demo.Output.Label, render.Text(demo.Output.Value))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tensorkata %s\n", version)
		},
	}
}

// Package main provides the cgtrain CLI: conjugate-gradient training of the
// built-in benchmark objectives from a YAML configuration.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/born-ml/cgtrain/functional"
	"github.com/born-ml/cgtrain/linesearch"
	"github.com/born-ml/cgtrain/train"
)

const version = "v0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cgtrain",
		Short:         "Conjugate-gradient trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newVersionCmd(), newTrainCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cgtrain %s\n", version)
		},
	}
}

func newTrainCmd() *cobra.Command {
	var (
		configPath string
		objective  string
		dimension  int
		search     string
		checkpoint string
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a built-in objective",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := train.DefaultConfig()
			if configPath != "" {
				loaded, err := train.LoadConfig(configPath)
				if err != nil {
					return err
				}
				config = loaded
			}

			f, err := buildObjective(objective, dimension)
			if err != nil {
				return err
			}
			algorithm, err := buildSearch(search)
			if err != nil {
				return err
			}

			cg := train.New(f, algorithm, config)
			cg.SetReporter(train.NewLogReporter(logrus.StandardLogger()))
			if checkpoint != "" {
				cg.SetSaver(&train.FileSaver{Path: checkpoint})
			}

			results, err := cg.PerformTraining()
			if err != nil {
				return err
			}

			for _, row := range train.FinalResultsTable(results, config) {
				fmt.Printf("%-28s %s\n", row[0], row[1])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML trainer configuration")
	cmd.Flags().StringVar(&objective, "objective", "rosenbrock", "objective to minimize (quadratic|rosenbrock)")
	cmd.Flags().IntVar(&dimension, "dim", 2, "objective dimension")
	cmd.Flags().StringVar(&search, "linesearch", "brent", "training rate algorithm (fixed|golden|brent)")
	cmd.Flags().StringVar(&checkpoint, "checkpoint", "", "path for periodic parameter checkpoints")
	return cmd
}

func buildObjective(name string, dimension int) (functional.PerformanceFunctional, error) {
	switch name {
	case "quadratic":
		return functional.NewQuadratic(dimension), nil
	case "rosenbrock":
		return functional.NewRosenbrock(dimension), nil
	default:
		return nil, fmt.Errorf("unknown objective %q", name)
	}
}

func buildSearch(name string) (linesearch.Algorithm, error) {
	switch name {
	case "fixed":
		return &linesearch.Fixed{}, nil
	case "golden":
		return &linesearch.GoldenSection{}, nil
	case "brent":
		return &linesearch.Brent{}, nil
	default:
		return nil, fmt.Errorf("unknown line search %q", name)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voidshard/roadgraph"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roadgraph",
		Short: "Grow & render procedural road networks",
	}

	rootCmd.AddCommand(growCmd())
	rootCmd.AddCommand(renderCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func growCmd() *cobra.Command {
	opts := &growOpts{}

	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a road network & render it to a PNG",
		Long: `Grow runs the growth engine until the requested number of cycles
have run, the network goes quiescent, or it is interrupted (ctrl+c);
then renders the network & prints a small stats report.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGrow(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "yaml config file")
	cmd.Flags().IntVarP(&opts.steps, "steps", "n", 2000, "growth cycles to run (0 = until interrupted)")
	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 0, "rng seed, overrides config (random if 0)")
	cmd.Flags().StringVar(&opts.style, "style", "", fmt.Sprintf("growth style, one of %v, overrides config", roadgraph.AllGrowthStyles()))
	cmd.Flags().StringVarP(&opts.outPNG, "out", "o", "roadgraph.png", "output PNG path")
	cmd.Flags().StringVar(&opts.outJSON, "json", "", "also write the network as json to this path")
	cmd.Flags().IntVar(&opts.size, "size", 1024, "output image size in pixels")

	return cmd
}

func renderCmd() *cobra.Command {
	opts := &renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Re-render a previously saved network json to a PNG",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runRender(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inJSON, "in", "i", "", "network json (see grow --json)")
	cmd.Flags().StringVarP(&opts.outPNG, "out", "o", "roadgraph.png", "output PNG path")
	cmd.Flags().IntVar(&opts.size, "size", 1024, "output image size in pixels")
	cmd.MarkFlagRequired("in")

	return cmd
}

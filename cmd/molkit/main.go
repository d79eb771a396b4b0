// Command molkit is the command-line surface over the molkit library:
// stereocenter perception, molecular formulas, and scalar descriptors for
// SMILES inputs. Results go to stdout; diagnostics go to the structured
// logger. A bad molecule in a batch is logged and skipped, never aborting
// the remaining inputs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "molkit",
	Short: "molkit - molecular graph toolkit",
	Long: `molkit parses SMILES strings and reports stereocenters, molecular
formulas, and scalar descriptors.

Perception is purely topological: 2-D connectivity plus any tetrahedral
marks present in the input. No 3-D coordinates are generated or read.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		if logger, err = config.Build(); err != nil {
			return fmt.Errorf("molkit: init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(centersCmd)
	rootCmd.AddCommand(formulaCmd)
	rootCmd.AddCommand(describeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BerendHuisman/molkit/descriptors"
	"github.com/BerendHuisman/molkit/smiles"
)

var describeCmd = &cobra.Command{
	Use:   "describe SMILES...",
	Short: "Compute every registered scalar descriptor",
	Long: `describe evaluates the full descriptor registry on each molecule
and prints one name/value line per descriptor, in registry order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, smi := range args {
			mol, err := smiles.Parse(smi)
			if err != nil {
				logger.Warn("skipping unparseable SMILES", zap.String("smiles", smi), zap.Error(err))
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), smi)
			for _, d := range descriptors.List() {
				v, err := d.Fn(mol)
				if err != nil {
					logger.Warn("descriptor failed",
						zap.String("smiles", smi), zap.String("descriptor", d.Name), zap.Error(err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-28s %g\n", d.Name, v)
			}
		}

		return nil
	},
}

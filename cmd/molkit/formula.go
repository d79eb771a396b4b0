package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BerendHuisman/molkit/formula"
	"github.com/BerendHuisman/molkit/smiles"
)

var formulaCmd = &cobra.Command{
	Use:   "formula SMILES...",
	Short: "Print Hill-order molecular formulas",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, smi := range args {
			mol, err := smiles.Parse(smi)
			if err != nil {
				logger.Warn("skipping unparseable SMILES", zap.String("smiles", smi), zap.Error(err))
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", smi, formula.CalcMolFormula(mol))
		}

		return nil
	},
}

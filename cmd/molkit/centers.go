package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BerendHuisman/molkit/smiles"
	"github.com/BerendHuisman/molkit/stereo"
)

var (
	centersAll        bool
	centersUnassigned bool
)

var centersCmd = &cobra.Command{
	Use:   "centers SMILES...",
	Short: "Perceive tetrahedral stereocenters",
	Long: `centers prints the perceived stereocenters of each molecule as
(atom index, label) pairs, ascending by atom index. Labels are R, S, or ?
for candidates whose configuration the input never specified.

By default only assigned centers (R/S) are printed; --all includes the
unspecified candidates and --unassigned prints only those.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if centersAll && centersUnassigned {
			return fmt.Errorf("molkit: --all and --unassigned are mutually exclusive")
		}
		for _, smi := range args {
			mol, err := smiles.Parse(smi)
			if err != nil {
				logger.Warn("skipping unparseable SMILES", zap.String("smiles", smi), zap.Error(err))
				continue
			}
			rep, err := stereo.Perceive(mol)
			if err != nil {
				logger.Warn("skipping molecule", zap.String("smiles", smi), zap.Error(err))
				continue
			}

			centers := rep.Assigned()
			switch {
			case centersAll:
				centers = rep.All()
			case centersUnassigned:
				centers = rep.Unassigned()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d center(s)\n", smi, len(centers))
			for _, c := range centers {
				fmt.Fprintf(cmd.OutOrStdout(), "  atom %d\t%s\n", c.AtomIdx, c.Label)
			}
		}

		return nil
	},
}

func init() {
	centersCmd.Flags().BoolVar(&centersAll, "all", false, "include unassigned candidates")
	centersCmd.Flags().BoolVar(&centersUnassigned, "unassigned", false, "print only unassigned candidates")
}

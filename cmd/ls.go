package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rfranks/geneboard/internal/render"
)

var dropAmbiguous bool

// lsCmd is for listing the sequences in the inputs
var lsCmd = &cobra.Command{
	Use:     "ls [files...]",
	Short:   "List the sequences in FASTA, FASTQ, GenBank, SAM/BAM or plain sequence files",
	Aliases: []string{"list"},
	Example: "  geneboard ls seqs.fa plasmid.gb\n  pbpaste | geneboard ls -",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := load(cmd, args)
		if err != nil {
			return err
		}

		if dropAmbiguous {
			removed := store.RemoveAmbiguous()
			logger.Info("removed sequences with ambiguous bases", "count", removed)
		}

		return render.SequenceTable(cmd.OutOrStdout(), store.All(), store.Summary())
	},
}

// set flags
func init() {
	rootCmd.AddCommand(lsCmd)

	lsCmd.Flags().BoolVar(&dropAmbiguous, "drop-ambiguous", false, "remove sequences with bases other than A, T, G, C and U")
}

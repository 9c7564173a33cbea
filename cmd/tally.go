package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rfranks/geneboard/internal/nucleotide"
	"github.com/rfranks/geneboard/internal/render"
)

var tallyFlags windowFlags

// tallyCmd is for counting the bases in a window of a sequence
var tallyCmd = &cobra.Command{
	Use:   "tally [files...]",
	Short: "Count the bases, and GC%, in a window of a sequence",
	Long: `Count the bases, and GC%, in a window of a sequence

A, C and G are always counted. U is shown in place of T whenever the window
has any U. GC% is over the full length of the window, including bases that
aren't counted (like N)`,
	Example: "  geneboard tally seqs.fa -s \"seq1 first sequence\" --start 1 --end 100",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := load(cmd, args)
		if err != nil {
			return err
		}

		s, err := tallyFlags.pick(store)
		if err != nil {
			return err
		}

		return render.TallyTable(cmd.OutOrStdout(), nucleotide.Tally(s.Window(tallyFlags.window())))
	},
}

// set flags
func init() {
	rootCmd.AddCommand(tallyCmd)

	tallyFlags.add(tallyCmd)
}

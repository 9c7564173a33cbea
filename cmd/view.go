package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rfranks/geneboard/internal/render"
)

var (
	viewFlags windowFlags

	viewPage int

	viewTwoBit bool
)

// viewCmd is for printing a window of a sequence, with colored bases
var viewCmd = &cobra.Command{
	Use:     "view [files...]",
	Short:   "Print a window of a sequence, a page of rows at a time",
	Example: "  geneboard view seqs.fa --start 100 --end 400 --width 30 --page 2",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := load(cmd, args)
		if err != nil {
			return err
		}

		s, err := viewFlags.pick(store)
		if err != nil {
			return err
		}

		viewer := render.Viewer{
			Width:  conf.View.Width,
			Rows:   conf.View.Rows,
			TwoBit: viewTwoBit,
		}

		out := cmd.OutOrStdout()
		start, end := s.Bounds(viewFlags.window())
		fmt.Fprintf(out, "%s [%d-%d] (%d bps)\n", s.Description, start+1, end, s.Len())

		pages, err := viewer.Render(out, s, viewFlags.window(), viewPage)
		if err != nil {
			return err
		}
		if pages < 1 {
			pages = 1 // an empty window has one empty page
		}
		if viewPage > pages {
			logger.Warn("page past the last", "page", viewPage, "pages", pages)
		}
		fmt.Fprintf(out, "page %d of %d\n", viewPage, pages)
		return nil
	},
}

// set flags
func init() {
	rootCmd.AddCommand(viewCmd)

	viewFlags.add(viewCmd)
	viewCmd.Flags().IntVarP(&viewPage, "page", "p", 1, "page of rows to print")
	viewCmd.Flags().BoolVar(&viewTwoBit, "twobit", false, "print the 2-bit code of each base")
	viewCmd.Flags().IntP("width", "w", 60, "number of bases in each row")
	viewCmd.Flags().IntP("rows", "r", 20, "number of rows on each page, all of them if 0")

	// Bind the paramters to viper
	viper.BindPFlag("view.width", viewCmd.Flags().Lookup("width"))
	viper.BindPFlag("view.rows", viewCmd.Flags().Lookup("rows"))
}

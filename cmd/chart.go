package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rfranks/geneboard/internal/chart"
	"github.com/rfranks/geneboard/internal/render"
)

var chartFlags windowFlags

// chartCmd is for the series of points of a chart of a sequence
var chartCmd = &cobra.Command{
	Use:   "chart [files...]",
	Short: "Print the points of a chart of a window of a sequence",
	Long: `Print the points of a chart of a window of a sequence

Points are printed as tab separated x and y values. Methods are:
  ` + strings.Join(chart.Names(), ", "),
	Example: "  geneboard chart seqs.fa -m gates --end 1000 > gates.tsv",
	RunE: func(cmd *cobra.Command, args []string) error {
		method, err := chart.Lookup(conf.Chart.Method)
		if err != nil {
			return err
		}

		store, err := load(cmd, args)
		if err != nil {
			return err
		}

		s, err := chartFlags.pick(store)
		if err != nil {
			return err
		}

		xs, ys := method.Compute(s.Window(chartFlags.window()))
		logger.Debug("computed chart", "method", method.Name(), "seq", s.Description, "points", len(xs))
		return render.SeriesTSV(cmd.OutOrStdout(), xs, ys)
	},
}

// set flags
func init() {
	rootCmd.AddCommand(chartCmd)

	chartFlags.add(chartCmd)
	chartCmd.Flags().StringP("method", "m", "squiggle", "chart method, one of "+strings.Join(chart.Names(), ", "))

	// Bind the paramters to viper
	viper.BindPFlag("chart.method", chartCmd.Flags().Lookup("method"))
}

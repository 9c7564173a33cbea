package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rfranks/geneboard/internal/nucleotide"
)

var (
	encodeFlags windowFlags

	encodeHex bool
)

// encodeCmd is for the 2-bit encoding of a window of a sequence
var encodeCmd = &cobra.Command{
	Use:   "encode [files...]",
	Short: "Print the 2-bit codes of a window of a sequence",
	Long: `Print the 2-bit codes of a window of a sequence

Codes follow the UCSC .2bit format: T (and U) is 00, C is 01, A is 10 and
G is 11. Bases without a code are printed as "--". With --hex the window is
packed four bases to a byte, and fails on bases without a code`,
	Example: "  geneboard encode seqs.fa --start 1 --end 8 --hex",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := load(cmd, args)
		if err != nil {
			return err
		}

		s, err := encodeFlags.pick(store)
		if err != nil {
			return err
		}
		window := s.Window(encodeFlags.window())

		if encodeHex {
			packed, err := nucleotide.Pack(window)
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", s.Description, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(packed))
			return err
		}

		codes := make([]string, len(window))
		for i := range codes {
			if codes[i] = nucleotide.ToTwoBit(window[i]); codes[i] == "" {
				codes[i] = "--"
			}
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(codes, " "))
		return err
	},
}

// set flags
func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeFlags.add(encodeCmd)
	encodeCmd.Flags().BoolVarP(&encodeHex, "hex", "x", false, "pack the window and print it as hex")
}

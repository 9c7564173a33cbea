package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/rfranks/geneboard/internal/nucleotide"
	"github.com/rfranks/geneboard/internal/sequence"
)

// stdinName is the input argument for reading from stdin, ex: pasted sequences
const stdinName = "-"

// windowFlags are the flags of commands that work on a window of one sequence
type windowFlags struct {
	// description of the sequence to use
	description string

	// 1-based first and last base-pairs of the window
	start, end int
}

// add the window flags to a command
func (w *windowFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&w.description, "seq", "s", "", "description of the sequence to use (default is the first)")
	cmd.Flags().IntVar(&w.start, "start", 0, "first base-pair of the window, 1-based (default is the first of the sequence)")
	cmd.Flags().IntVar(&w.end, "end", 0, "last base-pair of the window, inclusive (default is the last of the sequence)")
}

// window returns the Range selected by the flags
func (w *windowFlags) window() nucleotide.Range {
	return nucleotide.Range{Min: w.start, Max: w.end}
}

// pick returns the sequence selected by the flags from a store.
func (w *windowFlags) pick(store *sequence.Store) (*sequence.Sequence, error) {
	if w.description != "" {
		s, ok := store.Get(w.description)
		if !ok {
			return nil, fmt.Errorf("failed to find a sequence %q, use one of: %s", w.description, strings.Join(store.Keys(), ", "))
		}
		return s, nil
	}

	keys := store.Keys()
	if len(keys) > 1 {
		logger.Info("no sequence chosen [-s], using the first", "seq", keys[0])
	}
	s, _ := store.Get(keys[0])
	return s, nil
}

// load reads every input into a new store. Inputs or records that fail to parse
// are logged and skipped. It fails if no sequences were read at all.
func load(cmd *cobra.Command, args []string) (*sequence.Store, error) {
	if len(args) == 0 {
		cmd.Help()
		return nil, errors.New("no input passed, use a file path or - for stdin")
	}

	var bar *pb.ProgressBar
	if conf != nil && conf.Progress && len(args) > 1 {
		bar = pb.New(len(args))
		bar.Output = cmd.ErrOrStderr()
		bar.Start()
		defer bar.Finish()
	}

	store := sequence.NewStore()
	for _, name := range args {
		raw, err := readInput(cmd.InOrStdin(), name)
		if err != nil {
			return nil, err
		}

		result := sequence.Parse(raw, name)
		logger.Debug("parsed input", "file", name, "format", result.Format, "sequences", len(result.Sequences))
		if result.Err != nil {
			logger.Warn("skipping input", "err", result.Err)
		}
		for _, failure := range result.Failures {
			logger.Warn("skipping record", "file", name, "err", failure)
		}

		for _, s := range result.Sequences {
			if prev, exists := store.Get(s.Description); exists {
				logger.Warn("replacing sequence with the same description", "seq", s.Description, "was", prev.Filename, "now", s.Filename)
			}
			store.Add(s)
		}

		if bar != nil {
			bar.Increment()
		}
	}

	if store.Len() == 0 {
		return nil, fmt.Errorf("failed to find any sequences in %s", strings.Join(args, ", "))
	}
	return store, nil
}

// readInput reads the contents of a file, or of stdin for "-"
func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == stdinName {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return raw, nil
	}

	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return raw, nil
}

// Package cmd is for command line interactions with the geneboard application
package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rfranks/geneboard/config"
)

var (
	// conf is the settings of the running command, set before it runs
	conf *config.Config

	// logger is for logging to Stderr
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "geneboard"})

	// cfgFile is a path to a settings file, overriding the default search
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "geneboard",
	Short: `Analyze and visualize nucleotide sequences.
Read FASTA, FASTQ, GenBank, SAM/BAM or plain sequence text and inspect
composition, 2-bit encodings and chart series of any window of them`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is ./geneboard.yaml or $HOME/.geneboard/geneboard.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug messages")
	rootCmd.PersistentFlags().String("log-level", "info", "one of debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("progress", false, "show a progress bar while reading input files")

	// Bind the paramters to viper
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("progress", rootCmd.PersistentFlags().Lookup("progress"))
}

// setup reads the settings and sets the level of the logger.
func setup(cmd *cobra.Command, args []string) error {
	home, _ := os.UserHomeDir()
	if err := config.Load(viper.GetViper(), cfgFile, home); err != nil {
		return err
	}

	c, err := config.New(viper.GetViper())
	if err != nil {
		return err
	}
	conf = c

	logger.SetOutput(cmd.ErrOrStderr())
	level, err := log.ParseLevel(strings.ToLower(conf.LogLevel))
	if err != nil {
		logger.Warn("unknown log-level, defaulting to info", "provided", conf.LogLevel)
		level = log.InfoLevel
	}
	if conf.Verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	if cfg := viper.ConfigFileUsed(); cfg != "" {
		logger.Debug("read settings", "file", cfg)
	}
	return nil
}

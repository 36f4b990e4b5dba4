package main

import (
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pitest",
	Short: "Find compiler-generated try-with-resources bytecode",
	Long: `Scans javap disassembly listings for the close-and-rethrow sequences
that javac and ECJ emit for try-with-resources statements, and reports
the source lines those sequences are attributed to.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		processGlobalFlags()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetEnvPrefix("PITEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Reads ~/.pitest.yaml if one exists. Flags and PITEST_* environment
// variables take precedence over the file.
func initConfig() {
	home, err := homedir.Dir()
	if err != nil {
		return
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".pitest")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("config", viper.ConfigFileUsed()).Msg("loaded config file")
	}
}

func main() {
	// Pretty console logging for interactive runs; structured JSON
	// when output is piped or captured.
	if isTerminalIO() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

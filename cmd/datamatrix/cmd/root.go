package cmd

import (
	"fmt"
	"strings"

	"github.com/go-sif/datamatrix/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "DATAMATRIX"

// RootCmd is the datamatrix command, to which all subcommands are attached
var RootCmd = &cobra.Command{
	Use:   "datamatrix",
	Short: "Inspect column-oriented data one row at a time",
	Long: "datamatrix loads delimiter-separated or JSON Lines data into an in-memory " +
		"column-oriented matrix and prints individual rows as Name/Value tables.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.SetLogLevel(viper.GetString("log.level"), viper.GetString("log.format"))
	},
}

// Execute runs RootCmd against the process arguments
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().String("log-format", logging.LogFormatTextValue, "logging format [text|json]")
	RootCmd.PersistentFlags().String("log-level", zerolog.LevelWarnValue,
		fmt.Sprintf(
			"logging level %s|%s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
			zerolog.LevelErrorValue,
		),
	)
	addSourceFlags(RootCmd)

	RootCmd.AddCommand(rowCmd)
	RootCmd.AddCommand(columnsCmd)

	if err := viper.BindPFlag("log.format", RootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if err := viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SamP9999/intercom-cli/cmd/intercom/commands"
	"github.com/SamP9999/intercom-cli/internal/constants"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "intercom",
	Short: "Intercom workspace CLI",
	Long: `A command-line interface for the Intercom REST API.

This CLI provides access to Intercom workspace resources including
contacts, conversations, companies, tickets, articles, and more.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.intercom/config.yml)")
	rootCmd.PersistentFlags().StringP("token", "t", "", "Intercom access token")
	rootCmd.PersistentFlags().StringP("region", "r", "", "workspace region (us, eu, au)")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Bool("debug", false, "log HTTP requests and responses")

	// Bind flags to viper
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewWhoamiCommand())
	rootCmd.AddCommand(commands.NewContactsCommand())
	rootCmd.AddCommand(commands.NewConversationsCommand())
	rootCmd.AddCommand(commands.NewCompaniesCommand())
	rootCmd.AddCommand(commands.NewAdminsCommand())
	rootCmd.AddCommand(commands.NewTeamsCommand())
	rootCmd.AddCommand(commands.NewTagsCommand())
	rootCmd.AddCommand(commands.NewSegmentsCommand())
	rootCmd.AddCommand(commands.NewNotesCommand())
	rootCmd.AddCommand(commands.NewTicketsCommand())
	rootCmd.AddCommand(commands.NewArticlesCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(constants.ExitCodeError)
		}

		// Search config in ~/.intercom/config.yml
		viper.AddConfigPath(filepath.Join(home, ".intercom"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("INTERCOM")
	viper.AutomaticEnv()

	if viper.GetBool("no-color") {
		color.NoColor = true
	}

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	apiErr := &intercom.APIError{}
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case intercom.ErrorKindAuthFailed:
			return constants.ExitCodeAuthFailed
		case intercom.ErrorKindNotFound:
			return constants.ExitCodeNotFound
		}
	}

	return constants.ExitCodeError
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SamP9999/intercom-cli/internal/client"
	"github.com/SamP9999/intercom-cli/internal/constants"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the persisted CLI configuration.
type Config struct {
	AccessToken string `yaml:"access_token,omitempty"`
	Region      string `yaml:"region,omitempty"`
}

// configDir returns the directory holding the CLI configuration.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".intercom"), nil
}

// loadConfig reads the saved configuration. A missing file yields an
// empty config.
func loadConfig() *Config {
	config := &Config{}

	dir, err := configDir()
	if err != nil {
		return config
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yml"))
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

// saveConfig persists the configuration to ~/.intercom/config.yml. The
// file holds the access token, so it is created without group or world
// access.
func saveConfig(config *Config) error {
	dir, err := configDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// resolveCredentials merges flag, environment, and saved configuration.
// Flags and environment take precedence over the config file.
func resolveCredentials() (token string, region intercom.Region) {
	saved := loadConfig()

	token = viper.GetString("token")
	if token == "" {
		token = saved.AccessToken
	}

	regionValue := viper.GetString("region")
	if regionValue == "" {
		regionValue = saved.Region
	}

	return token, intercom.ParseRegion(regionValue)
}

// CreateClient builds an API client from the resolved credentials.
func CreateClient() (intercom.Client, error) {
	token, region := resolveCredentials()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	return createClientWithToken(token, region)
}

// createClientWithToken builds an API client for an explicit token,
// bypassing the saved configuration.
func createClientWithToken(token string, region intercom.Region) (intercom.Client, error) {
	config := &intercom.Config{
		AccessToken:        token,
		Region:             region,
		OnRateLimitWarning: displayRateLimitWarning,
		OnRetryWait:        displayRetryWait,
	}

	if viper.GetBool("debug") {
		config.Debug = true
		config.Logger = &stderrLogger{}
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// displayRateLimitWarning tells the user the rolling request count is
// approaching the per-minute budget.
func displayRateLimitWarning(count, budget int) {
	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintf(os.Stderr, "Warning: %d of %d requests used in the last minute\n", count, budget)
}

// displayRetryWait tells the user the client is waiting out a rate limit
// before retrying.
func displayRetryWait(delay time.Duration) {
	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintf(os.Stderr, "Rate limited, retrying in %s\n", delay)
}

// stderrLogger writes client log events to stderr for --debug runs.
type stderrLogger struct{}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)
	for key, value := range fields {
		_, _ = fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	_, _ = fmt.Fprintln(os.Stderr)
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the saved CLI configuration",
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the saved configuration",
		Long:  "Display the saved configuration with the access token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			display := struct {
				AccessToken string `json:"access_token" yaml:"access_token"`
				Region      string `json:"region"       yaml:"region"`
			}{
				AccessToken: maskToken(config.AccessToken),
				Region:      string(intercom.ParseRegion(config.Region)),
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(display)
			case OutputFormatYAML:
				return StandardYAMLRenderer(display)
			default:
				fmt.Printf("Access token: %s\n", display.AccessToken)
				fmt.Printf("Region:       %s\n", display.Region)

				return nil
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Supported keys: access_token, region",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			switch args[0] {
			case "access_token":
				config.AccessToken = args[1]
			case "region":
				if args[1] != "us" && args[1] != "eu" && args[1] != "au" {
					return ErrRegionRequired
				}

				config.Region = args[1]
			default:
				return fmt.Errorf("%q: %w", args[0], ErrUnknownConfigKey)
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

// maskToken hides all but the last four characters of a token.
func maskToken(token string) string {
	const visible = 4

	if token == "" {
		return NotAvailable
	}

	if len(token) <= visible {
		return "****"
	}

	return "****" + token[len(token)-visible:]
}

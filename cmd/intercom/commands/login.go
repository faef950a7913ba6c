package commands

import (
	"context"
	"fmt"
	"strings"
	"syscall"

	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		token  string
		region string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to an Intercom workspace",
		Long:  "Verify an access token against the Intercom API and save it for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Fall back to the global flag or environment
			if token == "" {
				token = viper.GetString("token")
			}

			// Prompt without echoing the token
			if token == "" {
				fmt.Print("Access token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("reading access token: %w", err)
				}

				fmt.Println()

				token = strings.TrimSpace(string(byteToken))
			}

			if token == "" {
				return intercom.ErrAccessTokenRequired
			}

			if region == "" {
				region = viper.GetString("region")
			}

			parsedRegion := intercom.ParseRegion(region)

			// Verify the token before persisting it
			apiClient, err := createClientWithToken(token, parsedRegion)
			if err != nil {
				return err
			}

			ctx := context.Background()

			me, err := apiClient.Me(ctx)
			if err != nil {
				return fmt.Errorf("verifying access token: %w", err)
			}

			config := loadConfig()
			config.AccessToken = token
			config.Region = string(parsedRegion)

			if err := saveConfig(config); err != nil {
				return err
			}

			workspace := NotAvailable
			if me.App != nil {
				workspace = me.App.Name
			}

			fmt.Printf("Logged in to workspace %s as %s (%s)\n", workspace, me.Name, me.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "with-token", "", "access token (prompted if omitted)")
	cmd.Flags().StringVar(&region, "region", "", "workspace region (us, eu, au)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from the Intercom workspace",
		Long:  "Remove the saved access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.AccessToken = ""

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}

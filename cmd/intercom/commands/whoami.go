package commands

import (
	"context"
	"os"

	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewWhoamiCommand creates the whoami command
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated admin",
		Long:  "Display the admin and workspace the saved access token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			me, err := apiClient.Me(context.Background())
			if err != nil {
				return err
			}

			return outputWhoami(me)
		},
	}
}

func outputWhoami(me *intercom.AdminWithApp) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(me)
	case OutputFormatYAML:
		return StandardYAMLRenderer(me)
	default:
		return renderWhoamiTable(me)
	}
}

func renderWhoamiTable(me *intercom.AdminWithApp) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", me.ID)
	_ = table.Append("Name", me.Name)
	_ = table.Append("Email", me.Email)

	if me.App != nil {
		_ = table.Append("Workspace", me.App.Name)
		_ = table.Append("Workspace ID", me.App.IDCode)
		_ = table.Append("Region", orNA(me.App.Region))
	}

	_ = table.Render()

	return nil
}

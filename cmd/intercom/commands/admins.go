package commands

import (
	"context"
	"os"
	"strconv"

	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAdminsCommand creates the admins command group.
func NewAdminsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "admins",
		Aliases: []string{"admin"},
		Short:   "Manage admins",
		Long:    "List and inspect workspace teammates",
	}

	cmd.AddCommand(newAdminsListCommand())
	cmd.AddCommand(newAdminsGetCommand())

	return cmd
}

func newAdminsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List admins",
		Long:  "List all teammates with workspace access",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			admins, err := apiClient.Admins().List(context.Background())
			if err != nil {
				return err
			}

			return outputAdmins(admins)
		},
	}
}

func outputAdmins(admins []intercom.Admin) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(admins)
	case OutputFormatYAML:
		return StandardYAMLRenderer(admins)
	default:
		return renderAdminsTable(admins)
	}
}

func renderAdminsTable(admins []intercom.Admin) error {
	if len(admins) == 0 {
		_, _ = os.Stdout.WriteString("No admins found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Away", "Inbox Seat")

	for _, admin := range admins {
		_ = table.Append(admin.ID, admin.Name, admin.Email,
			strconv.FormatBool(admin.AwayModeEnabled),
			strconv.FormatBool(admin.HasInboxSeat))
	}

	_ = table.Render()

	return nil
}

func newAdminsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ADMIN_ID",
		Short: "Get admin details",
		Long:  "Display detailed information about a specific admin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			admin, err := apiClient.Admins().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputAdminDetails(admin)
		},
	}
}

func outputAdminDetails(admin *intercom.Admin) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(admin)
	case OutputFormatYAML:
		return StandardYAMLRenderer(admin)
	default:
		return renderAdminDetailsTable(admin)
	}
}

func renderAdminDetailsTable(admin *intercom.Admin) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", admin.ID)
	_ = table.Append("Name", admin.Name)
	_ = table.Append("Email", admin.Email)
	_ = table.Append("Job Title", orNA(admin.JobTitle))
	_ = table.Append("Away Mode", strconv.FormatBool(admin.AwayModeEnabled))
	_ = table.Append("Inbox Seat", strconv.FormatBool(admin.HasInboxSeat))

	_ = table.Render()

	return nil
}

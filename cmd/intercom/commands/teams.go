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

// NewTeamsCommand creates the teams command group.
func NewTeamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "teams",
		Aliases: []string{"team"},
		Short:   "Manage teams",
		Long:    "List and inspect workspace teams",
	}

	cmd.AddCommand(newTeamsListCommand())
	cmd.AddCommand(newTeamsGetCommand())

	return cmd
}

func newTeamsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams",
		Long:  "List all teams in the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			teams, err := apiClient.Teams().List(context.Background())
			if err != nil {
				return err
			}

			return outputTeams(teams)
		},
	}
}

func outputTeams(teams []intercom.Team) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(teams)
	case OutputFormatYAML:
		return StandardYAMLRenderer(teams)
	default:
		return renderTeamsTable(teams)
	}
}

func renderTeamsTable(teams []intercom.Team) error {
	if len(teams) == 0 {
		_, _ = os.Stdout.WriteString("No teams found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Admins")

	for _, team := range teams {
		_ = table.Append(team.ID, team.Name, strconv.Itoa(len(team.AdminIDs)))
	}

	_ = table.Render()

	return nil
}

func newTeamsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TEAM_ID",
		Short: "Get team details",
		Long:  "Display detailed information about a specific team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			team, err := apiClient.Teams().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(team)
			case OutputFormatYAML:
				return StandardYAMLRenderer(team)
			default:
				return renderTeamDetailsTable(team)
			}
		},
	}
}

func renderTeamDetailsTable(team *intercom.Team) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", team.ID)
	_ = table.Append("Name", team.Name)
	_ = table.Append("Admin Count", strconv.Itoa(len(team.AdminIDs)))

	_ = table.Render()

	if len(team.AdminIDs) > 0 {
		_, _ = os.Stdout.WriteString("\nAdmin IDs:\n")
		for _, adminID := range team.AdminIDs {
			_, _ = os.Stdout.WriteString("  - " + strconv.FormatInt(adminID, 10) + "\n")
		}
	}

	return nil
}

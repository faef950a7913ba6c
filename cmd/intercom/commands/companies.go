package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCompaniesCommand creates the companies command group.
func NewCompaniesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "companies",
		Aliases: []string{"company"},
		Short:   "Manage companies",
		Long:    "List and inspect company records",
	}

	cmd.AddCommand(newCompaniesListCommand())
	cmd.AddCommand(newCompaniesGetCommand())

	return cmd
}

func newCompaniesListCommand() *cobra.Command {
	var (
		limit    int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		Long:  "List company records in the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			if allPages {
				limit = 0
			}

			companies, err := apiClient.Companies().List(context.Background(), limit)
			if err != nil {
				return err
			}

			return outputCompanies(companies)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", intercom.DefaultPageSize, "maximum companies to fetch")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch every company")

	return cmd
}

func outputCompanies(companies []intercom.Company) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(companies)
	case OutputFormatYAML:
		return StandardYAMLRenderer(companies)
	default:
		return renderCompaniesTable(companies)
	}
}

func renderCompaniesTable(companies []intercom.Company) error {
	if len(companies) == 0 {
		_, _ = os.Stdout.WriteString("No companies found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Users", "Monthly Spend", "Last Seen")

	for _, company := range companies {
		_ = table.Append(company.ID, company.Name,
			strconv.Itoa(company.UserCount),
			fmt.Sprintf("%.2f", company.MonthlySpend),
			formatTimestamp(company.LastRequestAt))
	}

	_ = table.Render()

	return nil
}

func newCompaniesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COMPANY_ID",
		Short: "Get company details",
		Long:  "Display detailed information about a specific company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			company, err := apiClient.Companies().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputCompanyDetails(company)
		},
	}
}

func outputCompanyDetails(company *intercom.Company) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(company)
	case OutputFormatYAML:
		return StandardYAMLRenderer(company)
	default:
		return renderCompanyDetailsTable(company)
	}
}

func renderCompanyDetailsTable(company *intercom.Company) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", company.ID)
	_ = table.Append("Company ID", orNA(company.CompanyID))
	_ = table.Append("Name", company.Name)
	_ = table.Append("Website", orNA(company.Website))
	_ = table.Append("Industry", orNA(company.Industry))

	if company.Plan != nil {
		_ = table.Append("Plan", company.Plan.Name)
	}

	_ = table.Append("Users", strconv.Itoa(company.UserCount))
	_ = table.Append("Sessions", strconv.Itoa(company.SessionCount))
	_ = table.Append("Monthly Spend", fmt.Sprintf("%.2f", company.MonthlySpend))
	_ = table.Append("Created", formatTimestamp(company.CreatedAt))
	_ = table.Append("Updated", formatTimestamp(company.UpdatedAt))

	_ = table.Render()

	return nil
}

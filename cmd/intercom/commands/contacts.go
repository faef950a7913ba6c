package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewContactsCommand creates the contacts command group.
func NewContactsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		Aliases: []string{"contact"},
		Short:   "Manage contacts",
		Long:    "List, create, update, delete, and search workspace contacts",
	}

	cmd.AddCommand(newContactsListCommand())
	cmd.AddCommand(newContactsGetCommand())
	cmd.AddCommand(newContactsCreateCommand())
	cmd.AddCommand(newContactsUpdateCommand())
	cmd.AddCommand(newContactsDeleteCommand())
	cmd.AddCommand(newContactsSearchCommand())

	return cmd
}

func newContactsListCommand() *cobra.Command {
	var (
		limit    int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Long:  "List contacts in the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContactsListCommand(limit, allPages)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", intercom.DefaultPageSize, "maximum contacts to fetch")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch every contact")

	return cmd
}

func runContactsListCommand(limit int, allPages bool) error {
	apiClient, err := CreateClient()
	if err != nil {
		return err
	}

	if allPages {
		limit = 0
	}

	contacts, err := apiClient.Contacts().List(context.Background(), limit)
	if err != nil {
		return err
	}

	return outputContacts(contacts)
}

func outputContacts(contacts []intercom.Contact) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(contacts)
	case OutputFormatYAML:
		return StandardYAMLRenderer(contacts)
	default:
		return renderContactsTable(contacts)
	}
}

func renderContactsTable(contacts []intercom.Contact) error {
	if len(contacts) == 0 {
		_, _ = os.Stdout.WriteString("No contacts found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Role", "Last Seen")

	for _, contact := range contacts {
		_ = table.Append(contact.ID, orNA(contact.Name), orNA(contact.Email),
			contact.Role, formatTimestamp(contact.LastSeenAt))
	}

	_ = table.Render()

	return nil
}

func newContactsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONTACT_ID",
		Short: "Get contact details",
		Long:  "Display detailed information about a specific contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			contact, err := apiClient.Contacts().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputContactDetails(contact)
		},
	}
}

func outputContactDetails(contact *intercom.Contact) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(contact)
	case OutputFormatYAML:
		return StandardYAMLRenderer(contact)
	default:
		return renderContactDetailsTable(contact)
	}
}

func renderContactDetailsTable(contact *intercom.Contact) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", contact.ID)
	_ = table.Append("Name", orNA(contact.Name))
	_ = table.Append("Email", orNA(contact.Email))
	_ = table.Append("Phone", orNA(contact.Phone))
	_ = table.Append("Role", contact.Role)
	_ = table.Append("External ID", orNA(contact.ExternalID))
	_ = table.Append("Created", formatTimestamp(contact.CreatedAt))
	_ = table.Append("Updated", formatTimestamp(contact.UpdatedAt))
	_ = table.Append("Last Seen", formatTimestamp(contact.LastSeenAt))

	_ = table.Render()

	return nil
}

func newContactsCreateCommand() *cobra.Command {
	var (
		email      string
		name       string
		phone      string
		role       string
		externalID string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new contact",
		Long:  "Create a new contact in the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" && externalID == "" {
				return ErrEmailRequired
			}

			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			createReq := &intercom.ContactCreateRequest{
				Email:      email,
				Name:       name,
				Phone:      phone,
				Role:       role,
				ExternalID: externalID,
			}

			contact, err := apiClient.Contacts().Create(context.Background(), createReq)
			if err != nil {
				return err
			}

			fmt.Printf("Created contact %s\n", contact.ID)

			return outputContactDetails(contact)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "contact email address")
	cmd.Flags().StringVar(&name, "name", "", "contact name")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone number")
	cmd.Flags().StringVar(&role, "role", "user", "contact role (user or lead)")
	cmd.Flags().StringVar(&externalID, "external-id", "", "external identifier")

	return cmd
}

func newContactsUpdateCommand() *cobra.Command {
	var (
		email string
		name  string
		phone string
	)

	cmd := &cobra.Command{
		Use:   "update CONTACT_ID",
		Short: "Update a contact",
		Long:  "Update an existing contact. Only the provided flags are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" && name == "" && phone == "" {
				return ErrNoContactFieldsToSet
			}

			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			updateReq := &intercom.ContactUpdateRequest{
				Email: email,
				Name:  name,
				Phone: phone,
			}

			contact, err := apiClient.Contacts().Update(context.Background(), args[0], updateReq)
			if err != nil {
				return err
			}

			fmt.Printf("Updated contact %s\n", contact.ID)

			return outputContactDetails(contact)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "new email address")
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&phone, "phone", "", "new phone number")

	return cmd
}

func newContactsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CONTACT_ID",
		Short: "Delete a contact",
		Long:  "Permanently delete a contact from the workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			if err := apiClient.Contacts().Delete(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Deleted contact %s\n", args[0])

			return nil
		},
	}
}

func newContactsSearchCommand() *cobra.Command {
	var (
		filters []string
		sort    string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search contacts",
		Long: `Search contacts with field filters.

Filters take the form field:operator:value, for example:
  intercom contacts search --filter email:~:@example.com
  intercom contacts search --filter role:=:lead --sort created_at:desc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContactsSearchCommand(filters, sort, limit)
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as field:operator:value (repeatable)")
	cmd.Flags().StringVar(&sort, "sort", "", "sort as field:order")
	cmd.Flags().IntVar(&limit, "limit", intercom.DefaultPageSize, "maximum contacts to fetch (0 for all)")

	return cmd
}

func runContactsSearchCommand(filters []string, sort string, limit int) error {
	query, err := BuildSearchQuery(filters, sort)
	if err != nil {
		return err
	}

	apiClient, err := CreateClient()
	if err != nil {
		return err
	}

	contacts, err := apiClient.Contacts().Search(context.Background(), query, limit)
	if err != nil {
		return err
	}

	return outputContacts(contacts)
}

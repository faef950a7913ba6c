package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTicketsCommand creates the tickets command group.
func NewTicketsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tickets",
		Aliases: []string{"ticket"},
		Short:   "Manage tickets",
		Long:    "Create, inspect, and search helpdesk tickets",
	}

	cmd.AddCommand(newTicketsGetCommand())
	cmd.AddCommand(newTicketsCreateCommand())
	cmd.AddCommand(newTicketsSearchCommand())

	return cmd
}

func newTicketsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TICKET_ID",
		Short: "Get ticket details",
		Long:  "Display detailed information about a specific ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			ticket, err := apiClient.Tickets().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputTicketDetails(ticket)
		},
	}
}

func outputTicketDetails(ticket *intercom.Ticket) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(ticket)
	case OutputFormatYAML:
		return StandardYAMLRenderer(ticket)
	default:
		return renderTicketDetailsTable(ticket)
	}
}

func renderTicketDetailsTable(ticket *intercom.Ticket) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", ticket.ID)
	_ = table.Append("Ticket Number", orNA(ticket.TicketID))
	_ = table.Append("State", orNA(ticket.TicketState))
	_ = table.Append("Open", strconv.FormatBool(ticket.Open))
	_ = table.Append("Created", formatTimestamp(ticket.CreatedAt))
	_ = table.Append("Updated", formatTimestamp(ticket.UpdatedAt))

	_ = table.Render()

	if len(ticket.TicketAttributes) > 0 {
		_, _ = os.Stdout.WriteString("\nAttributes:\n")

		attrTable := tablewriter.NewWriter(os.Stdout)
		attrTable.Header("Key", "Value")

		for key, value := range ticket.TicketAttributes {
			_ = attrTable.Append(key, fmt.Sprintf("%v", value))
		}

		_ = attrTable.Render()
	}

	return nil
}

func newTicketsCreateCommand() *cobra.Command {
	var (
		ticketTypeID string
		contactIDs   []string
		attributes   []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new ticket",
		Long: `Open a new ticket for one or more contacts.

Attributes take the form key=value, for example:
  intercom tickets create --type 42 --contact 6657adf76abd0167d9419cd2 \
    --attribute _default_title_="Billing issue" --attribute priority=high`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTicketsCreateCommand(ticketTypeID, contactIDs, attributes)
		},
	}

	cmd.Flags().StringVar(&ticketTypeID, "type", "", "ticket type ID")
	cmd.Flags().StringArrayVar(&contactIDs, "contact", nil, "contact ID to attach (repeatable)")
	cmd.Flags().StringArrayVar(&attributes, "attribute", nil, "ticket attribute as key=value (repeatable)")

	return cmd
}

func runTicketsCreateCommand(ticketTypeID string, contactIDs, attributes []string) error {
	if ticketTypeID == "" {
		return ErrTicketTypeRequired
	}

	contacts := make([]intercom.TicketContact, 0, len(contactIDs))
	for _, contactID := range contactIDs {
		contacts = append(contacts, intercom.TicketContact{ID: contactID})
	}

	ticketAttributes, err := parseAttributes(attributes)
	if err != nil {
		return err
	}

	apiClient, err := CreateClient()
	if err != nil {
		return err
	}

	createReq := &intercom.TicketCreateRequest{
		TicketTypeID:     ticketTypeID,
		Contacts:         contacts,
		TicketAttributes: ticketAttributes,
	}

	ticket, err := apiClient.Tickets().Create(context.Background(), createReq)
	if err != nil {
		return err
	}

	fmt.Printf("Created ticket %s\n", ticket.ID)

	return outputTicketDetails(ticket)
}

// parseAttributes converts repeated key=value flags into a ticket
// attribute map.
func parseAttributes(specs []string) (map[string]interface{}, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	attributes := make(map[string]interface{}, len(specs))

	for _, spec := range specs {
		key, value, found := strings.Cut(spec, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%q: %w", spec, ErrAttributeFormat)
		}

		attributes[key] = value
	}

	return attributes, nil
}

func newTicketsSearchCommand() *cobra.Command {
	var (
		filters []string
		sort    string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search tickets",
		Long: `Search tickets with field filters.

Filters take the form field:operator:value, for example:
  intercom tickets search --filter state:=:submitted
  intercom tickets search --filter open:=:true --sort updated_at:desc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := BuildSearchQuery(filters, sort)
			if err != nil {
				return err
			}

			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			tickets, err := apiClient.Tickets().Search(context.Background(), query, limit)
			if err != nil {
				return err
			}

			return outputTickets(tickets)
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as field:operator:value (repeatable)")
	cmd.Flags().StringVar(&sort, "sort", "", "sort as field:order")
	cmd.Flags().IntVar(&limit, "limit", intercom.DefaultPageSize, "maximum tickets to fetch (0 for all)")

	return cmd
}

func outputTickets(tickets []intercom.Ticket) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(tickets)
	case OutputFormatYAML:
		return StandardYAMLRenderer(tickets)
	default:
		return renderTicketsTable(tickets)
	}
}

func renderTicketsTable(tickets []intercom.Ticket) error {
	if len(tickets) == 0 {
		_, _ = os.Stdout.WriteString("No tickets found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "State", "Open", "Updated")

	for _, ticket := range tickets {
		_ = table.Append(ticket.ID, orNA(ticket.TicketID), orNA(ticket.TicketState),
			strconv.FormatBool(ticket.Open), formatTimestamp(ticket.UpdatedAt))
	}

	_ = table.Render()

	return nil
}

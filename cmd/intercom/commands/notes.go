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

// NewNotesCommand creates the notes command group.
func NewNotesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"note"},
		Short:   "Manage contact notes",
		Long:    "List and create notes attached to contacts",
	}

	cmd.AddCommand(newNotesListCommand())
	cmd.AddCommand(newNotesCreateCommand())

	return cmd
}

func newNotesListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list CONTACT_ID",
		Short: "List notes for a contact",
		Long:  "List the notes attached to a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			notes, err := apiClient.Notes().List(context.Background(), args[0], limit)
			if err != nil {
				return err
			}

			return outputNotes(notes)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", intercom.DefaultPageSize, "maximum notes to fetch (0 for all)")

	return cmd
}

func outputNotes(notes []intercom.Note) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(notes)
	case OutputFormatYAML:
		return StandardYAMLRenderer(notes)
	default:
		return renderNotesTable(notes)
	}
}

func renderNotesTable(notes []intercom.Note) error {
	if len(notes) == 0 {
		_, _ = os.Stdout.WriteString("No notes found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Author", "Created", "Body")

	for _, note := range notes {
		author := NotAvailable
		if note.Author != nil {
			author = note.Author.Name
		}

		_ = table.Append(note.ID, author, formatTimestamp(note.CreatedAt),
			truncate(note.Body, previewLength))
	}

	_ = table.Render()

	return nil
}

func newNotesCreateCommand() *cobra.Command {
	var (
		body    string
		adminID string
	)

	cmd := &cobra.Command{
		Use:   "create CONTACT_ID",
		Short: "Create a note",
		Long:  "Attach a note to a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if body == "" {
				return ErrNoteBodyRequired
			}

			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			createReq := &intercom.NoteCreateRequest{
				Body:    body,
				AdminID: adminID,
			}

			note, err := apiClient.Notes().Create(context.Background(), args[0], createReq)
			if err != nil {
				return err
			}

			fmt.Printf("Created note %s\n", note.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "note body")
	cmd.Flags().StringVar(&adminID, "admin", "", "ID of the authoring admin")

	return cmd
}

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

// NewConversationsCommand creates the conversations command group.
func NewConversationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conversations",
		Aliases: []string{"conversation", "convos"},
		Short:   "Manage conversations",
		Long:    "List, inspect, search, and reply to conversations",
	}

	cmd.AddCommand(newConversationsListCommand())
	cmd.AddCommand(newConversationsGetCommand())
	cmd.AddCommand(newConversationsSearchCommand())
	cmd.AddCommand(newConversationsReplyCommand())

	return cmd
}

func newConversationsListCommand() *cobra.Command {
	var (
		limit    int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List conversations",
		Long:  "List conversations in the workspace, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			if allPages {
				limit = 0
			}

			conversations, err := apiClient.Conversations().List(context.Background(), limit)
			if err != nil {
				return err
			}

			return outputConversations(conversations)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", intercom.DefaultPageSize, "maximum conversations to fetch")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch every conversation")

	return cmd
}

func outputConversations(conversations []intercom.Conversation) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(conversations)
	case OutputFormatYAML:
		return StandardYAMLRenderer(conversations)
	default:
		return renderConversationsTable(conversations)
	}
}

func renderConversationsTable(conversations []intercom.Conversation) error {
	if len(conversations) == 0 {
		_, _ = os.Stdout.WriteString("No conversations found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "State", "Priority", "Assignee", "Updated", "Subject")

	for _, conversation := range conversations {
		assignee := NotAvailable
		if conversation.AdminAssigneeID != 0 {
			assignee = strconv.FormatInt(conversation.AdminAssigneeID, 10)
		}

		subject := conversation.Title
		if subject == "" && conversation.Source != nil {
			subject = conversation.Source.Subject
			if subject == "" {
				subject = conversation.Source.Body
			}
		}

		_ = table.Append(conversation.ID, conversation.State, orNA(conversation.Priority),
			assignee, formatTimestamp(conversation.UpdatedAt), truncate(subject, previewLength))
	}

	_ = table.Render()

	return nil
}

func newConversationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONVERSATION_ID",
		Short: "Get conversation details",
		Long:  "Display detailed information about a specific conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			conversation, err := apiClient.Conversations().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputConversationDetails(conversation)
		},
	}
}

func outputConversationDetails(conversation *intercom.Conversation) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(conversation)
	case OutputFormatYAML:
		return StandardYAMLRenderer(conversation)
	default:
		return renderConversationDetailsTable(conversation)
	}
}

func renderConversationDetailsTable(conversation *intercom.Conversation) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", conversation.ID)
	_ = table.Append("Title", orNA(conversation.Title))
	_ = table.Append("State", conversation.State)
	_ = table.Append("Open", strconv.FormatBool(conversation.Open))
	_ = table.Append("Read", strconv.FormatBool(conversation.Read))
	_ = table.Append("Priority", orNA(conversation.Priority))
	_ = table.Append("Created", formatTimestamp(conversation.CreatedAt))
	_ = table.Append("Updated", formatTimestamp(conversation.UpdatedAt))

	if conversation.Source != nil && conversation.Source.Author != nil {
		_ = table.Append("Started By", conversation.Source.Author.Name)
	}

	_ = table.Render()

	if conversation.Source != nil && conversation.Source.Body != "" {
		_, _ = fmt.Fprintf(os.Stdout, "\nOpening message:\n%s\n", conversation.Source.Body)
	}

	if conversation.Tags != nil && len(conversation.Tags.Tags) > 0 {
		_, _ = os.Stdout.WriteString("\nTags:\n")
		for _, tag := range conversation.Tags.Tags {
			_, _ = fmt.Fprintf(os.Stdout, "  - %s\n", tag.Name)
		}
	}

	return nil
}

func newConversationsSearchCommand() *cobra.Command {
	var (
		filters []string
		sort    string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search conversations",
		Long: `Search conversations with field filters.

Filters take the form field:operator:value, for example:
  intercom conversations search --filter state:=:open
  intercom conversations search --filter updated_at:>:1700000000 --sort updated_at:desc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := BuildSearchQuery(filters, sort)
			if err != nil {
				return err
			}

			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			conversations, err := apiClient.Conversations().Search(context.Background(), query, limit)
			if err != nil {
				return err
			}

			return outputConversations(conversations)
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as field:operator:value (repeatable)")
	cmd.Flags().StringVar(&sort, "sort", "", "sort as field:order")
	cmd.Flags().IntVar(&limit, "limit", intercom.DefaultPageSize, "maximum conversations to fetch (0 for all)")

	return cmd
}

func newConversationsReplyCommand() *cobra.Command {
	var (
		body    string
		adminID string
		asNote  bool
	)

	cmd := &cobra.Command{
		Use:   "reply CONVERSATION_ID",
		Short: "Reply to a conversation",
		Long:  "Post an admin reply or internal note onto a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if body == "" {
				return ErrReplyBodyRequired
			}

			if adminID == "" {
				return ErrAdminIDRequired
			}

			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			messageType := "comment"
			if asNote {
				messageType = "note"
			}

			replyReq := &intercom.ConversationReplyRequest{
				MessageType: messageType,
				Type:        "admin",
				AdminID:     adminID,
				Body:        body,
			}

			conversation, err := apiClient.Conversations().Reply(context.Background(), args[0], replyReq)
			if err != nil {
				return err
			}

			fmt.Printf("Replied to conversation %s\n", conversation.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "reply body")
	cmd.Flags().StringVar(&adminID, "admin", "", "ID of the replying admin")
	cmd.Flags().BoolVar(&asNote, "note", false, "post as an internal note instead of a reply")

	return cmd
}

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

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage tags",
		Long:    "List, create, rename, and delete workspace tags",
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsCreateCommand())
	cmd.AddCommand(newTagsDeleteCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long:  "List all tags in the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			tags, err := apiClient.Tags().List(context.Background())
			if err != nil {
				return err
			}

			return outputTags(tags)
		},
	}
}

func outputTags(tags []intercom.Tag) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(tags)
	case OutputFormatYAML:
		return StandardYAMLRenderer(tags)
	default:
		return renderTagsTable(tags)
	}
}

func renderTagsTable(tags []intercom.Tag) error {
	if len(tags) == 0 {
		_, _ = os.Stdout.WriteString("No tags found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name")

	for _, tag := range tags {
		_ = table.Append(tag.ID, tag.Name)
	}

	_ = table.Render()

	return nil
}

func newTagsCreateCommand() *cobra.Command {
	var renameID string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create or rename a tag",
		Long:  "Create a new tag, or rename an existing one with --id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrTagNameRequired
			}

			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			createReq := &intercom.TagCreateRequest{
				Name: args[0],
				ID:   renameID,
			}

			tag, err := apiClient.Tags().Create(context.Background(), createReq)
			if err != nil {
				return err
			}

			if renameID != "" {
				fmt.Printf("Renamed tag %s to %s\n", tag.ID, tag.Name)
			} else {
				fmt.Printf("Created tag %s (%s)\n", tag.Name, tag.ID)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&renameID, "id", "", "existing tag ID to rename")

	return cmd
}

func newTagsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TAG_ID",
		Short: "Delete a tag",
		Long:  "Delete a tag from the workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			if err := apiClient.Tags().Delete(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Deleted tag %s\n", args[0])

			return nil
		},
	}
}

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

// NewSegmentsCommand creates the segments command group.
func NewSegmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "segments",
		Aliases: []string{"segment"},
		Short:   "Manage segments",
		Long:    "List and inspect saved contact segments",
	}

	cmd.AddCommand(newSegmentsListCommand())
	cmd.AddCommand(newSegmentsGetCommand())

	return cmd
}

func newSegmentsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List segments",
		Long:  "List all saved segments in the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			segments, err := apiClient.Segments().List(context.Background())
			if err != nil {
				return err
			}

			return outputSegments(segments)
		},
	}
}

func outputSegments(segments []intercom.Segment) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(segments)
	case OutputFormatYAML:
		return StandardYAMLRenderer(segments)
	default:
		return renderSegmentsTable(segments)
	}
}

func renderSegmentsTable(segments []intercom.Segment) error {
	if len(segments) == 0 {
		_, _ = os.Stdout.WriteString("No segments found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Count", "Updated")

	for _, segment := range segments {
		_ = table.Append(segment.ID, segment.Name, orNA(segment.PersonType),
			strconv.Itoa(segment.Count), formatTimestamp(segment.UpdatedAt))
	}

	_ = table.Render()

	return nil
}

func newSegmentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SEGMENT_ID",
		Short: "Get segment details",
		Long:  "Display detailed information about a specific segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			segment, err := apiClient.Segments().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(segment)
			case OutputFormatYAML:
				return StandardYAMLRenderer(segment)
			default:
				return renderSegmentDetailsTable(segment)
			}
		},
	}
}

func renderSegmentDetailsTable(segment *intercom.Segment) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", segment.ID)
	_ = table.Append("Name", segment.Name)
	_ = table.Append("Person Type", orNA(segment.PersonType))
	_ = table.Append("Count", strconv.Itoa(segment.Count))
	_ = table.Append("Created", formatTimestamp(segment.CreatedAt))
	_ = table.Append("Updated", formatTimestamp(segment.UpdatedAt))

	_ = table.Render()

	return nil
}

package commands

import (
	"context"
	"os"
	"strings"

	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewArticlesCommand creates the articles command group.
func NewArticlesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "articles",
		Aliases: []string{"article"},
		Short:   "Manage help center articles",
		Long:    "List, inspect, and search help center articles",
	}

	cmd.AddCommand(newArticlesListCommand())
	cmd.AddCommand(newArticlesGetCommand())
	cmd.AddCommand(newArticlesSearchCommand())

	return cmd
}

func newArticlesListCommand() *cobra.Command {
	var (
		limit    int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles",
		Long:  "List help center articles in the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			if allPages {
				limit = 0
			}

			articles, err := apiClient.Articles().List(context.Background(), limit)
			if err != nil {
				return err
			}

			return outputArticles(articles)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", intercom.DefaultPageSize, "maximum articles to fetch")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch every article")

	return cmd
}

func outputArticles(articles []intercom.Article) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(articles)
	case OutputFormatYAML:
		return StandardYAMLRenderer(articles)
	default:
		return renderArticlesTable(articles)
	}
}

func renderArticlesTable(articles []intercom.Article) error {
	if len(articles) == 0 {
		_, _ = os.Stdout.WriteString("No articles found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "State", "Updated")

	for _, article := range articles {
		_ = table.Append(article.ID, truncate(article.Title, previewLength),
			article.State, formatTimestamp(article.UpdatedAt))
	}

	_ = table.Render()

	return nil
}

func newArticlesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ARTICLE_ID",
		Short: "Get article details",
		Long:  "Display detailed information about a specific article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			article, err := apiClient.Articles().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(article)
			case OutputFormatYAML:
				return StandardYAMLRenderer(article)
			default:
				return renderArticleDetailsTable(article)
			}
		},
	}
}

func renderArticleDetailsTable(article *intercom.Article) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", article.ID)
	_ = table.Append("Title", article.Title)
	_ = table.Append("Description", orNA(article.Description))
	_ = table.Append("State", article.State)
	_ = table.Append("URL", orNA(article.URL))
	_ = table.Append("Created", formatTimestamp(article.CreatedAt))
	_ = table.Append("Updated", formatTimestamp(article.UpdatedAt))

	_ = table.Render()

	return nil
}

func newArticlesSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search PHRASE...",
		Short: "Search articles",
		Long:  "Full-text search over help center articles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := strings.TrimSpace(strings.Join(args, " "))
			if phrase == "" {
				return ErrSearchPhraseRequired
			}

			apiClient, err := CreateClient()
			if err != nil {
				return err
			}

			articles, err := apiClient.Articles().Search(context.Background(), phrase)
			if err != nil {
				return err
			}

			return outputArticles(articles)
		},
	}
}

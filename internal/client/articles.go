package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/SamP9999/intercom-cli/internal/http"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
)

// ArticlesClient implements intercom.ArticlesClient.
type ArticlesClient struct {
	httpClient *http.Client
}

// NewArticlesClient creates a new articles client.
func NewArticlesClient(httpClient *http.Client) *ArticlesClient {
	return &ArticlesClient{httpClient: httpClient}
}

// List implements intercom.ArticlesClient.List.
func (c *ArticlesClient) List(ctx context.Context, limit int) ([]intercom.Article, error) {
	articles, err := intercom.Paginate[intercom.Article](ctx, c.httpClient, "/articles", nil, "data", limit)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}

	return articles, nil
}

// Get implements intercom.ArticlesClient.Get.
func (c *ArticlesClient) Get(ctx context.Context, id string) (*intercom.Article, error) {
	resp, err := c.httpClient.Get(ctx, "/articles/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting article: %w", err)
	}

	var article intercom.Article
	if err := json.Unmarshal(resp.Body, &article); err != nil {
		return nil, fmt.Errorf("parsing article response: %w", err)
	}

	return &article, nil
}

// Search implements intercom.ArticlesClient.Search.
//
// Article search uses a phrase query parameter rather than the structured
// search body the other search endpoints accept.
func (c *ArticlesClient) Search(ctx context.Context, phrase string) ([]intercom.Article, error) {
	query := url.Values{}
	query.Set("phrase", phrase)

	resp, err := c.httpClient.Get(ctx, "/articles/search", query)
	if err != nil {
		return nil, fmt.Errorf("searching articles: %w", err)
	}

	var result struct {
		Data struct {
			Articles []intercom.Article `json:"articles"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing article search response: %w", err)
	}

	return result.Data.Articles, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SamP9999/intercom-cli/internal/http"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
)

// TagsClient implements intercom.TagsClient.
type TagsClient struct {
	httpClient *http.Client
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{httpClient: httpClient}
}

// List implements intercom.TagsClient.List.
func (c *TagsClient) List(ctx context.Context) ([]intercom.Tag, error) {
	resp, err := c.httpClient.Get(ctx, "/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var result struct {
		Data []intercom.Tag `json:"data"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing tags response: %w", err)
	}

	return result.Data, nil
}

// Create implements intercom.TagsClient.Create. The same endpoint renames
// an existing tag when the request carries its ID.
func (c *TagsClient) Create(ctx context.Context, request *intercom.TagCreateRequest) (*intercom.Tag, error) {
	resp, err := c.httpClient.Post(ctx, "/tags", request)
	if err != nil {
		return nil, fmt.Errorf("creating tag: %w", err)
	}

	var tag intercom.Tag
	if err := json.Unmarshal(resp.Body, &tag); err != nil {
		return nil, fmt.Errorf("parsing tag response: %w", err)
	}

	return &tag, nil
}

// Delete implements intercom.TagsClient.Delete.
func (c *TagsClient) Delete(ctx context.Context, id string) error {
	if _, err := c.httpClient.Delete(ctx, "/tags/"+id); err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}

	return nil
}

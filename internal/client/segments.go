package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SamP9999/intercom-cli/internal/http"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
)

// SegmentsClient implements intercom.SegmentsClient.
type SegmentsClient struct {
	httpClient *http.Client
}

// NewSegmentsClient creates a new segments client.
func NewSegmentsClient(httpClient *http.Client) *SegmentsClient {
	return &SegmentsClient{httpClient: httpClient}
}

// List implements intercom.SegmentsClient.List.
func (c *SegmentsClient) List(ctx context.Context) ([]intercom.Segment, error) {
	resp, err := c.httpClient.Get(ctx, "/segments", nil)
	if err != nil {
		return nil, fmt.Errorf("listing segments: %w", err)
	}

	var result struct {
		Segments []intercom.Segment `json:"segments"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing segments response: %w", err)
	}

	return result.Segments, nil
}

// Get implements intercom.SegmentsClient.Get.
func (c *SegmentsClient) Get(ctx context.Context, id string) (*intercom.Segment, error) {
	resp, err := c.httpClient.Get(ctx, "/segments/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting segment: %w", err)
	}

	var segment intercom.Segment
	if err := json.Unmarshal(resp.Body, &segment); err != nil {
		return nil, fmt.Errorf("parsing segment response: %w", err)
	}

	return &segment, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SamP9999/intercom-cli/internal/http"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
)

// TeamsClient implements intercom.TeamsClient.
type TeamsClient struct {
	httpClient *http.Client
}

// NewTeamsClient creates a new teams client.
func NewTeamsClient(httpClient *http.Client) *TeamsClient {
	return &TeamsClient{httpClient: httpClient}
}

// List implements intercom.TeamsClient.List.
func (c *TeamsClient) List(ctx context.Context) ([]intercom.Team, error) {
	resp, err := c.httpClient.Get(ctx, "/teams", nil)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}

	var result struct {
		Teams []intercom.Team `json:"teams"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing teams response: %w", err)
	}

	return result.Teams, nil
}

// Get implements intercom.TeamsClient.Get.
func (c *TeamsClient) Get(ctx context.Context, id string) (*intercom.Team, error) {
	resp, err := c.httpClient.Get(ctx, "/teams/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting team: %w", err)
	}

	var team intercom.Team
	if err := json.Unmarshal(resp.Body, &team); err != nil {
		return nil, fmt.Errorf("parsing team response: %w", err)
	}

	return &team, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SamP9999/intercom-cli/internal/http"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
)

// AdminsClient implements intercom.AdminsClient.
type AdminsClient struct {
	httpClient *http.Client
}

// NewAdminsClient creates a new admins client.
func NewAdminsClient(httpClient *http.Client) *AdminsClient {
	return &AdminsClient{httpClient: httpClient}
}

// List implements intercom.AdminsClient.List. The admins listing is not
// cursor-paginated; the server returns the full set in one response.
func (c *AdminsClient) List(ctx context.Context) ([]intercom.Admin, error) {
	resp, err := c.httpClient.Get(ctx, "/admins", nil)
	if err != nil {
		return nil, fmt.Errorf("listing admins: %w", err)
	}

	var result struct {
		Admins []intercom.Admin `json:"admins"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing admins response: %w", err)
	}

	return result.Admins, nil
}

// Get implements intercom.AdminsClient.Get.
func (c *AdminsClient) Get(ctx context.Context, id string) (*intercom.Admin, error) {
	resp, err := c.httpClient.Get(ctx, "/admins/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting admin: %w", err)
	}

	var admin intercom.Admin
	if err := json.Unmarshal(resp.Body, &admin); err != nil {
		return nil, fmt.Errorf("parsing admin response: %w", err)
	}

	return &admin, nil
}

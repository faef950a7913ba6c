package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SamP9999/intercom-cli/internal/http"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
)

// CompaniesClient implements intercom.CompaniesClient.
type CompaniesClient struct {
	httpClient *http.Client
}

// NewCompaniesClient creates a new companies client.
func NewCompaniesClient(httpClient *http.Client) *CompaniesClient {
	return &CompaniesClient{httpClient: httpClient}
}

// List implements intercom.CompaniesClient.List.
func (c *CompaniesClient) List(ctx context.Context, limit int) ([]intercom.Company, error) {
	companies, err := intercom.Paginate[intercom.Company](ctx, c.httpClient, "/companies", nil, "data", limit)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}

	return companies, nil
}

// Get implements intercom.CompaniesClient.Get.
func (c *CompaniesClient) Get(ctx context.Context, id string) (*intercom.Company, error) {
	resp, err := c.httpClient.Get(ctx, "/companies/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}

	var company intercom.Company
	if err := json.Unmarshal(resp.Body, &company); err != nil {
		return nil, fmt.Errorf("parsing company response: %w", err)
	}

	return &company, nil
}

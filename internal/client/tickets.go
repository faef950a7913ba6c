package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SamP9999/intercom-cli/internal/http"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
)

// TicketsClient implements intercom.TicketsClient.
type TicketsClient struct {
	httpClient *http.Client
}

// NewTicketsClient creates a new tickets client.
func NewTicketsClient(httpClient *http.Client) *TicketsClient {
	return &TicketsClient{httpClient: httpClient}
}

// Get implements intercom.TicketsClient.Get.
func (c *TicketsClient) Get(ctx context.Context, id string) (*intercom.Ticket, error) {
	resp, err := c.httpClient.Get(ctx, "/tickets/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting ticket: %w", err)
	}

	var ticket intercom.Ticket
	if err := json.Unmarshal(resp.Body, &ticket); err != nil {
		return nil, fmt.Errorf("parsing ticket response: %w", err)
	}

	return &ticket, nil
}

// Create implements intercom.TicketsClient.Create.
func (c *TicketsClient) Create(ctx context.Context, request *intercom.TicketCreateRequest) (*intercom.Ticket, error) {
	resp, err := c.httpClient.Post(ctx, "/tickets", request)
	if err != nil {
		return nil, fmt.Errorf("creating ticket: %w", err)
	}

	var ticket intercom.Ticket
	if err := json.Unmarshal(resp.Body, &ticket); err != nil {
		return nil, fmt.Errorf("parsing ticket response: %w", err)
	}

	return &ticket, nil
}

// Search implements intercom.TicketsClient.Search.
func (c *TicketsClient) Search(ctx context.Context, query *intercom.SearchQuery, limit int) ([]intercom.Ticket, error) {
	if query == nil {
		return nil, intercom.ErrQueryRequired
	}

	tickets, err := intercom.PaginateSearch[intercom.Ticket](ctx, c.httpClient, "/tickets/search", query.Body(), "tickets", limit)
	if err != nil {
		return nil, fmt.Errorf("searching tickets: %w", err)
	}

	return tickets, nil
}

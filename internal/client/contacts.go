package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SamP9999/intercom-cli/internal/http"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
)

// ContactsClient implements intercom.ContactsClient.
type ContactsClient struct {
	httpClient *http.Client
}

// NewContactsClient creates a new contacts client.
func NewContactsClient(httpClient *http.Client) *ContactsClient {
	return &ContactsClient{httpClient: httpClient}
}

// List implements intercom.ContactsClient.List.
func (c *ContactsClient) List(ctx context.Context, limit int) ([]intercom.Contact, error) {
	contacts, err := intercom.Paginate[intercom.Contact](ctx, c.httpClient, "/contacts", nil, "data", limit)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	return contacts, nil
}

// Get implements intercom.ContactsClient.Get.
func (c *ContactsClient) Get(ctx context.Context, id string) (*intercom.Contact, error) {
	resp, err := c.httpClient.Get(ctx, "/contacts/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting contact: %w", err)
	}

	var contact intercom.Contact
	if err := json.Unmarshal(resp.Body, &contact); err != nil {
		return nil, fmt.Errorf("parsing contact response: %w", err)
	}

	return &contact, nil
}

// Create implements intercom.ContactsClient.Create.
func (c *ContactsClient) Create(ctx context.Context, request *intercom.ContactCreateRequest) (*intercom.Contact, error) {
	resp, err := c.httpClient.Post(ctx, "/contacts", request)
	if err != nil {
		return nil, fmt.Errorf("creating contact: %w", err)
	}

	var contact intercom.Contact
	if err := json.Unmarshal(resp.Body, &contact); err != nil {
		return nil, fmt.Errorf("parsing contact response: %w", err)
	}

	return &contact, nil
}

// Update implements intercom.ContactsClient.Update.
func (c *ContactsClient) Update(ctx context.Context, id string, request *intercom.ContactUpdateRequest) (*intercom.Contact, error) {
	resp, err := c.httpClient.Put(ctx, "/contacts/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating contact: %w", err)
	}

	var contact intercom.Contact
	if err := json.Unmarshal(resp.Body, &contact); err != nil {
		return nil, fmt.Errorf("parsing contact response: %w", err)
	}

	return &contact, nil
}

// Delete implements intercom.ContactsClient.Delete.
func (c *ContactsClient) Delete(ctx context.Context, id string) error {
	if _, err := c.httpClient.Delete(ctx, "/contacts/"+id); err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}

	return nil
}

// Search implements intercom.ContactsClient.Search.
func (c *ContactsClient) Search(ctx context.Context, query *intercom.SearchQuery, limit int) ([]intercom.Contact, error) {
	if query == nil {
		return nil, intercom.ErrQueryRequired
	}

	contacts, err := intercom.PaginateSearch[intercom.Contact](ctx, c.httpClient, "/contacts/search", query.Body(), "data", limit)
	if err != nil {
		return nil, fmt.Errorf("searching contacts: %w", err)
	}

	return contacts, nil
}

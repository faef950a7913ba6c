package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SamP9999/intercom-cli/internal/http"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
)

// NotesClient implements intercom.NotesClient.
type NotesClient struct {
	httpClient *http.Client
}

// NewNotesClient creates a new notes client.
func NewNotesClient(httpClient *http.Client) *NotesClient {
	return &NotesClient{httpClient: httpClient}
}

// List implements intercom.NotesClient.List.
func (c *NotesClient) List(ctx context.Context, contactID string, limit int) ([]intercom.Note, error) {
	notes, err := intercom.Paginate[intercom.Note](ctx, c.httpClient, "/contacts/"+contactID+"/notes", nil, "data", limit)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	return notes, nil
}

// Create implements intercom.NotesClient.Create.
func (c *NotesClient) Create(ctx context.Context, contactID string, request *intercom.NoteCreateRequest) (*intercom.Note, error) {
	resp, err := c.httpClient.Post(ctx, "/contacts/"+contactID+"/notes", request)
	if err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	var note intercom.Note
	if err := json.Unmarshal(resp.Body, &note); err != nil {
		return nil, fmt.Errorf("parsing note response: %w", err)
	}

	return &note, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SamP9999/intercom-cli/internal/http"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
)

// ConversationsClient implements intercom.ConversationsClient.
type ConversationsClient struct {
	httpClient *http.Client
}

// NewConversationsClient creates a new conversations client.
func NewConversationsClient(httpClient *http.Client) *ConversationsClient {
	return &ConversationsClient{httpClient: httpClient}
}

// List implements intercom.ConversationsClient.List.
func (c *ConversationsClient) List(ctx context.Context, limit int) ([]intercom.Conversation, error) {
	conversations, err := intercom.Paginate[intercom.Conversation](ctx, c.httpClient, "/conversations", nil, "conversations", limit)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}

	return conversations, nil
}

// Get implements intercom.ConversationsClient.Get.
func (c *ConversationsClient) Get(ctx context.Context, id string) (*intercom.Conversation, error) {
	resp, err := c.httpClient.Get(ctx, "/conversations/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting conversation: %w", err)
	}

	var conversation intercom.Conversation
	if err := json.Unmarshal(resp.Body, &conversation); err != nil {
		return nil, fmt.Errorf("parsing conversation response: %w", err)
	}

	return &conversation, nil
}

// Search implements intercom.ConversationsClient.Search.
func (c *ConversationsClient) Search(ctx context.Context, query *intercom.SearchQuery, limit int) ([]intercom.Conversation, error) {
	if query == nil {
		return nil, intercom.ErrQueryRequired
	}

	conversations, err := intercom.PaginateSearch[intercom.Conversation](ctx, c.httpClient, "/conversations/search", query.Body(), "conversations", limit)
	if err != nil {
		return nil, fmt.Errorf("searching conversations: %w", err)
	}

	return conversations, nil
}

// Reply implements intercom.ConversationsClient.Reply.
func (c *ConversationsClient) Reply(ctx context.Context, id string, request *intercom.ConversationReplyRequest) (*intercom.Conversation, error) {
	resp, err := c.httpClient.Post(ctx, "/conversations/"+id+"/reply", request)
	if err != nil {
		return nil, fmt.Errorf("replying to conversation: %w", err)
	}

	var conversation intercom.Conversation
	if err := json.Unmarshal(resp.Body, &conversation); err != nil {
		return nil, fmt.Errorf("parsing conversation response: %w", err)
	}

	return &conversation, nil
}

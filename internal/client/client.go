package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SamP9999/intercom-cli/internal/http"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
)

// Client implements the intercom.Client interface.
type Client struct {
	httpClient *http.Client

	// Resource clients
	contacts      intercom.ContactsClient
	conversations intercom.ConversationsClient
	companies     intercom.CompaniesClient
	admins        intercom.AdminsClient
	teams         intercom.TeamsClient
	tags          intercom.TagsClient
	segments      intercom.SegmentsClient
	notes         intercom.NotesClient
	tickets       intercom.TicketsClient
	articles      intercom.ArticlesClient
}

// New creates a new Intercom API client from resolved credentials.
func New(config *intercom.Config) (*Client, error) {
	if config.AccessToken == "" {
		return nil, intercom.ErrAccessTokenRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = config.Region.BaseURL()
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(baseURL, config.AccessToken, httpOpts...)

	client := &Client{httpClient: httpClient}
	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *intercom.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.APIVersion != "" {
		httpOpts = append(httpOpts, http.WithAPIVersion(config.APIVersion))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.OnRateLimitWarning != nil {
		httpOpts = append(httpOpts, http.WithRateLimitWarning(config.OnRateLimitWarning))
	}

	if config.OnRetryWait != nil {
		httpOpts = append(httpOpts, http.WithRetryWait(config.OnRetryWait))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.contacts = NewContactsClient(c.httpClient)
	c.conversations = NewConversationsClient(c.httpClient)
	c.companies = NewCompaniesClient(c.httpClient)
	c.admins = NewAdminsClient(c.httpClient)
	c.teams = NewTeamsClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
	c.segments = NewSegmentsClient(c.httpClient)
	c.notes = NewNotesClient(c.httpClient)
	c.tickets = NewTicketsClient(c.httpClient)
	c.articles = NewArticlesClient(c.httpClient)
}

// Me implements intercom.Client.Me.
func (c *Client) Me(ctx context.Context) (*intercom.AdminWithApp, error) {
	resp, err := c.httpClient.Get(ctx, "/me", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current admin: %w", err)
	}

	var me intercom.AdminWithApp
	if err := json.Unmarshal(resp.Body, &me); err != nil {
		return nil, fmt.Errorf("parsing identity response: %w", err)
	}

	return &me, nil
}

// Resource client accessors

// Contacts implements intercom.Client.Contacts.
func (c *Client) Contacts() intercom.ContactsClient {
	return c.contacts
}

// Conversations implements intercom.Client.Conversations.
func (c *Client) Conversations() intercom.ConversationsClient {
	return c.conversations
}

// Companies implements intercom.Client.Companies.
func (c *Client) Companies() intercom.CompaniesClient {
	return c.companies
}

// Admins implements intercom.Client.Admins.
func (c *Client) Admins() intercom.AdminsClient {
	return c.admins
}

// Teams implements intercom.Client.Teams.
func (c *Client) Teams() intercom.TeamsClient {
	return c.teams
}

// Tags implements intercom.Client.Tags.
func (c *Client) Tags() intercom.TagsClient {
	return c.tags
}

// Segments implements intercom.Client.Segments.
func (c *Client) Segments() intercom.SegmentsClient {
	return c.segments
}

// Notes implements intercom.Client.Notes.
func (c *Client) Notes() intercom.NotesClient {
	return c.notes
}

// Tickets implements intercom.Client.Tickets.
func (c *Client) Tickets() intercom.TicketsClient {
	return c.tickets
}

// Articles implements intercom.Client.Articles.
func (c *Client) Articles() intercom.ArticlesClient {
	return c.articles
}

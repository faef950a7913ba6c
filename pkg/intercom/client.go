package intercom

import (
	"context"
	"errors"
	"time"
)

// Static errors that can be wrapped with context.
var (
	ErrAccessTokenRequired = errors.New("access token is required")
	ErrQueryRequired       = errors.New("search query requires at least one filter")
)

// Region identifies the Intercom deployment the client targets.
type Region string

// The hosted regions. Unrecognized values fall back to RegionUS.
const (
	RegionUS Region = "us"
	RegionEU Region = "eu"
	RegionAU Region = "au"
)

const (
	usBaseURL = "https://api.intercom.io"
	euBaseURL = "https://api.eu.intercom.io"
	auBaseURL = "https://api.au.intercom.io"
)

// BaseURL returns the API endpoint for the region.
func (r Region) BaseURL() string {
	switch r {
	case RegionEU:
		return euBaseURL
	case RegionAU:
		return auBaseURL
	default:
		return usBaseURL
	}
}

// ParseRegion normalizes a user-supplied region identifier, defaulting to
// RegionUS.
func ParseRegion(value string) Region {
	switch Region(value) {
	case RegionEU:
		return RegionEU
	case RegionAU:
		return RegionAU
	default:
		return RegionUS
	}
}

// Logger is the logging interface accepted by the client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config holds everything needed to construct a client. AccessToken and
// Region come from the credential resolver; the display callbacks are
// injected by the command layer and never owned by the access layer.
type Config struct {
	// AccessToken is the bearer token for the workspace. Required.
	AccessToken string

	// Region selects the API deployment. Unrecognized values default to US.
	Region Region

	// BaseURL overrides the region-derived endpoint. Used for testing.
	BaseURL string

	// APIVersion overrides the Intercom-Version header.
	APIVersion string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Logger receives debug/info/warn/error events.
	Logger Logger

	// Debug logs every HTTP request and response through Logger.
	Debug bool

	// RetryMax enables retries of connection-level failures. HTTP status
	// handling, including 429, is independent of this setting.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// OnRateLimitWarning is called when the rolling request count crosses
	// the advisory threshold. It must not block.
	OnRateLimitWarning func(count, budget int)

	// OnRetryWait is called before the client sleeps out a 429 delay.
	OnRetryWait func(delay time.Duration)
}

// Client is the full API surface of the library.
type Client interface {
	Contacts() ContactsClient
	Conversations() ConversationsClient
	Companies() CompaniesClient
	Admins() AdminsClient
	Teams() TeamsClient
	Tags() TagsClient
	Segments() SegmentsClient
	Notes() NotesClient
	Tickets() TicketsClient
	Articles() ArticlesClient

	// Me returns the admin and workspace the access token belongs to.
	Me(ctx context.Context) (*AdminWithApp, error)
}

// ContactsClient manages contacts.
type ContactsClient interface {
	List(ctx context.Context, limit int) ([]Contact, error)
	Get(ctx context.Context, id string) (*Contact, error)
	Create(ctx context.Context, request *ContactCreateRequest) (*Contact, error)
	Update(ctx context.Context, id string, request *ContactUpdateRequest) (*Contact, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query *SearchQuery, limit int) ([]Contact, error)
}

// ConversationsClient manages conversations.
type ConversationsClient interface {
	List(ctx context.Context, limit int) ([]Conversation, error)
	Get(ctx context.Context, id string) (*Conversation, error)
	Search(ctx context.Context, query *SearchQuery, limit int) ([]Conversation, error)
	Reply(ctx context.Context, id string, request *ConversationReplyRequest) (*Conversation, error)
}

// CompaniesClient manages companies.
type CompaniesClient interface {
	List(ctx context.Context, limit int) ([]Company, error)
	Get(ctx context.Context, id string) (*Company, error)
}

// AdminsClient manages admins.
type AdminsClient interface {
	List(ctx context.Context) ([]Admin, error)
	Get(ctx context.Context, id string) (*Admin, error)
}

// TeamsClient manages teams.
type TeamsClient interface {
	List(ctx context.Context) ([]Team, error)
	Get(ctx context.Context, id string) (*Team, error)
}

// TagsClient manages tags.
type TagsClient interface {
	List(ctx context.Context) ([]Tag, error)
	Create(ctx context.Context, request *TagCreateRequest) (*Tag, error)
	Delete(ctx context.Context, id string) error
}

// SegmentsClient manages segments.
type SegmentsClient interface {
	List(ctx context.Context) ([]Segment, error)
	Get(ctx context.Context, id string) (*Segment, error)
}

// NotesClient manages notes attached to contacts.
type NotesClient interface {
	List(ctx context.Context, contactID string, limit int) ([]Note, error)
	Create(ctx context.Context, contactID string, request *NoteCreateRequest) (*Note, error)
}

// TicketsClient manages tickets.
type TicketsClient interface {
	Get(ctx context.Context, id string) (*Ticket, error)
	Create(ctx context.Context, request *TicketCreateRequest) (*Ticket, error)
	Search(ctx context.Context, query *SearchQuery, limit int) ([]Ticket, error)
}

// ArticlesClient manages help center articles.
type ArticlesClient interface {
	List(ctx context.Context, limit int) ([]Article, error)
	Get(ctx context.Context, id string) (*Article, error)
	Search(ctx context.Context, phrase string) ([]Article, error)
}

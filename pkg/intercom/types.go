package intercom

// Intercom timestamps are unix epoch seconds.
type Timestamp = int64

// Contact represents a user or lead in the workspace.
type Contact struct {
	Type             string                 `json:"type"                        yaml:"type"`
	ID               string                 `json:"id"                          yaml:"id"`
	WorkspaceID      string                 `json:"workspace_id,omitempty"      yaml:"workspace_id,omitempty"`
	ExternalID       string                 `json:"external_id,omitempty"       yaml:"external_id,omitempty"`
	Role             string                 `json:"role"                        yaml:"role"`
	Email            string                 `json:"email,omitempty"             yaml:"email,omitempty"`
	Phone            string                 `json:"phone,omitempty"             yaml:"phone,omitempty"`
	Name             string                 `json:"name,omitempty"              yaml:"name,omitempty"`
	CreatedAt        Timestamp              `json:"created_at"                  yaml:"created_at"`
	UpdatedAt        Timestamp              `json:"updated_at"                  yaml:"updated_at"`
	LastSeenAt       Timestamp              `json:"last_seen_at,omitempty"      yaml:"last_seen_at,omitempty"`
	UnsubscribedFrom bool                   `json:"unsubscribed_from_emails"    yaml:"unsubscribed_from_emails"`
	CustomAttributes map[string]interface{} `json:"custom_attributes,omitempty" yaml:"custom_attributes,omitempty"`
}

// ContactCreateRequest creates a new contact.
type ContactCreateRequest struct {
	Role             string                 `json:"role,omitempty"              yaml:"role,omitempty"`
	ExternalID       string                 `json:"external_id,omitempty"       yaml:"external_id,omitempty"`
	Email            string                 `json:"email,omitempty"             yaml:"email,omitempty"`
	Phone            string                 `json:"phone,omitempty"             yaml:"phone,omitempty"`
	Name             string                 `json:"name,omitempty"              yaml:"name,omitempty"`
	CustomAttributes map[string]interface{} `json:"custom_attributes,omitempty" yaml:"custom_attributes,omitempty"`
}

// ContactUpdateRequest updates an existing contact. Zero fields are left
// untouched.
type ContactUpdateRequest struct {
	Role             string                 `json:"role,omitempty"              yaml:"role,omitempty"`
	ExternalID       string                 `json:"external_id,omitempty"       yaml:"external_id,omitempty"`
	Email            string                 `json:"email,omitempty"             yaml:"email,omitempty"`
	Phone            string                 `json:"phone,omitempty"             yaml:"phone,omitempty"`
	Name             string                 `json:"name,omitempty"              yaml:"name,omitempty"`
	CustomAttributes map[string]interface{} `json:"custom_attributes,omitempty" yaml:"custom_attributes,omitempty"`
}

// ConversationSource describes the message that started a conversation.
type ConversationSource struct {
	Type        string              `json:"type"                  yaml:"type"`
	ID          string              `json:"id"                    yaml:"id"`
	DeliveredAs string              `json:"delivered_as"          yaml:"delivered_as"`
	Subject     string              `json:"subject,omitempty"     yaml:"subject,omitempty"`
	Body        string              `json:"body"                  yaml:"body"`
	Author      *ConversationAuthor `json:"author,omitempty"      yaml:"author,omitempty"`
	Attachments []interface{}       `json:"attachments,omitempty" yaml:"attachments,omitempty"`
}

// ConversationAuthor identifies who wrote a conversation part.
type ConversationAuthor struct {
	Type  string `json:"type"            yaml:"type"`
	ID    string `json:"id"              yaml:"id"`
	Name  string `json:"name,omitempty"  yaml:"name,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// ConversationTags wraps the tags applied to a conversation.
type ConversationTags struct {
	Type string `json:"type" yaml:"type"`
	Tags []Tag  `json:"tags" yaml:"tags"`
}

// Conversation represents a conversation between contacts and admins.
type Conversation struct {
	Type            string              `json:"type"                       yaml:"type"`
	ID              string              `json:"id"                         yaml:"id"`
	Title           string              `json:"title,omitempty"            yaml:"title,omitempty"`
	State           string              `json:"state"                      yaml:"state"`
	Open            bool                `json:"open"                       yaml:"open"`
	Read            bool                `json:"read"                       yaml:"read"`
	Priority        string              `json:"priority,omitempty"         yaml:"priority,omitempty"`
	CreatedAt       Timestamp           `json:"created_at"                 yaml:"created_at"`
	UpdatedAt       Timestamp           `json:"updated_at"                 yaml:"updated_at"`
	WaitingSince    Timestamp           `json:"waiting_since,omitempty"    yaml:"waiting_since,omitempty"`
	AdminAssigneeID int64               `json:"admin_assignee_id,omitempty" yaml:"admin_assignee_id,omitempty"`
	TeamAssigneeID  int64               `json:"team_assignee_id,omitempty" yaml:"team_assignee_id,omitempty"`
	Source          *ConversationSource `json:"source,omitempty"           yaml:"source,omitempty"`
	Tags            *ConversationTags   `json:"tags,omitempty"             yaml:"tags,omitempty"`
}

// ConversationReplyRequest posts a reply onto a conversation.
type ConversationReplyRequest struct {
	MessageType string `json:"message_type"       yaml:"message_type"`
	Type        string `json:"type"               yaml:"type"`
	AdminID     string `json:"admin_id,omitempty" yaml:"admin_id,omitempty"`
	Body        string `json:"body"               yaml:"body"`
}

// CompanyPlan is the plan a company is on.
type CompanyPlan struct {
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	ID   string `json:"id,omitempty"   yaml:"id,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Company represents a company record.
type Company struct {
	Type         string       `json:"type"                    yaml:"type"`
	ID           string       `json:"id"                      yaml:"id"`
	CompanyID    string       `json:"company_id,omitempty"    yaml:"company_id,omitempty"`
	Name         string       `json:"name"                    yaml:"name"`
	Website      string       `json:"website,omitempty"       yaml:"website,omitempty"`
	Industry     string       `json:"industry,omitempty"      yaml:"industry,omitempty"`
	Plan         *CompanyPlan `json:"plan,omitempty"          yaml:"plan,omitempty"`
	UserCount    int          `json:"user_count"              yaml:"user_count"`
	SessionCount int          `json:"session_count"           yaml:"session_count"`
	MonthlySpend float64      `json:"monthly_spend"           yaml:"monthly_spend"`
	CreatedAt    Timestamp    `json:"created_at"              yaml:"created_at"`
	UpdatedAt    Timestamp    `json:"updated_at"              yaml:"updated_at"`
	LastRequestAt Timestamp   `json:"last_request_at,omitempty" yaml:"last_request_at,omitempty"`
}

// Admin represents a teammate with workspace access.
type Admin struct {
	Type            string  `json:"type"                        yaml:"type"`
	ID              string  `json:"id"                          yaml:"id"`
	Name            string  `json:"name"                        yaml:"name"`
	Email           string  `json:"email"                       yaml:"email"`
	JobTitle        string  `json:"job_title,omitempty"         yaml:"job_title,omitempty"`
	AwayModeEnabled bool    `json:"away_mode_enabled"           yaml:"away_mode_enabled"`
	AwayModeReassign bool   `json:"away_mode_reassign"          yaml:"away_mode_reassign"`
	HasInboxSeat    bool    `json:"has_inbox_seat"              yaml:"has_inbox_seat"`
	TeamIDs         []int64 `json:"team_ids,omitempty"          yaml:"team_ids,omitempty"`
}

// App identifies the workspace an access token belongs to.
type App struct {
	Type      string    `json:"type"       yaml:"type"`
	IDCode    string    `json:"id_code"    yaml:"id_code"`
	Name      string    `json:"name"       yaml:"name"`
	Region    string    `json:"region"     yaml:"region"`
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
}

// AdminWithApp is the response of the identity endpoint: the calling admin
// plus the workspace the token is scoped to.
type AdminWithApp struct {
	Admin `yaml:",inline"`
	App   *App `json:"app,omitempty" yaml:"app,omitempty"`
}

// Team represents a group of admins.
type Team struct {
	Type     string  `json:"type"                yaml:"type"`
	ID       string  `json:"id"                  yaml:"id"`
	Name     string  `json:"name"                yaml:"name"`
	AdminIDs []int64 `json:"admin_ids,omitempty" yaml:"admin_ids,omitempty"`
}

// Tag represents a label applied to contacts, companies, or conversations.
type Tag struct {
	Type string `json:"type" yaml:"type"`
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// TagCreateRequest creates or renames a tag.
type TagCreateRequest struct {
	Name string `json:"name"         yaml:"name"`
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
}

// Segment represents a saved filter over contacts.
type Segment struct {
	Type       string    `json:"type"                  yaml:"type"`
	ID         string    `json:"id"                    yaml:"id"`
	Name       string    `json:"name"                  yaml:"name"`
	PersonType string    `json:"person_type,omitempty" yaml:"person_type,omitempty"`
	Count      int       `json:"count,omitempty"       yaml:"count,omitempty"`
	CreatedAt  Timestamp `json:"created_at"            yaml:"created_at"`
	UpdatedAt  Timestamp `json:"updated_at"            yaml:"updated_at"`
}

// Note represents a note attached to a contact.
type Note struct {
	Type      string    `json:"type"             yaml:"type"`
	ID        string    `json:"id"               yaml:"id"`
	Body      string    `json:"body"             yaml:"body"`
	Author    *Admin    `json:"author,omitempty" yaml:"author,omitempty"`
	CreatedAt Timestamp `json:"created_at"       yaml:"created_at"`
}

// NoteCreateRequest attaches a note to a contact.
type NoteCreateRequest struct {
	Body    string `json:"body"               yaml:"body"`
	AdminID string `json:"admin_id,omitempty" yaml:"admin_id,omitempty"`
}

// TicketContact references a contact on a ticket.
type TicketContact struct {
	ID    string `json:"id,omitempty"    yaml:"id,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Ticket represents a tracked unit of work in the helpdesk.
type Ticket struct {
	Type             string                 `json:"type"                        yaml:"type"`
	ID               string                 `json:"id"                          yaml:"id"`
	TicketID         string                 `json:"ticket_id,omitempty"         yaml:"ticket_id,omitempty"`
	TicketState      string                 `json:"ticket_state,omitempty"      yaml:"ticket_state,omitempty"`
	Open             bool                   `json:"open"                        yaml:"open"`
	CreatedAt        Timestamp              `json:"created_at"                  yaml:"created_at"`
	UpdatedAt        Timestamp              `json:"updated_at"                  yaml:"updated_at"`
	TicketAttributes map[string]interface{} `json:"ticket_attributes,omitempty" yaml:"ticket_attributes,omitempty"`
}

// TicketCreateRequest opens a new ticket.
type TicketCreateRequest struct {
	TicketTypeID     string                 `json:"ticket_type_id"              yaml:"ticket_type_id"`
	Contacts         []TicketContact        `json:"contacts"                    yaml:"contacts"`
	TicketAttributes map[string]interface{} `json:"ticket_attributes,omitempty" yaml:"ticket_attributes,omitempty"`
}

// Article represents a help center article.
type Article struct {
	Type        string    `json:"type"                   yaml:"type"`
	ID          string    `json:"id"                     yaml:"id"`
	WorkspaceID string    `json:"workspace_id,omitempty" yaml:"workspace_id,omitempty"`
	Title       string    `json:"title"                  yaml:"title"`
	Description string    `json:"description,omitempty"  yaml:"description,omitempty"`
	Body        string    `json:"body,omitempty"         yaml:"body,omitempty"`
	AuthorID    int64     `json:"author_id,omitempty"    yaml:"author_id,omitempty"`
	State       string    `json:"state"                  yaml:"state"`
	URL         string    `json:"url,omitempty"          yaml:"url,omitempty"`
	ParentID    int64     `json:"parent_id,omitempty"    yaml:"parent_id,omitempty"`
	ParentType  string    `json:"parent_type,omitempty"  yaml:"parent_type,omitempty"`
	CreatedAt   Timestamp `json:"created_at"             yaml:"created_at"`
	UpdatedAt   Timestamp `json:"updated_at"             yaml:"updated_at"`
}

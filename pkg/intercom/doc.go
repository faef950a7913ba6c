// Package intercom provides types, interfaces, and helpers for working with
// the Intercom REST API.
//
// # Overview
//
// The intercom package defines the domain types (Contact, Conversation,
// Company, Ticket, ...) and the interfaces for resource-oriented clients
// (ContactsClient, ConversationsClient, ...). The concrete implementation
// lives in internal/client, which wires the transport, rate accounting, and
// error classification; the CLI constructs it from resolved credentials.
//
// # Pagination
//
// Listings are cursor-based. Paginate and PaginateSearch flatten a full
// listing into one ordered slice, fetching pages sequentially and stopping
// at the caller's limit or when the server stops returning a cursor:
//
//	contacts, err := intercom.Paginate[intercom.Contact](ctx, fetcher, "/contacts", nil, "data", 200)
//
// # Errors
//
// Failed calls are represented by APIError, which carries the error kind,
// originating status code, and human message. Helpers such as IsNotFound
// and IsAuthFailed make it easy to branch on common cases. Rate-limited
// calls (429) never surface as errors: the transport waits out the
// server-declared delay and resends.
//
// # Search
//
// SearchQuery assembles the field/operator/value filter tree used by the
// search endpoints; multiple filters combine with AND.
package intercom

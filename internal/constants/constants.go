package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network settings.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultAPIVersion is the Intercom-Version header sent with every
	// request.
	DefaultAPIVersion = "2.11"

	// DefaultUserAgent identifies the CLI to the API.
	DefaultUserAgent = "intercom-cli"
)

// Retry settings for connection-level failures.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Rate limiting. Intercom budgets 1000 requests per rolling minute per
// workspace; the client warns at 90% of that.
const (
	// RateLimitWindow is the rolling accounting period.
	RateLimitWindow = time.Minute

	// RateLimitBudget is the server-side request budget per window.
	RateLimitBudget = 1000

	// RateLimitWarnAt is the advisory warning threshold.
	RateLimitWarnAt = 900
)

// Exit codes returned by the CLI entrypoint.
const (
	// ExitCodeError is the generic failure exit code.
	ExitCodeError = 1

	// ExitCodeAuthFailed is returned for authentication failures.
	ExitCodeAuthFailed = 2

	// ExitCodeNotFound is returned when a requested resource does not
	// exist.
	ExitCodeNotFound = 3
)

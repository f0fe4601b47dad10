// Package tdameritrade provides a client for the TD Ameritrade brokerage REST API.
package tdameritrade

import "time"

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.tdameritrade.com/v1"

// Config holds configuration for the TD Ameritrade API client.
type Config struct {
	// Consumer key, sent as the apikey query parameter when set
	APIKey string `envconfig:"TDA_API_KEY"`
	// Bearer token for the Authorization header
	AccessToken string `envconfig:"TDA_ACCESS_TOKEN" required:"true"`
	// API root (e.g., "https://api.tdameritrade.com/v1")
	BaseURL string `envconfig:"TDA_BASE_URL" default:"https://api.tdameritrade.com/v1"`
	// Per-request timeout; 0 waits indefinitely
	Timeout time.Duration `envconfig:"TDA_REQUEST_TIMEOUT" default:"0s"`
}

package schlep

import (
	"net/http"
	"time"

	"github.com/schlep-engine/go-sdk/util"
)

// DefaultBaseURL is the production Schlep-engine endpoint.
const DefaultBaseURL = "https://api.schlep-engine.com/v1"

// maxRetryLimit bounds MaxRetries so the retry loop always terminates before
// try's own attempt cap and never sleeps for minutes in backoff.
const maxRetryLimit = 5

// Options tunes client behavior. The zero value is usable; CheckDefaults
// fills in anything left unset.
type Options struct {
	// BaseURL overrides the platform endpoint. Mostly useful for testing
	// and on-prem installs.
	BaseURL string
	// RequestTimeout bounds each HTTP request. Streaming connections are
	// not subject to it.
	RequestTimeout time.Duration
	// MaxRetries enables retrying of transport failures and 5xx responses
	// with exponential backoff. Zero (the default) fails fast and leaves
	// retry policy to the caller. Values above 5 are clamped.
	MaxRetries int
	// Logger replaces the SDK-wide logger when non-nil.
	Logger util.Logger
	// HTTPClient replaces the default client. Streaming connections reuse
	// its transport but never its timeout.
	HTTPClient    *http.Client
	DefaultHeader map[string]string
}

func (o *Options) CheckDefaults() {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 30 * time.Second
	} else if o.RequestTimeout < 5*time.Second {
		util.Warnf("RequestTimeout cannot be less than 5 seconds. Defaulting to 5 seconds.")
		o.RequestTimeout = 5 * time.Second
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	} else if o.MaxRetries > maxRetryLimit {
		util.Warnf("MaxRetries cannot exceed %d. Defaulting to %d.", maxRetryLimit, maxRetryLimit)
		o.MaxRetries = maxRetryLimit
	}
}

// HTTPConfiguration is the resolved, immutable transport configuration
// shared by every sub-client.
type HTTPConfiguration struct {
	BasePath      string            `json:"basePath,omitempty"`
	DefaultHeader map[string]string `json:"defaultHeader,omitempty"`
	UserAgent     string            `json:"userAgent,omitempty"`
	HTTPClient    *http.Client
}

func NewConfiguration(options *Options) *HTTPConfiguration {
	cfg := &HTTPConfiguration{
		BasePath:      options.BaseURL,
		DefaultHeader: make(map[string]string),
		UserAgent:     "Schlep-Engine-SDK/" + VERSION + "/go",
		HTTPClient:    options.HTTPClient,
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{
			// Set an explicit timeout so that we don't wait forever on a request
			Timeout: options.RequestTimeout,
		}
	}
	for k, v := range options.DefaultHeader {
		cfg.DefaultHeader[k] = v
	}
	return cfg
}

func (c *HTTPConfiguration) AddDefaultHeader(key string, value string) {
	c.DefaultHeader[key] = value
}

package schlep

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/schlep-engine/go-sdk/util"
)

// APIKeyEnvVar is the environment variable NewClientFromEnv reads.
const APIKeyEnvVar = "SCHLEP_API_KEY"

// Client talks to the Schlep-engine platform. In most cases there should be
// only one, shared Client; it holds no mutable state and is safe for
// concurrent use.
type Client struct {
	cfg     *HTTPConfiguration
	options *Options
	apiKey  string
	common  service // Reuse a single struct instead of allocating one for each service on the heap.

	validate *validator.Validate

	data       *DataService
	ml         *MLService
	analytics  *AnalyticsService
	document   *DocumentService
	quality    *QualityService
	storage    *StorageService
	monitoring *MonitoringService
	users      *UsersService
	admin      *AdminService
}

type service struct {
	client *Client
}

// NewClient creates a client authenticated with the given API key.
func NewClient(apiKey string, options *Options) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &ConfigError{Message: "API key cannot be empty"}
	}
	if options == nil {
		options = &Options{}
	}
	if options.Logger != nil {
		util.SetLogger(options.Logger)
	}
	options.CheckDefaults()

	c := &Client{
		cfg:      NewConfiguration(options),
		options:  options,
		apiKey:   apiKey,
		validate: validator.New(),
	}
	c.common.client = c
	c.data = (*DataService)(&c.common)
	c.ml = (*MLService)(&c.common)
	c.analytics = (*AnalyticsService)(&c.common)
	c.document = (*DocumentService)(&c.common)
	c.quality = (*QualityService)(&c.common)
	c.storage = (*StorageService)(&c.common)
	c.monitoring = (*MonitoringService)(&c.common)
	c.users = (*UsersService)(&c.common)
	c.admin = (*AdminService)(&c.common)
	return c, nil
}

// NewClientFromEnv creates a client with the API key from the
// SCHLEP_API_KEY environment variable.
func NewClientFromEnv(options *Options) (*Client, error) {
	apiKey := os.Getenv(APIKeyEnvVar)
	if apiKey == "" {
		return nil, &ConfigError{Message: APIKeyEnvVar + " environment variable not set"}
	}
	return NewClient(apiKey, options)
}

// NewClientWithBaseURL creates a client against a non-default endpoint.
func NewClientWithBaseURL(apiKey string, baseURL string, options *Options) (*Client, error) {
	if baseURL == "" {
		return nil, &ConfigError{Message: "base URL cannot be empty"}
	}
	if options == nil {
		options = &Options{}
	}
	options.BaseURL = baseURL
	return NewClient(apiKey, options)
}

// BasePath returns the endpoint the client was configured with.
func (c *Client) BasePath() string {
	return c.cfg.BasePath
}

// Data accesses the data processing API.
func (c *Client) Data() *DataService { return c.data }

// ML accesses the ML pipeline API.
func (c *Client) ML() *MLService { return c.ml }

// Analytics accesses the analytics API.
func (c *Client) Analytics() *AnalyticsService { return c.analytics }

// Document accesses the document extraction API.
func (c *Client) Document() *DocumentService { return c.document }

// Quality accesses the data quality API.
func (c *Client) Quality() *QualityService { return c.quality }

// Storage accesses the file storage API.
func (c *Client) Storage() *StorageService { return c.storage }

// Monitoring accesses the monitoring API.
func (c *Client) Monitoring() *MonitoringService { return c.monitoring }

// Users accesses the user profile and API key management API.
func (c *Client) Users() *UsersService { return c.users }

// Admin accesses the administrative API.
func (c *Client) Admin() *AdminService { return c.admin }

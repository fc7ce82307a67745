package schlep

import "fmt"

// ConfigError reports an invalid client configuration or a missing required
// argument, detected before any request is sent.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Message
}

// HTTPError reports a transport-level failure (DNS, connect, TLS, timeout).
// The request never produced an HTTP status.
type HTTPError struct {
	Err error
}

func (e *HTTPError) Error() string {
	return "http request failed: " + e.Err.Error()
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from the platform. Code and Message are
// filled from the error envelope when the body parses; otherwise Message
// carries the raw body or status text.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// DecodeError reports a 2xx response whose body did not match the expected
// shape, either failing to unmarshal or missing required fields.
type DecodeError struct {
	Err  error
	Body []byte
}

func (e *DecodeError) Error() string {
	return "invalid api response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func errRequiredArgument(name string) error {
	return &ConfigError{Message: name + " is required"}
}

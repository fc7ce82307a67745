package schlep

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"

	"github.com/schlep-engine/go-sdk/util"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(test_apiKey, &Options{Logger: util.DiscardLogger{}})
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	c, err := NewClient(test_apiKey, nil)
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, c.BasePath())
}

func TestNewClient_EmptyKey(t *testing.T) {
	_, err := NewClient("", nil)
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)

	_, err = NewClient("   ", nil)
	require.ErrorAs(t, err, &configErr)
}

func TestNewClientFromEnv(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "env-api-key")
	c, err := NewClientFromEnv(nil)
	require.NoError(t, err)
	require.Equal(t, "env-api-key", c.apiKey)
}

func TestNewClientFromEnv_Unset(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "")
	_, err := NewClientFromEnv(nil)
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestNewClientWithBaseURL(t *testing.T) {
	c, err := NewClientWithBaseURL(test_apiKey, "http://localhost:9999/v1", nil)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9999/v1", c.BasePath())

	_, err = NewClientWithBaseURL(test_apiKey, "", nil)
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestClient_RequestHeaders(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var gotAuth, gotRequestID, gotAccept string
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/monitoring/health",
		func(req *http.Request) (*http.Response, error) {
			gotAuth = req.Header.Get("Authorization")
			gotRequestID = req.Header.Get("X-Request-Id")
			gotAccept = req.Header.Get("Accept")
			return httpmock.NewStringResponse(200, `{"status": "healthy"}`), nil
		},
	)

	c := testClient(t)
	_, err := c.Monitoring().GetHealth(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer "+test_apiKey, gotAuth)
	require.NotEmpty(t, gotRequestID)
	require.Equal(t, "application/json", gotAccept)
}

func TestClient_APIErrorMapping(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpAPIErrorMock("GET", "/data/jobs/missing", 404, "not_found", "job missing")

	c := testClient(t)
	_, err := c.Data().GetJob(context.Background(), "missing")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.StatusCode)
	require.Equal(t, "not_found", apiErr.Code)
	require.Equal(t, "job missing", apiErr.Message)
}

func TestClient_APIErrorWithoutEnvelope(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpJSONMock("GET", "/data/jobs/j1", 502, `upstream exploded`)

	c := testClient(t)
	_, err := c.Data().GetJob(context.Background(), "j1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 502, apiErr.StatusCode)
	require.Empty(t, apiErr.Code)
	require.Equal(t, "upstream exploded", apiErr.Message)
}

func TestClient_DecodeErrorOnMissingRequiredField(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	// job_id is required in ProcessingJob; make sure a partial body fails
	// decoding instead of returning a half-populated value.
	httpJSONMock("GET", "/data/jobs/j2", 200, `{"status": "processing"}`)

	c := testClient(t)
	_, err := c.Data().GetJob(context.Background(), "j2")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestClient_DecodeErrorOnMalformedBody(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpJSONMock("GET", "/data/jobs/j3", 200, `{not json`)

	c := testClient(t)
	_, err := c.Data().GetJob(context.Background(), "j3")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestClient_TransportErrorIsHTTPError(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/monitoring/health",
		httpmock.NewErrorResponder(errors.New("connection refused")))

	c := testClient(t)
	_, err := c.Monitoring().GetHealth(context.Background())

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
}

func TestClient_RetriesWhenEnabled(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	calls := 0
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/monitoring/health",
		func(req *http.Request) (*http.Response, error) {
			calls++
			if calls == 1 {
				return httpmock.NewStringResponse(500, `{}`), nil
			}
			return httpmock.NewStringResponse(200, `{"status": "healthy"}`), nil
		},
	)

	c, err := NewClient(test_apiKey, &Options{MaxRetries: 2, Logger: util.DiscardLogger{}})
	require.NoError(t, err)

	health, err := c.Monitoring().GetHealth(context.Background())
	require.NoError(t, err)
	require.Equal(t, "healthy", health.Status)
	require.Equal(t, 2, calls)
}

func TestClient_NoRetriesByDefault(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	calls := 0
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/monitoring/health",
		func(req *http.Request) (*http.Response, error) {
			calls++
			return httpmock.NewStringResponse(500, `{"code": "internal", "message": "boom"}`), nil
		},
	)

	c := testClient(t)
	_, err := c.Monitoring().GetHealth(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 500, apiErr.StatusCode)
	require.Equal(t, 1, calls)
}

func TestClient_RequiredArgumentValidation(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()

	var configErr *ConfigError
	_, err := c.Data().GetJob(ctx, "")
	require.ErrorAs(t, err, &configErr)
	_, err = c.ML().GetPipeline(ctx, "")
	require.ErrorAs(t, err, &configErr)
	_, err = c.Storage().DownloadFile(ctx, "")
	require.ErrorAs(t, err, &configErr)
	err = c.Users().RevokeAPIKey(ctx, "")
	require.ErrorAs(t, err, &configErr)
}

func TestClient_MaxRetriesClamped(t *testing.T) {
	c, err := NewClient(test_apiKey, &Options{MaxRetries: 99, Logger: util.DiscardLogger{}})
	require.NoError(t, err)
	require.Equal(t, 5, c.options.MaxRetries)
}

func TestClient_ExhaustedRetriesReturnAPIError(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	calls := 0
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/monitoring/health",
		func(req *http.Request) (*http.Response, error) {
			calls++
			return httpmock.NewStringResponse(500, `{"code": "internal", "message": "boom"}`), nil
		},
	)

	c, err := NewClient(test_apiKey, &Options{MaxRetries: 1, Logger: util.DiscardLogger{}})
	require.NoError(t, err)

	_, err = c.Monitoring().GetHealth(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 500, apiErr.StatusCode)
	require.Equal(t, 2, calls)
}

func TestClient_ExhaustedRetriesReturnHTTPError(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/monitoring/health",
		httpmock.NewErrorResponder(errors.New("connection refused")))

	c, err := NewClient(test_apiKey, &Options{MaxRetries: 1, Logger: util.DiscardLogger{}})
	require.NoError(t, err)

	_, err = c.Monitoring().GetHealth(context.Background())
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
}

func TestRetryBackoffCapped(t *testing.T) {
	for attempt := 1; attempt <= 20; attempt++ {
		require.LessOrEqual(t, retryBackoff(attempt), maxBackoffDelay)
	}
}

func TestClient_APIErrorCodeOnlyEnvelope(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpJSONMock("GET", "/data/jobs/j4", 429, `{"code": "rate_limited", "message": ""}`)

	c := testClient(t)
	_, err := c.Data().GetJob(context.Background(), "j4")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 429, apiErr.StatusCode)
	require.Equal(t, "rate_limited", apiErr.Code)
	require.Equal(t, http.StatusText(429), apiErr.Message)
}

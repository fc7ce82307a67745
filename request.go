package schlep

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/matryer/try"

	"github.com/schlep-engine/go-sdk/api"
	"github.com/schlep-engine/go-sdk/util"
)

// errServerRetry marks a 5xx response inside the retry loop so exhausted
// retries still surface the response as an APIError instead of losing it.
var errServerRetry = errors.New("server error, retrying")

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())
	for header, value := range c.cfg.DefaultHeader {
		req.Header.Set(header, value)
	}
}

// prepareRequest builds a JSON request against the configured base path.
func (c *Client) prepareRequest(ctx context.Context, method string, path string, body []byte, queryParams url.Values) (*http.Request, error) {
	u, err := url.Parse(c.cfg.BasePath + path)
	if err != nil {
		return nil, &ConfigError{Message: "invalid request URL: " + err.Error()}
	}
	if len(queryParams) > 0 {
		query := u.Query()
		for k, values := range queryParams {
			for _, v := range values {
				query.Add(k, v)
			}
		}
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, &ConfigError{Message: "cannot build request: " + err.Error()}
	}
	c.setCommonHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// doRequest sends the request and reads the full body. buildReq is invoked
// per attempt so retries never reuse a consumed body reader. Retrying only
// happens when Options.MaxRetries is set; the default is a single attempt
// with the failure handed straight back to the caller.
func (c *Client) doRequest(buildReq func() (*http.Request, error)) (status int, respBody []byte, err error) {
	var response *http.Response

	err = try.Do(func(attempt int) (bool, error) {
		req, err := buildReq()
		if err != nil {
			// Never retry a request we could not even build.
			return false, err
		}

		response, err = c.cfg.HTTPClient.Do(req)
		if err == nil {
			respBody, err = io.ReadAll(response.Body)
			response.Body.Close()
		}
		if err != nil {
			err = &HTTPError{Err: err}
		} else if response.StatusCode >= 500 && attempt <= c.options.MaxRetries {
			err = errServerRetry
		}
		if err != nil && attempt <= c.options.MaxRetries {
			time.Sleep(retryBackoff(attempt))
		}
		return attempt <= c.options.MaxRetries, err
	})

	if err != nil && !errors.Is(err, errServerRetry) {
		return 0, nil, err
	}
	return response.StatusCode, respBody, nil
}

// performRequest serializes postBody to JSON and executes the request,
// returning the status and raw response body.
func (c *Client) performRequest(ctx context.Context, method string, path string, postBody interface{}, queryParams url.Values) (int, []byte, error) {
	var body []byte
	if postBody != nil {
		b, err := json.Marshal(postBody)
		if err != nil {
			return 0, nil, &ConfigError{Message: "cannot serialize request body: " + err.Error()}
		}
		body = b
	}
	return c.doRequest(func() (*http.Request, error) {
		return c.prepareRequest(ctx, method, path, body, queryParams)
	})
}

// performMultipartRequest posts a file part named "file" plus any extra text
// fields as multipart form data.
func (c *Client) performMultipartRequest(ctx context.Context, path string, file []byte, filename string, fields map[string]string) (int, []byte, error) {
	return c.doRequest(func() (*http.Request, error) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			return nil, err
		}
		if _, err = part.Write(file); err != nil {
			return nil, err
		}
		for field, value := range fields {
			if err = writer.WriteField(field, value); err != nil {
				return nil, err
			}
		}
		if err = writer.Close(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BasePath+path, &buf)
		if err != nil {
			return nil, &ConfigError{Message: "cannot build request: " + err.Error()}
		}
		c.setCommonHeaders(req)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		return req, nil
	})
}

// decode unmarshals a 2xx body into result and checks that every required
// field made it across. A nil result skips decoding entirely.
func (c *Client) decode(result interface{}, body []byte) error {
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return &DecodeError{Err: err, Body: body}
	}
	if err := c.validateDecoded(result); err != nil {
		return &DecodeError{Err: err, Body: body}
	}
	return nil
}

func (c *Client) validateDecoded(result interface{}) error {
	rv := reflect.ValueOf(result)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return c.validate.Struct(rv.Interface())
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			item := rv.Index(i)
			if item.Kind() == reflect.Struct {
				if err := c.validate.Struct(item.Interface()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// handleErrorResponse maps a non-2xx status to an APIError, preferring the
// platform's {code, message} envelope and falling back to the raw body.
func (c *Client) handleErrorResponse(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status, Body: body}

	var envelope api.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && (envelope.Code != "" || envelope.Message != "") {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(status)
		}
		return apiErr
	}

	util.Debugf("no error envelope in %d response body", status)
	apiErr.Message = strings.TrimSpace(string(body))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, path string, queryParams url.Values, result interface{}) error {
	status, body, err := c.performRequest(ctx, http.MethodGet, path, nil, queryParams)
	if err != nil {
		return err
	}
	if status >= 300 {
		return c.handleErrorResponse(status, body)
	}
	return c.decode(result, body)
}

func (c *Client) post(ctx context.Context, path string, postBody interface{}, result interface{}) error {
	status, body, err := c.performRequest(ctx, http.MethodPost, path, postBody, nil)
	if err != nil {
		return err
	}
	if status >= 300 {
		return c.handleErrorResponse(status, body)
	}
	return c.decode(result, body)
}

func (c *Client) put(ctx context.Context, path string, postBody interface{}, result interface{}) error {
	status, body, err := c.performRequest(ctx, http.MethodPut, path, postBody, nil)
	if err != nil {
		return err
	}
	if status >= 300 {
		return c.handleErrorResponse(status, body)
	}
	return c.decode(result, body)
}

func (c *Client) delete(ctx context.Context, path string) error {
	status, body, err := c.performRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	if status >= 300 {
		return c.handleErrorResponse(status, body)
	}
	return nil
}

func (c *Client) postMultipart(ctx context.Context, path string, file []byte, filename string, fields map[string]string, result interface{}) error {
	status, body, err := c.performMultipartRequest(ctx, path, file, filename, fields)
	if err != nil {
		return err
	}
	if status >= 300 {
		return c.handleErrorResponse(status, body)
	}
	return c.decode(result, body)
}

// download fetches raw bytes, bypassing JSON decoding.
func (c *Client) download(ctx context.Context, path string) ([]byte, error) {
	status, body, err := c.performRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return nil, c.handleErrorResponse(status, body)
	}
	return body, nil
}

// maxBackoffDelay caps the per-attempt retry sleep.
const maxBackoffDelay = 10 * time.Second

func retryBackoff(attempt int) time.Duration {
	delay := math.Pow(2, float64(attempt)) * 100
	delay += delay * 0.2 * rand.Float64()
	if d := time.Duration(delay) * time.Millisecond; d < maxBackoffDelay {
		return d
	}
	return maxBackoffDelay
}

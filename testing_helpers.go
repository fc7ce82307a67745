package schlep

import (
	"net/http"

	"github.com/jarcoal/httpmock"
)

var test_apiKey = "schlep_test_api_key_hash"

// httpAPIErrorMock registers a responder returning the platform's error
// envelope for the given route.
func httpAPIErrorMock(method string, route string, status int, code string, message string) {
	httpmock.RegisterResponder(method, DefaultBaseURL+route,
		httpmock.NewStringResponder(status, `{"code": "`+code+`", "message": "`+message+`"}`))
}

// httpJSONMock registers a responder returning a fixed JSON body for the
// given route.
func httpJSONMock(method string, route string, status int, body string) {
	httpmock.RegisterResponder(method, DefaultBaseURL+route,
		func(req *http.Request) (*http.Response, error) {
			resp := httpmock.NewStringResponse(status, body)
			resp.Header.Set("Content-Type", "application/json")
			return resp, nil
		},
	)
}

package schlep

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

func TestQuality_AssessQuality(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpJSONMock("GET", "/quality/assess/job_1", 200,
		`{"quality_score": 0.86,
		  "issues": [{"issue_type": "missing_values", "severity": "warning", "description": "3% of rows missing col2"}],
		  "metrics": {"completeness": 0.97}}`)

	c := testClient(t)
	assessment, err := c.Quality().AssessQuality(context.Background(), "job_1")
	require.NoError(t, err)
	require.InDelta(t, 0.86, assessment.QualityScore, 0.001)
	require.Len(t, assessment.Issues, 1)
	require.Equal(t, "missing_values", assessment.Issues[0].IssueType)
}

func TestQuality_CreateRule(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpJSONMock("POST", "/quality/rules", 200,
		`{"rule_id": "rule_1", "name": "no-nulls", "config": {"column": "col2"}}`)

	c := testClient(t)
	rule, err := c.Quality().CreateRule(context.Background(), map[string]interface{}{
		"name":   "no-nulls",
		"config": map[string]interface{}{"column": "col2"},
	})
	require.NoError(t, err)
	require.Equal(t, "rule_1", rule.RuleID)
}

func TestQuality_ValidateData(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var gotBody map[string]interface{}
	httpmock.RegisterResponder("POST", DefaultBaseURL+"/quality/validate",
		func(req *http.Request) (*http.Response, error) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
			return httpmock.NewStringResponse(200,
				`{"passed": false,
				  "results": [{"rule_id": "rule_1", "passed": true},
				              {"rule_id": "rule_2", "passed": false, "error": "col2 has nulls"}]}`), nil
		},
	)

	c := testClient(t)
	validation, err := c.Quality().ValidateData(context.Background(), "job_1", []string{"rule_1", "rule_2"})
	require.NoError(t, err)
	require.False(t, validation.Passed)
	require.Len(t, validation.Results, 2)
	require.Equal(t, "col2 has nulls", validation.Results[1].Error)
	require.Equal(t, "job_1", gotBody["job_id"])
}

package schlep

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

func TestML_CreatePipeline(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpJSONMock("POST", "/ml/pipelines", 200,
		`{"pipeline_id": "pipe_1", "name": "Churn", "status": "created"}`)

	c := testClient(t)
	pipeline, err := c.ML().CreatePipeline(context.Background(), map[string]interface{}{
		"name":      "Churn",
		"task_type": "classification",
	})
	require.NoError(t, err)
	require.Equal(t, "pipe_1", pipeline.PipelineID)
	require.Equal(t, "created", pipeline.Status)
}

func TestML_TrainPipeline(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var gotBody map[string]interface{}
	httpmock.RegisterResponder("POST", DefaultBaseURL+"/ml/train",
		func(req *http.Request) (*http.Response, error) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
			return httpmock.NewStringResponse(200,
				`{"job_id": "train_1", "pipeline_id": "pipe_1", "status": "training", "progress": 0}`), nil
		},
	)

	c := testClient(t)
	job, err := c.ML().TrainPipeline(context.Background(), "pipe_1", map[string]interface{}{"epochs": 10})
	require.NoError(t, err)
	require.Equal(t, "train_1", job.JobID)
	require.Equal(t, "pipe_1", gotBody["pipeline_id"])
}

func TestML_DeployModel_NilConfigSendsEmptyObject(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var gotBody map[string]interface{}
	httpmock.RegisterResponder("POST", DefaultBaseURL+"/ml/deploy",
		func(req *http.Request) (*http.Response, error) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
			return httpmock.NewStringResponse(200,
				`{"deployment_id": "dep_1", "model_id": "model_1", "endpoint_url": "https://api.schlep-engine.com/models/model_1/predict", "status": "deployed"}`), nil
		},
	)

	c := testClient(t)
	deployment, err := c.ML().DeployModel(context.Background(), "model_1", nil)
	require.NoError(t, err)
	require.Equal(t, "dep_1", deployment.DeploymentID)
	require.Equal(t, map[string]interface{}{}, gotBody["config"])
}

func TestML_Predict(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpJSONMock("POST", "/ml/predict", 200,
		`{"predictions": [0.92], "model_id": "model_1", "probabilities": [[0.08, 0.92]]}`)

	c := testClient(t)
	prediction, err := c.ML().Predict(context.Background(), "model_1", map[string]interface{}{
		"features": []float64{1.5, 2.3},
	})
	require.NoError(t, err)
	require.Equal(t, "model_1", prediction.ModelID)
	require.NotNil(t, prediction.Predictions)
}

func TestML_GetTrainingJob(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpJSONMock("GET", "/ml/training/train_1", 200,
		`{"job_id": "train_1", "status": "completed", "progress": 100, "model_id": "model_1", "metrics": {"accuracy": 0.94}}`)

	c := testClient(t)
	job, err := c.ML().GetTrainingJob(context.Background(), "train_1")
	require.NoError(t, err)
	require.Equal(t, "completed", job.Status)
	require.Equal(t, "model_1", job.ModelID)
	require.Equal(t, float64(100), job.Progress)
}

package schlep

import (
	"context"

	"github.com/schlep-engine/go-sdk/api"
)

// The flat Upload/Train/Deploy/Status methods predate the namespaced
// services. They sit on the same executor and remain supported alongside
// Data()/ML()/etc.

// Upload submits raw data for processing via the legacy /upload endpoint.
func (c *Client) Upload(ctx context.Context, data string) (api.UploadResult, error) {
	var result api.UploadResult
	if data == "" {
		return result, errRequiredArgument("data")
	}
	body := map[string]interface{}{"data": data}
	err := c.post(ctx, "/upload", body, &result)
	return result, err
}

// Train starts a model training job. config is the platform's training
// document (model_type, dataset_id, parameters).
func (c *Client) Train(ctx context.Context, config interface{}) (api.TrainResult, error) {
	var result api.TrainResult
	err := c.post(ctx, "/train", config, &result)
	return result, err
}

// Deploy publishes a trained model to a serving endpoint.
func (c *Client) Deploy(ctx context.Context, modelID string) (api.DeployResult, error) {
	var result api.DeployResult
	if modelID == "" {
		return result, errRequiredArgument("modelID")
	}
	body := map[string]interface{}{"model_id": modelID}
	err := c.post(ctx, "/deploy", body, &result)
	return result, err
}

// Status reports the current state of any job (upload, training, deployment).
func (c *Client) Status(ctx context.Context, jobID string) (api.JobStatus, error) {
	var status api.JobStatus
	if jobID == "" {
		return status, errRequiredArgument("jobID")
	}
	err := c.get(ctx, "/status/"+jobID, nil, &status)
	return status, err
}

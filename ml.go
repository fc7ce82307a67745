package schlep

import (
	"context"

	"github.com/schlep-engine/go-sdk/api"
)

// MLService exposes the ML pipeline API: pipeline management, training,
// deployment and prediction.
type MLService service

// CreatePipeline registers a new pipeline. config carries the platform's
// pipeline definition (name, task_type, model_type, ...).
func (s *MLService) CreatePipeline(ctx context.Context, config interface{}) (api.Pipeline, error) {
	var pipeline api.Pipeline
	err := s.client.post(ctx, "/ml/pipelines", config, &pipeline)
	return pipeline, err
}

// GetPipeline fetches a pipeline.
func (s *MLService) GetPipeline(ctx context.Context, pipelineID string) (api.Pipeline, error) {
	var pipeline api.Pipeline
	if pipelineID == "" {
		return pipeline, errRequiredArgument("pipelineID")
	}
	err := s.client.get(ctx, "/ml/pipelines/"+pipelineID, nil, &pipeline)
	return pipeline, err
}

// ListPipelines pages through pipelines in server order.
func (s *MLService) ListPipelines(ctx context.Context, params *api.ListParams) (api.PaginatedResponse[api.Pipeline], error) {
	var page api.PaginatedResponse[api.Pipeline]
	err := s.client.get(ctx, "/ml/pipelines", params.Values(), &page)
	return page, err
}

// TrainPipeline starts a training run for the pipeline. config holds the
// training parameters (epochs, batch_size, ...).
func (s *MLService) TrainPipeline(ctx context.Context, pipelineID string, config interface{}) (api.TrainingJob, error) {
	var job api.TrainingJob
	if pipelineID == "" {
		return job, errRequiredArgument("pipelineID")
	}
	body := map[string]interface{}{
		"pipeline_id": pipelineID,
		"config":      config,
	}
	err := s.client.post(ctx, "/ml/train", body, &job)
	return job, err
}

// GetTrainingJob fetches a training run's status and metrics.
func (s *MLService) GetTrainingJob(ctx context.Context, jobID string) (api.TrainingJob, error) {
	var job api.TrainingJob
	if jobID == "" {
		return job, errRequiredArgument("jobID")
	}
	err := s.client.get(ctx, "/ml/training/"+jobID, nil, &job)
	return job, err
}

// DeployModel serves a trained model. config is optional deployment tuning
// (replicas, auto_scale, ...); nil sends an empty config.
func (s *MLService) DeployModel(ctx context.Context, modelID string, config interface{}) (api.Deployment, error) {
	var deployment api.Deployment
	if modelID == "" {
		return deployment, errRequiredArgument("modelID")
	}
	if config == nil {
		config = map[string]interface{}{}
	}
	body := map[string]interface{}{
		"model_id": modelID,
		"config":   config,
	}
	err := s.client.post(ctx, "/ml/deploy", body, &deployment)
	return deployment, err
}

// Predict runs inference against a deployed model endpoint.
func (s *MLService) Predict(ctx context.Context, endpoint string, data interface{}) (api.Prediction, error) {
	var prediction api.Prediction
	if endpoint == "" {
		return prediction, errRequiredArgument("endpoint")
	}
	body := map[string]interface{}{
		"endpoint": endpoint,
		"data":     data,
	}
	err := s.client.post(ctx, "/ml/predict", body, &prediction)
	return prediction, err
}

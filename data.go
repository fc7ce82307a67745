package schlep

import (
	"context"

	"github.com/schlep-engine/go-sdk/api"
)

// DataService exposes the data processing API: file ingestion,
// transformations and schema validation.
type DataService service

// ProcessFile uploads a data file for processing. format declares the file's
// content (e.g. "csv", "json", "parquet").
func (s *DataService) ProcessFile(ctx context.Context, file []byte, format string) (api.ProcessingJob, error) {
	var job api.ProcessingJob
	if len(file) == 0 {
		return job, errRequiredArgument("file")
	}
	if format == "" {
		return job, errRequiredArgument("format")
	}
	err := s.client.postMultipart(ctx, "/data/process", file, "upload", map[string]string{"format": format}, &job)
	return job, err
}

// TransformData applies a transformation pipeline to a processing job's data.
// transformations is the platform's JSON operations document.
func (s *DataService) TransformData(ctx context.Context, jobID string, transformations interface{}) (api.Transformation, error) {
	var result api.Transformation
	if jobID == "" {
		return result, errRequiredArgument("jobID")
	}
	body := map[string]interface{}{
		"job_id":          jobID,
		"transformations": transformations,
	}
	err := s.client.post(ctx, "/data/transform", body, &result)
	return result, err
}

// ValidateSchema checks a processing job's data against a JSON schema
// definition.
func (s *DataService) ValidateSchema(ctx context.Context, jobID string, schema interface{}) (api.SchemaValidation, error) {
	var result api.SchemaValidation
	if jobID == "" {
		return result, errRequiredArgument("jobID")
	}
	body := map[string]interface{}{
		"job_id": jobID,
		"schema": schema,
	}
	err := s.client.post(ctx, "/data/validate", body, &result)
	return result, err
}

// GetJob fetches a processing job.
func (s *DataService) GetJob(ctx context.Context, jobID string) (api.ProcessingJob, error) {
	var job api.ProcessingJob
	if jobID == "" {
		return job, errRequiredArgument("jobID")
	}
	err := s.client.get(ctx, "/data/jobs/"+jobID, nil, &job)
	return job, err
}

// ListJobs pages through processing jobs in server order.
func (s *DataService) ListJobs(ctx context.Context, params *api.ListParams) (api.PaginatedResponse[api.ProcessingJob], error) {
	var page api.PaginatedResponse[api.ProcessingJob]
	err := s.client.get(ctx, "/data/jobs", params.Values(), &page)
	return page, err
}

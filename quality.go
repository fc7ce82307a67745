package schlep

import (
	"context"

	"github.com/schlep-engine/go-sdk/api"
)

// QualityService exposes the data quality API.
type QualityService service

// AssessQuality scores the data behind a processing job.
func (s *QualityService) AssessQuality(ctx context.Context, jobID string) (api.QualityAssessment, error) {
	var assessment api.QualityAssessment
	if jobID == "" {
		return assessment, errRequiredArgument("jobID")
	}
	err := s.client.get(ctx, "/quality/assess/"+jobID, nil, &assessment)
	return assessment, err
}

// CreateRule stores a reusable validation rule.
func (s *QualityService) CreateRule(ctx context.Context, rule interface{}) (api.QualityRule, error) {
	var created api.QualityRule
	err := s.client.post(ctx, "/quality/rules", rule, &created)
	return created, err
}

// ValidateData runs the given rules against a processing job's data. An
// empty ruleIDs slice runs every rule the account has.
func (s *QualityService) ValidateData(ctx context.Context, jobID string, ruleIDs []string) (api.DataValidation, error) {
	var validation api.DataValidation
	if jobID == "" {
		return validation, errRequiredArgument("jobID")
	}
	body := map[string]interface{}{
		"job_id":   jobID,
		"rule_ids": ruleIDs,
	}
	err := s.client.post(ctx, "/quality/validate", body, &validation)
	return validation, err
}

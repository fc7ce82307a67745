package api

// QualityAssessment scores a dataset and lists the issues found.
type QualityAssessment struct {
	QualityScore float64        `json:"quality_score"`
	Issues       []QualityIssue `json:"issues,omitempty" validate:"dive"`
	Metrics      interface{}    `json:"metrics,omitempty"`
}

// QualityIssue is a single problem detected during assessment.
type QualityIssue struct {
	IssueType   string      `json:"issue_type" validate:"required"`
	Severity    string      `json:"severity" validate:"required"`
	Description string      `json:"description" validate:"required"`
	Affected    interface{} `json:"affected,omitempty"`
}

// QualityRule is a stored validation rule.
type QualityRule struct {
	RuleID string      `json:"rule_id" validate:"required"`
	Name   string      `json:"name" validate:"required"`
	Config interface{} `json:"config" validate:"required"`
}

// DataValidation is the result of running rules against a job's data.
type DataValidation struct {
	Passed  bool              `json:"passed"`
	Results []ValidationCheck `json:"results" validate:"dive"`
}

// ValidationCheck is the outcome of one rule.
type ValidationCheck struct {
	RuleID string `json:"rule_id" validate:"required"`
	Passed bool   `json:"passed"`
	Error  string `json:"error,omitempty"`
}

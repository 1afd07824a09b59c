package evaluator

import "encoding/json"

// PipelineRequest is the full-pipeline evaluation request sent to the
// evaluation service. EvaluationCriteria is keyed keyword -> score -> guideline.
type PipelineRequest struct {
	SessionId          int                          `json:"session_id"`
	ApplicantIds       []string                     `json:"applicant_ids"`
	ApplicantNames     []string                     `json:"applicant_names"`
	JobRoleName        string                       `json:"job_role_name"`
	EvaluationCriteria map[string]map[string]string `json:"evaluation_criteria"`
	RawStt             json.RawMessage              `json:"raw_stt"`
}

type PipelineResponse struct {
	Success             bool               `json:"success"`
	Message             string             `json:"message"`
	SessionId           int                `json:"session_id"`
	RawSttS3Path        string             `json:"raw_stt_s3_path"`
	JobRoleName         string             `json:"job_role_name"`
	EvaluationResults   []ApplicantResult  `json:"evaluation_results"`
	TotalProcessed      int                `json:"total_processed"`
	SuccessfulCount     int                `json:"successful_count"`
	FailedCount         int                `json:"failed_count"`
	TotalProcessingTime float64            `json:"total_processing_time"`
	StepTimes           map[string]float64 `json:"step_times"`
}

type ApplicantResult struct {
	ApplicantId    string         `json:"applicant_id"`
	ApplicantName  string         `json:"applicant_name"`
	QnaS3Path      string         `json:"qna_s3_path"`
	PdfS3Path      string         `json:"pdf_s3_path"`
	EvaluationJson map[string]any `json:"evaluation_json"`
}

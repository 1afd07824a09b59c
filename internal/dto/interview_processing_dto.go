package dto

import "encoding/json"

// ProcessingRequest is the transcript batch submitted by the frontend.
// The rubric is resolved server-side from the job role name.
type ProcessingRequest struct {
	SessionId      int             `json:"session_id" validate:"required"`
	ApplicantIds   []string        `json:"applicant_ids" validate:"required,min=1"`
	ApplicantNames []string        `json:"applicant_names" validate:"required,min=1"`
	JobRoleName    string          `json:"job_role_name" validate:"required"`
	RawStt         json.RawMessage `json:"raw_stt" validate:"required"`
}

// ProcessingAck is returned immediately on submission, before any
// background work has run.
type ProcessingAck struct {
	Success         bool   `json:"success"`
	JobId           string `json:"job_id"`
	SessionId       int    `json:"session_id"`
	Status          string `json:"status"`
	TotalApplicants int    `json:"total_applicants"`
	EstimatedTime   string `json:"estimated_time"`
	Note            string `json:"note"`
}

type JobStatusResponse struct {
	JobId           string  `json:"job_id"`
	SessionId       int     `json:"session_id"`
	Status          string  `json:"status"`
	TotalApplicants int     `json:"total_applicants"`
	TotalProcessed  int     `json:"total_processed"`
	SuccessfulCount int     `json:"successful_count"`
	FailedCount     int     `json:"failed_count"`
	Message         string  `json:"message"`
	SubmittedAt     string  `json:"submitted_at"`
	FinishedAt      *string `json:"finished_at"`
}

type EvaluatorHealthResponse struct {
	Healthy bool `json:"healthy"`
}

// PipelineJobPayload is the watermill message body handed to workers.
type PipelineJobPayload struct {
	JobId   string            `json:"job_id"`
	Request ProcessingRequest `json:"request"`
}

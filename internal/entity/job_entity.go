package entity

import "time"

type JobStatus string

const (
	JobProcessing JobStatus = "PROCESSING"
	JobCompleted  JobStatus = "COMPLETED"
	JobFailed     JobStatus = "FAILED"
)

// Job is the ephemeral record of one pipeline submission. It lives only in
// the in-memory registry: job ids are best-effort correlation tokens and are
// lost on restart. Entity state (Session/Applicant) is the durable signal.
type Job struct {
	Id              string
	SessionId       int
	Status          JobStatus
	TotalApplicants int
	SubmittedAt     time.Time
	FinishedAt      *time.Time
	TotalProcessed  int
	SuccessfulCount int
	FailedCount     int
	Message         string
}

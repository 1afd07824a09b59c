package entity

import "time"

type InterviewStatus string

const (
	InterviewWaiting   InterviewStatus = "WAITING"
	InterviewCompleted InterviewStatus = "COMPLETED"
	InterviewAbsent    InterviewStatus = "ABSENT"
)

type Applicant struct {
	Id                string
	Name              string
	InterviewStatus   InterviewStatus
	JobRoleId         string
	SessionId         *int
	StartedAt         *time.Time
	CompletedAt       *time.Time
	TotalScore        *float32
	IndividualPdfPath *string
	IndividualQnaPath *string
	TotalComment      *string
	NextCheckpoint    *string
}

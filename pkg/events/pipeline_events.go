package events

import "time"

const (
	TypePipelineStarted   = "INTERVIEW_PIPELINE_STARTED"
	TypePipelineCompleted = "INTERVIEW_PIPELINE_COMPLETED"
	TypePipelineFailed    = "INTERVIEW_PIPELINE_FAILED"
)

// NewPipelineStarted is emitted when a worker begins evaluating a session's
// transcript batch.
func NewPipelineStarted(jobId string, sessionId int, totalApplicants int) Event {
	return BaseEvent{
		Type: TypePipelineStarted,
		Data: map[string]interface{}{
			"job_id":           jobId,
			"session_id":       sessionId,
			"total_applicants": totalApplicants,
		},
		OccurredAt: time.Now(),
	}
}

func NewPipelineCompleted(jobId string, sessionId int, totalProcessed, successfulCount, failedCount int) Event {
	return BaseEvent{
		Type: TypePipelineCompleted,
		Data: map[string]interface{}{
			"job_id":           jobId,
			"session_id":       sessionId,
			"total_processed":  totalProcessed,
			"successful_count": successfulCount,
			"failed_count":     failedCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewPipelineFailed(jobId string, sessionId int, reason string) Event {
	return BaseEvent{
		Type: TypePipelineFailed,
		Data: map[string]interface{}{
			"job_id":     jobId,
			"session_id": sessionId,
			"reason":     reason,
		},
		OccurredAt: time.Now(),
	}
}

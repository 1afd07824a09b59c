package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"interview-eval-be/internal/apperror"
	"interview-eval-be/internal/dto"
	"interview-eval-be/internal/entity"
	"interview-eval-be/internal/pkg/logger"
	"interview-eval-be/internal/repository/memory"
	"interview-eval-be/internal/repository/unitofwork"
	"interview-eval-be/pkg/evaluator"
	"interview-eval-be/pkg/events"
	pkgNats "interview-eval-be/pkg/nats"

	"github.com/google/uuid"
)

// EvaluatorClient is what the orchestrator needs from pkg/evaluator.
type EvaluatorClient interface {
	Evaluate(ctx context.Context, req *evaluator.PipelineRequest) (*evaluator.PipelineResponse, error)
	HealthCheck(ctx context.Context) bool
}

type IInterviewProcessingService interface {
	// Submit validates the batch, registers a job and schedules background
	// processing. It returns before any pipeline work has run.
	Submit(ctx context.Context, req *dto.ProcessingRequest) (*dto.ProcessingAck, error)

	// Process runs the full pipeline for one job. Called only by workers;
	// every failure ends in the job registry, never in a panic upward.
	Process(ctx context.Context, jobId string, req *dto.ProcessingRequest)

	GetJob(jobId string) (*entity.Job, bool)
	EvaluatorHealthy(ctx context.Context) bool
}

type interviewProcessingService struct {
	uowFactory       unitofwork.RepositoryFactory
	criteriaService  ICriteriaService
	evaluatorClient  EvaluatorClient
	jobRepository    *memory.JobRepository
	publisherService IPublisherService
	eventPublisher   *pkgNats.Publisher
	log              logger.ILogger
}

func NewInterviewProcessingService(
	uowFactory unitofwork.RepositoryFactory,
	criteriaService ICriteriaService,
	evaluatorClient EvaluatorClient,
	jobRepository *memory.JobRepository,
	publisherService IPublisherService,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IInterviewProcessingService {
	return &interviewProcessingService{
		uowFactory:       uowFactory,
		criteriaService:  criteriaService,
		evaluatorClient:  evaluatorClient,
		jobRepository:    jobRepository,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (s *interviewProcessingService) Submit(ctx context.Context, req *dto.ProcessingRequest) (*dto.ProcessingAck, error) {
	if err := validateProcessingRequest(req); err != nil {
		return nil, err
	}

	job := &entity.Job{
		Id:              uuid.New().String(),
		SessionId:       req.SessionId,
		Status:          entity.JobProcessing,
		TotalApplicants: len(req.ApplicantIds),
		SubmittedAt:     time.Now(),
	}
	s.jobRepository.Save(job)

	payload, err := json.Marshal(dto.PipelineJobPayload{
		JobId:   job.Id,
		Request: *req,
	})
	if err != nil {
		s.jobRepository.Delete(job.Id)
		return nil, err
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.jobRepository.Delete(job.Id)
		return nil, err
	}

	s.log.Info("interview_processing", "pipeline job scheduled", map[string]interface{}{
		"job_id":     job.Id,
		"session_id": req.SessionId,
		"applicants": len(req.ApplicantIds),
	})

	return &dto.ProcessingAck{
		Success:         true,
		JobId:           job.Id,
		SessionId:       req.SessionId,
		Status:          "PROCESSING_STARTED",
		TotalApplicants: len(req.ApplicantIds),
		EstimatedTime:   "3-5 minutes",
		Note:            "applicant records for this session are updated when processing finishes",
	}, nil
}

func validateProcessingRequest(req *dto.ProcessingRequest) error {
	if req.SessionId == 0 {
		return apperror.Validationf("session id is required")
	}
	if strings.TrimSpace(req.JobRoleName) == "" {
		return apperror.Validationf("job role name is required")
	}
	if len(req.ApplicantIds) == 0 {
		return apperror.Validationf("applicant id list is required")
	}
	if len(req.ApplicantNames) == 0 {
		return apperror.Validationf("applicant name list is required")
	}
	if len(req.ApplicantIds) != len(req.ApplicantNames) {
		return apperror.Validationf("applicant id and name lists differ in length (%d vs %d)",
			len(req.ApplicantIds), len(req.ApplicantNames))
	}
	if len(req.RawStt) == 0 {
		return apperror.Validationf("raw stt payload is required")
	}
	return nil
}

func (s *interviewProcessingService) Process(ctx context.Context, jobId string, req *dto.ProcessingRequest) {
	s.log.Info("interview_processing", "pipeline job started", map[string]interface{}{
		"job_id":     jobId,
		"session_id": req.SessionId,
	})

	rubric, err := s.criteriaService.ResolveCriteria(ctx, req.JobRoleName)
	if err != nil {
		s.failJob(ctx, jobId, req.SessionId, fmt.Sprintf("failed to resolve evaluation criteria: %v", err))
		return
	}
	if rubric.IsEmpty() {
		s.failJob(ctx, jobId, req.SessionId,
			fmt.Sprintf("no evaluation criteria configured for job role %q", req.JobRoleName))
		return
	}

	s.publishEvent(ctx, events.NewPipelineStarted(jobId, req.SessionId, len(req.ApplicantIds)))

	resp, err := s.evaluatorClient.Evaluate(ctx, &evaluator.PipelineRequest{
		SessionId:          req.SessionId,
		ApplicantIds:       req.ApplicantIds,
		ApplicantNames:     req.ApplicantNames,
		JobRoleName:        req.JobRoleName,
		EvaluationCriteria: rubric.ToWire(),
		RawStt:             req.RawStt,
	})
	if err != nil {
		s.failJob(ctx, jobId, req.SessionId, fmt.Sprintf("evaluator call failed: %v", err))
		return
	}
	// A false success flag alongside populated per-candidate results is a
	// partial outcome, not a call failure: whatever results exist still get
	// persisted. Only an empty result set fails the job outright.
	if !resp.Success && len(resp.EvaluationResults) == 0 {
		s.failJob(ctx, jobId, req.SessionId, fmt.Sprintf("evaluator reported failure: %s", resp.Message))
		return
	}

	result := s.persistResults(ctx, resp)

	now := time.Now()
	if job, ok := s.jobRepository.Get(jobId); ok {
		job.FinishedAt = &now
		job.TotalProcessed = result.TotalProcessed
		job.SuccessfulCount = result.SuccessCount
		job.FailedCount = result.FailureCount
		if resp.Success {
			job.Status = entity.JobCompleted
			job.Message = fmt.Sprintf("processing finished (%d succeeded, %d failed)",
				result.SuccessCount, result.FailureCount)
		} else {
			job.Status = entity.JobFailed
			job.Message = fmt.Sprintf("evaluator reported partial failure: %s (%d succeeded, %d failed)",
				resp.Message, result.SuccessCount, result.FailureCount)
		}
		s.jobRepository.Save(job)
	}

	if resp.Success {
		s.publishEvent(ctx, events.NewPipelineCompleted(jobId, req.SessionId,
			result.TotalProcessed, result.SuccessCount, result.FailureCount))
	} else {
		s.publishEvent(ctx, events.NewPipelineFailed(jobId, req.SessionId,
			fmt.Sprintf("partial failure: %s", resp.Message)))
	}

	s.log.Info("interview_processing", "pipeline job finished", map[string]interface{}{
		"job_id":     jobId,
		"session_id": req.SessionId,
		"processed":  result.TotalProcessed,
		"succeeded":  result.SuccessCount,
		"failed":     result.FailureCount,
	})
}

func (s *interviewProcessingService) failJob(ctx context.Context, jobId string, sessionId int, reason string) {
	s.log.Error("interview_processing", "pipeline job failed", map[string]interface{}{
		"job_id":     jobId,
		"session_id": sessionId,
		"reason":     reason,
	})

	now := time.Now()
	if job, ok := s.jobRepository.Get(jobId); ok {
		job.Status = entity.JobFailed
		job.FinishedAt = &now
		job.Message = reason
		s.jobRepository.Save(job)
	}

	s.publishEvent(ctx, events.NewPipelineFailed(jobId, sessionId, reason))
}

// publishEvent is best-effort: a dead NATS never fails the pipeline.
func (s *interviewProcessingService) publishEvent(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("interview_processing", "failed to publish pipeline event", map[string]interface{}{
			"event_type": evt.EventType(),
			"error":      err.Error(),
		})
	}
}

type persistResult struct {
	TotalProcessed int
	SuccessCount   int
	FailureCount   int
}

// persistResults stores the evaluator response. The session update and each
// candidate run in their own transactions: one candidate's bad payload or
// missing record never rolls back the others.
func (s *interviewProcessingService) persistResults(ctx context.Context, resp *evaluator.PipelineResponse) persistResult {
	if err := s.updateSessionStatus(ctx, resp); err != nil {
		s.log.Error("interview_processing", "failed to update session after evaluation", map[string]interface{}{
			"session_id": resp.SessionId,
			"error":      err.Error(),
		})
		// Candidate persistence continues regardless.
	}

	result := persistResult{TotalProcessed: len(resp.EvaluationResults)}
	for i := range resp.EvaluationResults {
		ar := &resp.EvaluationResults[i]
		if err := s.saveApplicantResult(ctx, ar); err != nil {
			result.FailureCount++
			s.log.Error("interview_processing", "failed to persist applicant result", map[string]interface{}{
				"applicant_id": ar.ApplicantId,
				"error":        err.Error(),
			})
			continue
		}
		result.SuccessCount++
	}

	return result
}

func (s *interviewProcessingService) updateSessionStatus(ctx context.Context, resp *evaluator.PipelineResponse) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	session, err := uow.SessionRepository().FindByID(ctx, resp.SessionId)
	if err != nil {
		return err
	}
	if session == nil {
		return apperror.NotFoundf("session %d", resp.SessionId)
	}

	session.SessionStatus = entity.SessionCompleted
	if resp.RawSttS3Path != "" {
		session.RawDataPath = &resp.RawSttS3Path
	}
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return err
	}

	return uow.Commit()
}

// saveApplicantResult commits one candidate in its own transaction.
func (s *interviewProcessingService) saveApplicantResult(ctx context.Context, ar *evaluator.ApplicantResult) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	applicant, err := uow.ApplicantRepository().FindByID(ctx, ar.ApplicantId)
	if err != nil {
		return err
	}
	if applicant == nil {
		return apperror.NotFoundf("applicant %s", ar.ApplicantId)
	}

	now := time.Now()
	applicant.InterviewStatus = entity.InterviewCompleted
	applicant.CompletedAt = &now
	if ar.PdfS3Path != "" {
		applicant.IndividualPdfPath = &ar.PdfS3Path
	}
	if ar.QnaS3Path != "" {
		applicant.IndividualQnaPath = &ar.QnaS3Path
	}

	s.applyEvaluationPayload(applicant, ar.EvaluationJson)

	if err := uow.ApplicantRepository().Update(ctx, applicant); err != nil {
		return err
	}

	if err := s.saveKeywordScores(ctx, uow, ar); err != nil {
		return err
	}

	return uow.Commit()
}

// applyEvaluationPayload extracts the summary fields. Extraction is
// tolerant: a missing or mistyped field leaves the prior value untouched.
func (s *interviewProcessingService) applyEvaluationPayload(applicant *entity.Applicant, payload map[string]any) {
	if payload == nil || payload["error"] != nil {
		s.log.Warn("interview_processing", "evaluation payload missing or carries error", map[string]interface{}{
			"applicant_id": applicant.Id,
		})
		return
	}

	if summary, ok := payload["evaluation_summary"].(map[string]any); ok {
		if totalScore, ok := summary["total_score"].(float64); ok {
			score := float32(totalScore)
			applicant.TotalScore = &score
		}
	}

	if interviewSummary, ok := payload["interview_summary"].(string); ok {
		applicant.TotalComment = &interviewSummary
	}

	if nextQuestions, ok := payload["next_questions"].(string); ok {
		applicant.NextCheckpoint = &nextQuestions
	}
}

// saveKeywordScores replaces the candidate's keyword score set with the
// detailed evaluation. Keywords the catalog cannot resolve are skipped.
func (s *interviewProcessingService) saveKeywordScores(ctx context.Context, uow unitofwork.UnitOfWork, ar *evaluator.ApplicantResult) error {
	if ar.EvaluationJson == nil || ar.EvaluationJson["error"] != nil {
		return nil
	}
	detailed, ok := ar.EvaluationJson["detailed_evaluation"].(map[string]any)
	if !ok {
		return nil
	}

	if err := uow.ApplicantKeywordScoreRepository().DeleteByApplicant(ctx, ar.ApplicantId); err != nil {
		return err
	}

	var scores []*entity.ApplicantKeywordScore
	for keywordName, raw := range detailed {
		keywordEval, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		keyword, err := uow.KeywordRepository().FindByName(ctx, keywordName)
		if err != nil {
			return err
		}
		if keyword == nil {
			s.log.Warn("interview_processing", "evaluated keyword not in catalog", map[string]interface{}{
				"applicant_id": ar.ApplicantId,
				"keyword":      keywordName,
			})
			continue
		}

		finalScore, ok := keywordEval["final_score"].(float64)
		if !ok {
			continue
		}
		comment := ""
		if rationale, ok := keywordEval["score_rationale"].(string); ok {
			comment = rationale
		}

		scores = append(scores, &entity.ApplicantKeywordScore{
			ApplicantId:  ar.ApplicantId,
			KeywordId:    keyword.Id,
			Score:        int(finalScore),
			ScoreComment: comment,
		})
	}

	if len(scores) == 0 {
		s.log.Warn("interview_processing", "no keyword scores extracted", map[string]interface{}{
			"applicant_id": ar.ApplicantId,
		})
		return nil
	}

	return uow.ApplicantKeywordScoreRepository().CreateBatch(ctx, scores)
}

func (s *interviewProcessingService) GetJob(jobId string) (*entity.Job, bool) {
	return s.jobRepository.Get(jobId)
}

func (s *interviewProcessingService) EvaluatorHealthy(ctx context.Context) bool {
	return s.evaluatorClient.HealthCheck(ctx)
}

package controller

import (
	"errors"

	"interview-eval-be/internal/apperror"
	"interview-eval-be/internal/dto"
	"interview-eval-be/internal/pkg/serverutils"
	"interview-eval-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInterviewProcessingController interface {
	RegisterRoutes(r fiber.Router)
	ProcessFullPipeline(ctx *fiber.Ctx) error
	GetJobStatus(ctx *fiber.Ctx) error
	EvaluatorHealth(ctx *fiber.Ctx) error
}

type interviewProcessingController struct {
	processingService service.IInterviewProcessingService
}

func NewInterviewProcessingController(processingService service.IInterviewProcessingService) IInterviewProcessingController {
	return &interviewProcessingController{
		processingService: processingService,
	}
}

func (c *interviewProcessingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interviewers")
	// Health passthrough stays open so infra probes need no token.
	h.Get("evaluator/health", c.EvaluatorHealth)

	h.Use(serverutils.JwtMiddleware)
	h.Post("process-full-pipeline", c.ProcessFullPipeline)
	h.Get("jobs/:jobId", c.GetJobStatus)
}

// ProcessFullPipeline accepts a transcript batch and schedules background
// evaluation. The response shape is the submission ack contract consumed by
// the frontend, not the standard envelope.
func (c *interviewProcessingController) ProcessFullPipeline(ctx *fiber.Ctx) error {
	var req dto.ProcessingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "INVALID_REQUEST",
			"message": "malformed request body",
		})
	}

	ack, err := c.processingService.Submit(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, apperror.ErrValidation) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "INVALID_REQUEST",
				"message": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "INTERNAL_SERVER_ERROR",
			"message": err.Error(),
		})
	}

	return ctx.JSON(ack)
}

func (c *interviewProcessingController) GetJobStatus(ctx *fiber.Ctx) error {
	jobId := ctx.Params("jobId")

	job, found := c.processingService.GetJob(jobId)
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(
			serverutils.ErrorResponse(fiber.StatusNotFound, "Job not found (expired or unknown)"))
	}

	res := dto.JobStatusResponse{
		JobId:           job.Id,
		SessionId:       job.SessionId,
		Status:          string(job.Status),
		TotalApplicants: job.TotalApplicants,
		TotalProcessed:  job.TotalProcessed,
		SuccessfulCount: job.SuccessfulCount,
		FailedCount:     job.FailedCount,
		Message:         job.Message,
		SubmittedAt:     job.SubmittedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if job.FinishedAt != nil {
		finished := job.FinishedAt.Format("2006-01-02T15:04:05Z07:00")
		res.FinishedAt = &finished
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get job status", res))
}

func (c *interviewProcessingController) EvaluatorHealth(ctx *fiber.Ctx) error {
	healthy := c.processingService.EvaluatorHealthy(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success check evaluator health", dto.EvaluatorHealthResponse{
		Healthy: healthy,
	}))
}

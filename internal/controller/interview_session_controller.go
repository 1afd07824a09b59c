package controller

import (
	"strconv"

	"interview-eval-be/internal/apperror"
	"interview-eval-be/internal/dto"
	"interview-eval-be/internal/pkg/serverutils"
	"interview-eval-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInterviewSessionController interface {
	RegisterRoutes(r fiber.Router)
	EnterRoom(ctx *fiber.Ctx) error
	LeaveRoom(ctx *fiber.Ctx) error
	StartInterview(ctx *fiber.Ctx) error
	EndInterview(ctx *fiber.Ctx) error
	GetParticipantStatus(ctx *fiber.Ctx) error
	GetSessionStatus(ctx *fiber.Ctx) error
}

type interviewSessionController struct {
	sessionService service.IInterviewSessionService
}

func NewInterviewSessionController(sessionService service.IInterviewSessionService) IInterviewSessionController {
	return &interviewSessionController{
		sessionService: sessionService,
	}
}

func (c *interviewSessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interview-sessions")
	h.Use(serverutils.JwtMiddleware)
	h.Post("rooms/:roomId/enter", c.EnterRoom)
	h.Post("rooms/:roomId/leave", c.LeaveRoom)
	h.Post("rooms/:roomId/start", c.StartInterview)
	h.Post("rooms/:roomId/end", c.EndInterview)
	h.Get("rooms/:roomId/participants/:userId/status", c.GetParticipantStatus)
	h.Get("sessions/:sessionId/status", c.GetSessionStatus)
}

func (c *interviewSessionController) EnterRoom(ctx *fiber.Ctx) error {
	roomId := ctx.Params("roomId")
	userId, ok := ctx.Locals("user_id").(string)
	if !ok || userId == "" {
		return apperror.Unauthorizedf("missing user identity")
	}

	if err := c.sessionService.EnterRoom(ctx.Context(), roomId, userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success enter room", nil))
}

func (c *interviewSessionController) LeaveRoom(ctx *fiber.Ctx) error {
	roomId := ctx.Params("roomId")
	userId, ok := ctx.Locals("user_id").(string)
	if !ok || userId == "" {
		return apperror.Unauthorizedf("missing user identity")
	}

	if err := c.sessionService.LeaveRoom(ctx.Context(), roomId, userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success leave room", nil))
}

func (c *interviewSessionController) StartInterview(ctx *fiber.Ctx) error {
	roomId := ctx.Params("roomId")

	var req dto.StartInterviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validationf("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	started, err := c.sessionService.StartInterview(ctx.Context(), roomId, req.SessionId, req.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success evaluate interview start", dto.StartInterviewResponse{
		Started: started,
	}))
}

func (c *interviewSessionController) EndInterview(ctx *fiber.Ctx) error {
	roomId := ctx.Params("roomId")

	var req dto.EndInterviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validationf("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.sessionService.EndInterview(ctx.Context(), roomId, req.SessionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success end interview", nil))
}

func (c *interviewSessionController) GetParticipantStatus(ctx *fiber.Ctx) error {
	roomId := ctx.Params("roomId")
	userId := ctx.Params("userId")

	res, err := c.sessionService.GetParticipantStatus(ctx.Context(), roomId, userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get participant status", res))
}

func (c *interviewSessionController) GetSessionStatus(ctx *fiber.Ctx) error {
	sessionId, err := strconv.Atoi(ctx.Params("sessionId"))
	if err != nil {
		return apperror.Validationf("session id must be numeric")
	}

	res, err := c.sessionService.GetSessionStatus(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session status", res))
}

package service

import (
	"context"

	"interview-eval-be/internal/apperror"
	"interview-eval-be/internal/dto"
	"interview-eval-be/internal/entity"
	"interview-eval-be/internal/pkg/logger"
	"interview-eval-be/internal/repository/unitofwork"
)

type IInterviewSessionService interface {
	EnterRoom(ctx context.Context, roomId, userId string) error
	LeaveRoom(ctx context.Context, roomId, userId string) error

	// StartInterview evaluates the readiness gate: the interview starts
	// only when every interviewer on the session roster is WAITING at the
	// same moment. Returns false with no mutation otherwise.
	StartInterview(ctx context.Context, roomId string, sessionId int, leaderUserId string) (bool, error)

	EndInterview(ctx context.Context, roomId string, sessionId int) error
	GetParticipantStatus(ctx context.Context, roomId, userId string) (*dto.ParticipantStatusResponse, error)
	GetSessionStatus(ctx context.Context, sessionId int) (*dto.SessionStatusResponse, error)
}

type interviewSessionService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewInterviewSessionService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IInterviewSessionService {
	return &interviewSessionService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *interviewSessionService) EnterRoom(ctx context.Context, roomId, userId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	participant, err := uow.RoomParticipantRepository().FindByRoomAndUser(ctx, roomId, userId)
	if err != nil {
		return err
	}
	if participant == nil {
		return apperror.NotFoundf("participant %s not assigned to room %s", userId, roomId)
	}

	// Re-entering while already WAITING or IN_PROGRESS still refreshes the
	// heartbeat.
	status := participant.ParticipantStatus
	if status == entity.ParticipantOffline {
		status = entity.ParticipantWaiting
	}
	return uow.RoomParticipantRepository().UpdateStatus(ctx, roomId, userId, status)
}

func (s *interviewSessionService) LeaveRoom(ctx context.Context, roomId, userId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	participant, err := uow.RoomParticipantRepository().FindByRoomAndUser(ctx, roomId, userId)
	if err != nil {
		return err
	}
	if participant == nil {
		return apperror.NotFoundf("participant %s not assigned to room %s", userId, roomId)
	}

	return uow.RoomParticipantRepository().UpdateStatus(ctx, roomId, userId, entity.ParticipantOffline)
}

func (s *interviewSessionService) StartInterview(ctx context.Context, roomId string, sessionId int, leaderUserId string) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	leader, err := uow.RoomParticipantRepository().FindByRoomAndUser(ctx, roomId, leaderUserId)
	if err != nil {
		return false, err
	}
	if leader == nil {
		return false, apperror.NotFoundf("participant %s not assigned to room %s", leaderUserId, roomId)
	}
	if !leader.IsLeader() {
		return false, apperror.Unauthorizedf("user %s is not the leader of room %s", leaderUserId, roomId)
	}

	session, err := uow.SessionRepository().FindByID(ctx, sessionId)
	if err != nil {
		return false, err
	}
	if session == nil {
		return false, apperror.NotFoundf("session %d", sessionId)
	}
	if session.SessionStatus == entity.SessionInProgress {
		// Another leader already won the race.
		return false, nil
	}
	if !session.SessionStatus.CanAdvanceTo(entity.SessionInProgress) {
		return false, nil
	}

	interviewerIds := session.InterviewerIds()
	if len(interviewerIds) == 0 {
		s.log.Warn("interview_session", "session has an empty interviewer roster", map[string]interface{}{
			"session_id": sessionId,
			"room_id":    roomId,
		})
		return false, nil
	}

	// Check-then-transition under one transaction with the roster rows
	// locked, so two racing leaders cannot both observe "all waiting".
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer uow.Rollback()

	participants, err := uow.RoomParticipantRepository().FindByRoomAndUsersForUpdate(ctx, roomId, interviewerIds)
	if err != nil {
		return false, err
	}

	if len(participants) != len(interviewerIds) {
		s.log.Warn("interview_session", "roster interviewer has no participant record", map[string]interface{}{
			"session_id": sessionId,
			"room_id":    roomId,
			"expected":   len(interviewerIds),
			"found":      len(participants),
		})
		return false, nil
	}

	for _, p := range participants {
		if p.ParticipantStatus != entity.ParticipantWaiting {
			return false, nil
		}
	}

	if err := uow.RoomParticipantRepository().UpdateStatusBulk(ctx, roomId, interviewerIds, entity.ParticipantInProgress); err != nil {
		return false, err
	}

	session.SessionStatus = entity.SessionInProgress
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return false, err
	}

	if err := uow.Commit(); err != nil {
		return false, err
	}

	s.log.Info("interview_session", "interview started", map[string]interface{}{
		"session_id":   sessionId,
		"room_id":      roomId,
		"interviewers": len(interviewerIds),
	})
	return true, nil
}

func (s *interviewSessionService) EndInterview(ctx context.Context, roomId string, sessionId int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindByID(ctx, sessionId)
	if err != nil {
		return err
	}
	if session == nil {
		return apperror.NotFoundf("session %d", sessionId)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	session.SessionStatus = entity.SessionCompleted
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return err
	}

	// Interviewers go back to WAITING so the room can host its next session.
	interviewerIds := session.InterviewerIds()
	if len(interviewerIds) > 0 {
		if err := uow.RoomParticipantRepository().UpdateStatusBulk(ctx, roomId, interviewerIds, entity.ParticipantWaiting); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (s *interviewSessionService) GetParticipantStatus(ctx context.Context, roomId, userId string) (*dto.ParticipantStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	participant, err := uow.RoomParticipantRepository().FindByRoomAndUser(ctx, roomId, userId)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, apperror.NotFoundf("participant %s not assigned to room %s", userId, roomId)
	}

	res := dto.ParticipantStatusResponse{
		UserId:     participant.UserId,
		RoomId:     participant.RoomId,
		Status:     string(participant.ParticipantStatus),
		LastPingAt: &participant.LastPingAt,
	}

	active, err := uow.SessionRepository().FindActiveByRoom(ctx, roomId)
	if err != nil {
		return nil, err
	}
	if active != nil {
		res.SessionId = active.Id
	}

	return &res, nil
}

func (s *interviewSessionService) GetSessionStatus(ctx context.Context, sessionId int) (*dto.SessionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindByID(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFoundf("session %d", sessionId)
	}

	return &dto.SessionStatusResponse{
		SessionId:     session.Id,
		SessionStatus: string(session.SessionStatus),
	}, nil
}

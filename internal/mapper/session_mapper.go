package mapper

import (
	"interview-eval-be/internal/entity"
	"interview-eval-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}
	return &entity.Session{
		Id:                 s.SessionId,
		RoomId:             s.RoomId,
		SessionName:        s.SessionName,
		SessionDate:        s.SessionDate,
		SessionLocation:    s.SessionLocation,
		SessionTime:        s.SessionTime,
		SessionStatus:      entity.SessionStatus(s.SessionStatus),
		InterviewersUserId: s.InterviewersUserId,
		ApplicantsUserId:   s.ApplicantsUserId,
		RawDataPath:        s.RawDataPath,
	}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}
	return &model.Session{
		SessionId:          s.Id,
		RoomId:             s.RoomId,
		SessionName:        s.SessionName,
		SessionDate:        s.SessionDate,
		SessionLocation:    s.SessionLocation,
		SessionTime:        s.SessionTime,
		SessionStatus:      string(s.SessionStatus),
		InterviewersUserId: s.InterviewersUserId,
		ApplicantsUserId:   s.ApplicantsUserId,
		RawDataPath:        s.RawDataPath,
	}
}

func (m *SessionMapper) ToEntities(sessions []*model.Session) []*entity.Session {
	entities := make([]*entity.Session, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

package mapper

import (
	"interview-eval-be/internal/entity"
	"interview-eval-be/internal/model"
)

type RoomParticipantMapper struct{}

func NewRoomParticipantMapper() *RoomParticipantMapper {
	return &RoomParticipantMapper{}
}

func (m *RoomParticipantMapper) ToEntity(p *model.RoomParticipant) *entity.RoomParticipant {
	if p == nil {
		return nil
	}
	return &entity.RoomParticipant{
		RoomId:            p.RoomId,
		UserId:            p.UserId,
		ParticipantRole:   entity.ParticipantRole(p.ParticipantRole),
		ParticipantStatus: entity.ParticipantStatus(p.ParticipantStatus),
		LastPingAt:        p.LastPingAt,
	}
}

func (m *RoomParticipantMapper) ToModel(p *entity.RoomParticipant) *model.RoomParticipant {
	if p == nil {
		return nil
	}
	return &model.RoomParticipant{
		RoomId:            p.RoomId,
		UserId:            p.UserId,
		ParticipantRole:   string(p.ParticipantRole),
		ParticipantStatus: string(p.ParticipantStatus),
		LastPingAt:        p.LastPingAt,
	}
}

func (m *RoomParticipantMapper) ToEntities(participants []*model.RoomParticipant) []*entity.RoomParticipant {
	entities := make([]*entity.RoomParticipant, len(participants))
	for i, p := range participants {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

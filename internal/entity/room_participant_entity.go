package entity

import "time"

type ParticipantRole string

const (
	RoleLeader ParticipantRole = "LEADER"
	RoleMember ParticipantRole = "MEMBER"
)

type ParticipantStatus string

const (
	ParticipantOffline    ParticipantStatus = "OFFLINE"
	ParticipantWaiting    ParticipantStatus = "WAITING"
	ParticipantInProgress ParticipantStatus = "IN_PROGRESS"
)

type RoomParticipant struct {
	RoomId            string
	UserId            string
	ParticipantRole   ParticipantRole
	ParticipantStatus ParticipantStatus
	LastPingAt        time.Time
}

// UpdateStatus changes the participant status. Every transition refreshes
// the heartbeat timestamp.
func (p *RoomParticipant) UpdateStatus(status ParticipantStatus) {
	p.ParticipantStatus = status
	p.LastPingAt = time.Now()
}

func (p *RoomParticipant) IsLeader() bool {
	return p.ParticipantRole == RoleLeader
}

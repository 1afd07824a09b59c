package model

import "time"

type RoomParticipant struct {
	RoomId            string    `gorm:"primaryKey;type:varchar(64);column:room_id"`
	UserId            string    `gorm:"primaryKey;type:varchar(64);column:user_id"`
	ParticipantRole   string    `gorm:"type:varchar(10);not null"`
	ParticipantStatus string    `gorm:"type:varchar(15);not null;default:OFFLINE"`
	LastPingAt        time.Time `gorm:"autoCreateTime"`
}

func (RoomParticipant) TableName() string {
	return "room_participants"
}

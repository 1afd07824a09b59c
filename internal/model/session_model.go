package model

import "time"

type Session struct {
	SessionId          int       `gorm:"primaryKey;autoIncrement;column:session_id"`
	RoomId             string    `gorm:"type:varchar(64);not null;index"`
	SessionName        string    `gorm:"type:varchar(100)"`
	SessionDate        time.Time `gorm:"not null"`
	SessionLocation    string    `gorm:"type:varchar(255)"`
	SessionTime        time.Time `gorm:"not null"`
	SessionStatus      string    `gorm:"type:varchar(20);not null;default:SCHEDULED"`
	InterviewersUserId string    `gorm:"type:varchar(100)"`
	ApplicantsUserId   string    `gorm:"type:varchar(100)"`
	RawDataPath        *string   `gorm:"type:text"`
}

func (Session) TableName() string {
	return "sessions"
}

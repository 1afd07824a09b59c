package model

import "time"

type Applicant struct {
	ApplicantId       string     `gorm:"primaryKey;type:varchar(64);column:applicant_id"`
	ApplicantName     string     `gorm:"type:varchar(100);not null"`
	InterviewStatus   string     `gorm:"type:varchar(15);not null;default:WAITING"`
	JobRoleId         string     `gorm:"type:varchar(64);not null;index"`
	SessionId         *int       `gorm:"index"`
	StartedAt         *time.Time
	CompletedAt       *time.Time
	TotalScore        *float32
	IndividualPdfPath *string `gorm:"type:text"`
	IndividualQnaPath *string `gorm:"type:text"`
	TotalComment      *string `gorm:"type:text"`
	NextCheckpoint    *string `gorm:"type:text"`
}

func (Applicant) TableName() string {
	return "applicants"
}

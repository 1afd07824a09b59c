package model

type JobRole struct {
	JobRoleId   string `gorm:"primaryKey;type:varchar(64);column:job_role_id"`
	JobRoleName string `gorm:"type:varchar(100);not null;index"`
}

func (JobRole) TableName() string {
	return "job_roles"
}

// JobRoleKeyword links a job role to a keyword; only rows with Selected set
// participate in that role's rubric.
type JobRoleKeyword struct {
	JobRoleId string `gorm:"primaryKey;type:varchar(64);column:job_role_id"`
	KeywordId int    `gorm:"primaryKey;column:keyword_id"`
	Selected  bool   `gorm:"not null;default:false"`
}

func (JobRoleKeyword) TableName() string {
	return "job_role_keywords"
}

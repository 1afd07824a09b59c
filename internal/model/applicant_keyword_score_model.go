package model

type ApplicantKeywordScore struct {
	ApplicantId    string `gorm:"primaryKey;type:varchar(64);column:applicant_id"`
	KeywordId      int    `gorm:"primaryKey;column:keyword_id"`
	ApplicantScore int    `gorm:"not null"`
	ScoreComment   string `gorm:"type:text"`
}

func (ApplicantKeywordScore) TableName() string {
	return "applicant_keyword_scores"
}

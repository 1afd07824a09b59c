package model

type Keyword struct {
	KeywordId     int    `gorm:"primaryKey;autoIncrement;column:keyword_id"`
	KeywordName   string `gorm:"type:varchar(100);not null;index"`
	KeywordDetail string `gorm:"type:text"`
}

func (Keyword) TableName() string {
	return "keywords"
}

// KeywordCriteria is one score band of a keyword's rubric.
type KeywordCriteria struct {
	KeywordId        int    `gorm:"primaryKey;column:keyword_id"`
	KeywordScore     int    `gorm:"primaryKey;column:keyword_score"`
	KeywordGuideline string `gorm:"type:text;not null"`
}

func (KeywordCriteria) TableName() string {
	return "keyword_criteria"
}

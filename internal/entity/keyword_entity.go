package entity

type Keyword struct {
	Id     int
	Name   string
	Detail string
}

type ApplicantKeywordScore struct {
	ApplicantId  string
	KeywordId    int
	Score        int
	ScoreComment string
}

type JobRole struct {
	Id   string
	Name string
}

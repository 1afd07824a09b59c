package mapper

import (
	"interview-eval-be/internal/entity"
	"interview-eval-be/internal/model"
)

type KeywordMapper struct{}

func NewKeywordMapper() *KeywordMapper {
	return &KeywordMapper{}
}

func (m *KeywordMapper) ToEntity(k *model.Keyword) *entity.Keyword {
	if k == nil {
		return nil
	}
	return &entity.Keyword{
		Id:     k.KeywordId,
		Name:   k.KeywordName,
		Detail: k.KeywordDetail,
	}
}

func (m *KeywordMapper) ScoreToModel(s *entity.ApplicantKeywordScore) *model.ApplicantKeywordScore {
	if s == nil {
		return nil
	}
	return &model.ApplicantKeywordScore{
		ApplicantId:    s.ApplicantId,
		KeywordId:      s.KeywordId,
		ApplicantScore: s.Score,
		ScoreComment:   s.ScoreComment,
	}
}

func (m *KeywordMapper) ScoresToModels(scores []*entity.ApplicantKeywordScore) []*model.ApplicantKeywordScore {
	models := make([]*model.ApplicantKeywordScore, len(scores))
	for i, s := range scores {
		models[i] = m.ScoreToModel(s)
	}
	return models
}

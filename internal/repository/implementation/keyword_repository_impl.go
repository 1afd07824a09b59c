package implementation

import (
	"context"
	"errors"

	"interview-eval-be/internal/entity"
	"interview-eval-be/internal/mapper"
	"interview-eval-be/internal/model"
	"interview-eval-be/internal/repository/contract"
	"interview-eval-be/internal/repository/specification"

	"gorm.io/gorm"
)

type KeywordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KeywordMapper
}

func NewKeywordRepository(db *gorm.DB) contract.KeywordRepository {
	return &KeywordRepositoryImpl{
		db:     db,
		mapper: mapper.NewKeywordMapper(),
	}
}

func (r *KeywordRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.Keyword, error) {
	var modelKeyword model.Keyword
	query := specification.KeywordByName{Name: name}.Apply(r.db.WithContext(ctx))

	if err := query.First(&modelKeyword).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelKeyword), nil
}

type ApplicantKeywordScoreRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KeywordMapper
}

func NewApplicantKeywordScoreRepository(db *gorm.DB) contract.ApplicantKeywordScoreRepository {
	return &ApplicantKeywordScoreRepositoryImpl{
		db:     db,
		mapper: mapper.NewKeywordMapper(),
	}
}

func (r *ApplicantKeywordScoreRepositoryImpl) DeleteByApplicant(ctx context.Context, applicantId string) error {
	return r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantId).
		Delete(&model.ApplicantKeywordScore{}).Error
}

func (r *ApplicantKeywordScoreRepositoryImpl) CreateBatch(ctx context.Context, scores []*entity.ApplicantKeywordScore) error {
	if len(scores) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(r.mapper.ScoresToModels(scores)).Error
}

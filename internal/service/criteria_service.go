package service

import (
	"context"

	"interview-eval-be/internal/entity"
	"interview-eval-be/internal/repository/unitofwork"
)

type ICriteriaService interface {
	// ResolveCriteria builds the evaluation rubric for a job role. A role
	// with no selected keywords yields an empty rubric, not an error; the
	// caller decides whether that is fatal.
	ResolveCriteria(ctx context.Context, jobRoleName string) (entity.EvaluationRubric, error)
}

type criteriaService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCriteriaService(uowFactory unitofwork.RepositoryFactory) ICriteriaService {
	return &criteriaService{
		uowFactory: uowFactory,
	}
}

func (s *criteriaService) ResolveCriteria(ctx context.Context, jobRoleName string) (entity.EvaluationRubric, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.CriteriaRepository().FindByJobRoleName(ctx, jobRoleName)
	if err != nil {
		return nil, err
	}

	// Rows arrive ordered by keyword id, then descending score. Group into
	// keywords preserving that order.
	var rubric entity.EvaluationRubric
	for _, row := range rows {
		if len(rubric) == 0 || rubric[len(rubric)-1].KeywordId != row.KeywordId {
			rubric = append(rubric, entity.RubricKeyword{
				KeywordId: row.KeywordId,
				Name:      row.KeywordName,
			})
		}
		last := &rubric[len(rubric)-1]
		last.Criteria = append(last.Criteria, entity.RubricCriterion{
			Score:     row.KeywordScore,
			Guideline: row.KeywordGuideline,
		})
	}

	return rubric, nil
}

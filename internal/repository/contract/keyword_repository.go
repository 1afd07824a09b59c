package contract

import (
	"context"

	"interview-eval-be/internal/entity"
)

type KeywordRepository interface {
	// FindByName returns the keyword or nil when no keyword carries that name.
	FindByName(ctx context.Context, name string) (*entity.Keyword, error)
}

type ApplicantKeywordScoreRepository interface {
	// DeleteByApplicant removes an applicant's previous score set. A
	// reprocessing run always produces a fresh set; rows are never updated
	// in place.
	DeleteByApplicant(ctx context.Context, applicantId string) error

	CreateBatch(ctx context.Context, scores []*entity.ApplicantKeywordScore) error
}

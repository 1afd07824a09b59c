package unitofwork

import (
	"context"

	"interview-eval-be/internal/repository/contract"
)

// UnitOfWork is an explicit, caller-controlled transaction boundary. The
// persister opens one per candidate so a failed write rolls back exactly
// that candidate; the readiness gate opens one around its check-then-apply.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SessionRepository() contract.SessionRepository
	RoomParticipantRepository() contract.RoomParticipantRepository
	ApplicantRepository() contract.ApplicantRepository
	KeywordRepository() contract.KeywordRepository
	ApplicantKeywordScoreRepository() contract.ApplicantKeywordScoreRepository
	CriteriaRepository() contract.CriteriaRepository
}

package unitofwork

import (
	"context"
	"fmt"

	"interview-eval-be/internal/repository/contract"
	"interview-eval-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction; nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) SessionRepository() contract.SessionRepository {
	return implementation.NewSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RoomParticipantRepository() contract.RoomParticipantRepository {
	return implementation.NewRoomParticipantRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ApplicantRepository() contract.ApplicantRepository {
	return implementation.NewApplicantRepository(u.getDB())
}

func (u *UnitOfWorkImpl) KeywordRepository() contract.KeywordRepository {
	return implementation.NewKeywordRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ApplicantKeywordScoreRepository() contract.ApplicantKeywordScoreRepository {
	return implementation.NewApplicantKeywordScoreRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CriteriaRepository() contract.CriteriaRepository {
	return implementation.NewCriteriaRepository(u.getDB())
}

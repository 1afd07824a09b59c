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

type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewSessionRepository(db *gorm.DB) contract.SessionRepository {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *SessionRepositoryImpl) FindByID(ctx context.Context, id int) (*entity.Session, error) {
	var modelSession model.Session
	query := specification.SessionByID{ID: id}.Apply(r.db.WithContext(ctx))

	if err := query.First(&modelSession).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelSession), nil
}

func (r *SessionRepositoryImpl) FindActiveByRoom(ctx context.Context, roomId string) (*entity.Session, error) {
	var modelSession model.Session
	query := specification.SessionByRoomAndStatus{
		RoomID: roomId,
		Status: string(entity.SessionInProgress),
	}.Apply(r.db.WithContext(ctx))

	if err := query.First(&modelSession).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelSession), nil
}

func (r *SessionRepositoryImpl) Update(ctx context.Context, session *entity.Session) error {
	modelSession := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Save(modelSession).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(modelSession)
	return nil
}

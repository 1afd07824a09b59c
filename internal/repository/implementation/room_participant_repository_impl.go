package implementation

import (
	"context"
	"errors"
	"time"

	"interview-eval-be/internal/entity"
	"interview-eval-be/internal/mapper"
	"interview-eval-be/internal/model"
	"interview-eval-be/internal/repository/contract"
	"interview-eval-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomParticipantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoomParticipantMapper
}

func NewRoomParticipantRepository(db *gorm.DB) contract.RoomParticipantRepository {
	return &RoomParticipantRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoomParticipantMapper(),
	}
}

func (r *RoomParticipantRepositoryImpl) FindByRoomAndUser(ctx context.Context, roomId, userId string) (*entity.RoomParticipant, error) {
	var modelParticipant model.RoomParticipant
	query := specification.ByRoomAndUser{RoomID: roomId, UserID: userId}.Apply(r.db.WithContext(ctx))

	if err := query.First(&modelParticipant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelParticipant), nil
}

func (r *RoomParticipantRepositoryImpl) FindByRoomAndUsersForUpdate(ctx context.Context, roomId string, userIds []string) ([]*entity.RoomParticipant, error) {
	if len(userIds) == 0 {
		return nil, nil
	}

	var modelParticipants []*model.RoomParticipant
	query := specification.ByRoomAndUsers{RoomID: roomId, UserIDs: userIds}.
		Apply(r.db.WithContext(ctx)).
		Clauses(clause.Locking{Strength: "UPDATE"})

	if err := query.Find(&modelParticipants).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelParticipants), nil
}

func (r *RoomParticipantRepositoryImpl) UpdateStatus(ctx context.Context, roomId, userId string, status entity.ParticipantStatus) error {
	result := r.db.WithContext(ctx).Model(&model.RoomParticipant{}).
		Where("room_id = ? AND user_id = ?", roomId, userId).
		Updates(map[string]interface{}{
			"participant_status": string(status),
			"last_ping_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomParticipantRepositoryImpl) UpdateStatusBulk(ctx context.Context, roomId string, userIds []string, status entity.ParticipantStatus) error {
	if len(userIds) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.RoomParticipant{}).
		Where("room_id = ? AND user_id IN ?", roomId, userIds).
		Updates(map[string]interface{}{
			"participant_status": string(status),
			"last_ping_at":       time.Now(),
		}).Error
}

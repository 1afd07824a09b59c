package contract

import (
	"context"

	"interview-eval-be/internal/entity"
)

type RoomParticipantRepository interface {
	// FindByRoomAndUser returns the participant or nil when absent.
	FindByRoomAndUser(ctx context.Context, roomId, userId string) (*entity.RoomParticipant, error)

	// FindByRoomAndUsersForUpdate loads the given roster under a row lock
	// (SELECT ... FOR UPDATE). Must run inside a transaction; it is the
	// serialization point of the readiness gate.
	FindByRoomAndUsersForUpdate(ctx context.Context, roomId string, userIds []string) ([]*entity.RoomParticipant, error)

	// UpdateStatus transitions one participant and refreshes last_ping_at.
	UpdateStatus(ctx context.Context, roomId, userId string, status entity.ParticipantStatus) error

	// UpdateStatusBulk transitions a roster and refreshes last_ping_at.
	UpdateStatusBulk(ctx context.Context, roomId string, userIds []string, status entity.ParticipantStatus) error
}

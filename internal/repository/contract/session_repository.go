package contract

import (
	"context"

	"interview-eval-be/internal/entity"
)

type SessionRepository interface {
	// FindByID returns the session or nil when it does not exist.
	FindByID(ctx context.Context, id int) (*entity.Session, error)

	// FindActiveByRoom returns the room's IN_PROGRESS session, or nil when
	// no interview is currently running there.
	FindActiveByRoom(ctx context.Context, roomId string) (*entity.Session, error)

	Update(ctx context.Context, session *entity.Session) error
}

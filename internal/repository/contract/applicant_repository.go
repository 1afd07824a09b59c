package contract

import (
	"context"

	"interview-eval-be/internal/entity"
)

type ApplicantRepository interface {
	// FindByID returns the applicant or nil when it does not exist.
	FindByID(ctx context.Context, id string) (*entity.Applicant, error)

	Update(ctx context.Context, applicant *entity.Applicant) error
}

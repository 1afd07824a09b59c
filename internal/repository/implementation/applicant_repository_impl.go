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

type ApplicantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ApplicantMapper
}

func NewApplicantRepository(db *gorm.DB) contract.ApplicantRepository {
	return &ApplicantRepositoryImpl{
		db:     db,
		mapper: mapper.NewApplicantMapper(),
	}
}

func (r *ApplicantRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Applicant, error) {
	var modelApplicant model.Applicant
	query := specification.ApplicantByID{ID: id}.Apply(r.db.WithContext(ctx))

	if err := query.First(&modelApplicant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelApplicant), nil
}

func (r *ApplicantRepositoryImpl) Update(ctx context.Context, applicant *entity.Applicant) error {
	modelApplicant := r.mapper.ToModel(applicant)
	if err := r.db.WithContext(ctx).Save(modelApplicant).Error; err != nil {
		return err
	}
	*applicant = *r.mapper.ToEntity(modelApplicant)
	return nil
}

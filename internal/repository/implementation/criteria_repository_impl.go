package implementation

import (
	"context"

	"interview-eval-be/internal/repository/contract"

	"gorm.io/gorm"
)

type CriteriaRepositoryImpl struct {
	db *gorm.DB
}

func NewCriteriaRepository(db *gorm.DB) contract.CriteriaRepository {
	return &CriteriaRepositoryImpl{db: db}
}

func (r *CriteriaRepositoryImpl) FindByJobRoleName(ctx context.Context, jobRoleName string) ([]contract.CriteriaRow, error) {
	var rows []contract.CriteriaRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			k.keyword_id,
			k.keyword_name,
			kc.keyword_score,
			kc.keyword_guideline
		FROM job_roles jr
		JOIN job_role_keywords jrk ON jr.job_role_id = jrk.job_role_id
		JOIN keywords k ON jrk.keyword_id = k.keyword_id
		JOIN keyword_criteria kc ON k.keyword_id = kc.keyword_id
		WHERE jr.job_role_name = ?
			AND jrk.selected = true
		ORDER BY k.keyword_id, kc.keyword_score DESC
	`, jobRoleName).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

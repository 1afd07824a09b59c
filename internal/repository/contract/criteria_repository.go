package contract

import "context"

// CriteriaRow is one row of the rubric join: a keyword's score band for a
// job role, already filtered to selected keywords.
type CriteriaRow struct {
	KeywordId        int
	KeywordName      string
	KeywordScore     int
	KeywordGuideline string
}

type CriteriaRepository interface {
	// FindByJobRoleName joins job_roles -> job_role_keywords (selected) ->
	// keywords -> keyword_criteria, ordered by keyword id then descending
	// score. An unconfigured role yields an empty slice, not an error.
	FindByJobRoleName(ctx context.Context, jobRoleName string) ([]CriteriaRow, error)
}

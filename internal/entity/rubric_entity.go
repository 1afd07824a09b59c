package entity

import "strconv"

// RubricCriterion is one score band of a keyword: the guideline text the
// evaluator applies when awarding that score.
type RubricCriterion struct {
	Score     int
	Guideline string
}

// RubricKeyword is one scored keyword with its criteria ordered by
// descending score.
type RubricKeyword struct {
	KeywordId int
	Name      string
	Criteria  []RubricCriterion
}

// EvaluationRubric is the per-keyword scoring guide sent to the evaluator.
// Keyword order (by keyword id) and score order are preserved; the rubric is
// built fresh per pipeline run and never persisted.
type EvaluationRubric []RubricKeyword

func (r EvaluationRubric) IsEmpty() bool {
	return len(r) == 0
}

// CriteriaCount returns the total number of score bands across keywords.
func (r EvaluationRubric) CriteriaCount() int {
	n := 0
	for _, kw := range r {
		n += len(kw.Criteria)
	}
	return n
}

// ToWire flattens the rubric into the {keyword: {score: guideline}} shape of
// the evaluator request.
func (r EvaluationRubric) ToWire() map[string]map[string]string {
	wire := make(map[string]map[string]string, len(r))
	for _, kw := range r {
		bands := make(map[string]string, len(kw.Criteria))
		for _, c := range kw.Criteria {
			bands[strconv.Itoa(c.Score)] = c.Guideline
		}
		wire[kw.Name] = bands
	}
	return wire
}

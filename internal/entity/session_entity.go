package entity

import (
	"strings"
	"time"
)

type SessionStatus string

const (
	SessionScheduled  SessionStatus = "SCHEDULED"
	SessionWaiting    SessionStatus = "WAITING"
	SessionInProgress SessionStatus = "IN_PROGRESS"
	SessionCompleted  SessionStatus = "COMPLETED"
	SessionCancelled  SessionStatus = "CANCELLED"
)

// statusRank orders the forward-only lifecycle. CANCELLED sits outside the
// ordering: it is reachable from any non-terminal status but never left.
var statusRank = map[SessionStatus]int{
	SessionScheduled:  0,
	SessionWaiting:    1,
	SessionInProgress: 2,
	SessionCompleted:  3,
}

// CanAdvanceTo reports whether a session may move from s to next.
func (s SessionStatus) CanAdvanceTo(next SessionStatus) bool {
	if s == SessionCancelled || s == SessionCompleted {
		return false
	}
	if next == SessionCancelled {
		return true
	}
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

type Session struct {
	Id                 int
	RoomId             string
	SessionName        string
	SessionDate        time.Time
	SessionLocation    string
	SessionTime        time.Time
	SessionStatus      SessionStatus
	InterviewersUserId string // denormalized roster, e.g. "INT_A001,INT_A002"
	ApplicantsUserId   string
	RawDataPath        *string
}

// InterviewerIds parses the denormalized interviewer roster.
func (s *Session) InterviewerIds() []string {
	return ParseRoster(s.InterviewersUserId)
}

// ApplicantIds parses the denormalized applicant roster.
func (s *Session) ApplicantIds() []string {
	return ParseRoster(s.ApplicantsUserId)
}

// ParseRoster splits a comma-joined id list, dropping blanks.
func ParseRoster(roster string) []string {
	if strings.TrimSpace(roster) == "" {
		return nil
	}
	parts := strings.Split(roster, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if id := strings.TrimSpace(p); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

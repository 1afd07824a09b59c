package specification

import (
	"gorm.io/gorm"
)

// SessionByID filters sessions by primary key.
type SessionByID struct {
	ID int
}

func (s SessionByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.ID)
}

// SessionByRoomAndStatus filters sessions of one room in a given status.
type SessionByRoomAndStatus struct {
	RoomID string
	Status string
}

func (s SessionByRoomAndStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("room_id = ? AND session_status = ?", s.RoomID, s.Status)
}

// ByRoomAndUser filters room participants by their composite key.
type ByRoomAndUser struct {
	RoomID string
	UserID string
}

func (s ByRoomAndUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("room_id = ? AND user_id = ?", s.RoomID, s.UserID)
}

// ByRoomAndUsers filters room participants to a roster of users.
type ByRoomAndUsers struct {
	RoomID  string
	UserIDs []string
}

func (s ByRoomAndUsers) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("room_id = ? AND user_id IN ?", s.RoomID, s.UserIDs)
}

// ApplicantByID filters applicants by primary key.
type ApplicantByID struct {
	ID string
}

func (s ApplicantByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("applicant_id = ?", s.ID)
}

// KeywordByName filters keywords by exact name.
type KeywordByName struct {
	Name string
}

func (s KeywordByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("keyword_name = ?", s.Name)
}

package dto

import "time"

type StartInterviewRequest struct {
	SessionId int    `json:"session_id" validate:"required"`
	UserId    string `json:"user_id" validate:"required"`
}

type StartInterviewResponse struct {
	Started bool `json:"started"`
}

type EndInterviewRequest struct {
	SessionId int `json:"session_id" validate:"required"`
}

type ParticipantStatusResponse struct {
	UserId     string     `json:"user_id"`
	RoomId     string     `json:"room_id"`
	Status     string     `json:"status"`
	LastPingAt *time.Time `json:"last_ping_at"`
	SessionId  int        `json:"session_id"`
}

type SessionStatusResponse struct {
	SessionId     int    `json:"session_id"`
	SessionStatus string `json:"session_status"`
}

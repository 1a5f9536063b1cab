// Package models defines the wire types served by the activities API.
package models

// Activity is a named extracurricular offering with a schedule, a capacity,
// and a roster of registered participant emails in signup order.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse is the confirmation envelope for signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

package dto

import "time"

// UserResponse represents a user. The password hash is never part of any
// response serialization.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateStatusRequest represents the status update request
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

package users

import (
	"github.com/google/uuid"
)

// UserInfo is a directory entry.
type UserInfo struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
}

// Users is the query result.
type Users struct {
	Users []UserInfo `json:"users"`
	Count int        `json:"count"`
}

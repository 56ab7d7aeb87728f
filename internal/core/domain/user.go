package domain

import (
	"errors"
	"time"
)

const (
	RoleAttendee  = "attendee"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRegistration = errors.New("invalid registration data")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidToken = errors.New("invalid token")

// ValidSignupRole reports whether a role may be chosen at registration time.
// Admin accounts are provisioned out of band, never self-assigned.
func ValidSignupRole(role string) bool {
	return role == RoleAttendee || role == RoleOrganizer
}

// User models an authenticated actor in the system.
// PasswordHash is opaque to every layer except the auth service.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsBlocked    bool      `json:"is_blocked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

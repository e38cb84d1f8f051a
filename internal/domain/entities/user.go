package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleDonor     UserRole = "DONOR"
	UserRoleVolunteer UserRole = "VOLUNTEER"
	UserRoleCreator   UserRole = "CREATOR"
)

// User represents a user entity
type User struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	PasswordHash      string     `json:"-"`
	Role              UserRole   `json:"role"`
	Phone             string     `json:"phone,omitempty"`
	Skills            []string   `json:"skills,omitempty"`
	Availability      string     `json:"availability,omitempty"`
	IsEmailVerified   bool       `json:"isEmailVerified"`
	VerificationToken string     `json:"-"`
	ResetToken        string     `json:"-"`
	LastActiveAt      *time.Time `json:"lastActiveAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	DeletedAt         *time.Time `json:"-"`
}

// RegisterInput represents input for creating a user
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// ChangePasswordInput represents input for changing user password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=8"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

// Account roles carried on a profile. A profile may hold several,
// e.g. an admin who is also a consultant.
const (
	RoleConsultant = "consultant"
	RoleClient     = "client"
	RoleAdmin      = "admin"
)

// User is the authentication identity behind a profile
type User struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	DeletedAt       *time.Time `json:"-"`
}

// RegisterInput represents input for signing up
type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required,min=1,max=100"`
	LastName    string `json:"lastName" binding:"required,min=1,max=100"`
	AccountType string `json:"accountType" binding:"required,oneof=consultant client"`
	CompanyName string `json:"companyName"` // required for client signups, checked in the usecase
}

// LoginInput represents input for logging in
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // store tokens in Redis and return a session id instead
}

// ChangePasswordInput represents input for changing the password
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=8"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	AccessToken  string   `json:"accessToken,omitempty"`
	RefreshToken string   `json:"refreshToken,omitempty"`
	SessionID    string   `json:"sessionId,omitempty"`
	User         *User    `json:"user"`
	Profile      *Profile `json:"profile,omitempty"`
}

package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Profile is a consultant's or client contact's editable identity.
// The slug is unique within the profile scope and regenerated whenever
// the first or last name changes.
type Profile struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"userId"`
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	Slug            string      `json:"slug"`
	Title           string      `json:"title"`
	Bio             string      `json:"bio"`
	Company         string      `json:"company"`
	Competencies    []string    `json:"competencies"`
	Languages       []string    `json:"languages"`
	Roles           []string    `json:"roles"`
	LinkedInURL     null.String `json:"linkedinUrl,omitempty"`
	BookingURL      null.String `json:"bookingUrl,omitempty"`
	ProfileImageURL null.String `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	DeletedAt       *time.Time  `json:"-"`
}

// FullName returns the display name the slug derives from
func (p *Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// HasRole reports whether the profile carries the given role
func (p *Profile) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// UpdateProfileInput represents the editable profile fields
type UpdateProfileInput struct {
	FirstName       string   `json:"firstName" binding:"required,min=1,max=100"`
	LastName        string   `json:"lastName" binding:"required,min=1,max=100"`
	Title           string   `json:"title"`
	Bio             string   `json:"bio"`
	Company         string   `json:"company"`
	Competencies    []string `json:"competencies"`
	Languages       []string `json:"languages"`
	LinkedInURL     string   `json:"linkedinUrl"`
	BookingURL      string   `json:"bookingUrl"`
	ProfileImageURL string   `json:"profileImageUrl"`
}

// SaveProfileInput is the full consultant-edit submission: the profile
// fields plus the complete desired sets of reviews and missions.
type SaveProfileInput struct {
	Profile  UpdateProfileInput  `json:"profile" binding:"required"`
	Reviews  []ReviewSubmission  `json:"reviews"`
	Missions []MissionSubmission `json:"missions"`
}

// ProfileView is the public consultant page payload
type ProfileView struct {
	Profile  *Profile   `json:"profile"`
	Reviews  []*Review  `json:"reviews"`
	Missions []*Mission `json:"missions"`
	Sparks   []*Spark   `json:"sparks"`
}

// UpdateRolesInput represents an admin role assignment
type UpdateRolesInput struct {
	Roles []string `json:"roles" binding:"required,min=1"`
}

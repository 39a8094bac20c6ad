package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mission is one past engagement on a consultant's track record.
// Missions carry no client-visible stable id; the title is the identity
// key during reconciliation, so renaming one is indistinguishable from
// deleting it and inserting a new one.
type Mission struct {
	ID           uuid.UUID `json:"-"`
	ConsultantID uuid.UUID `json:"consultantId"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Description  string    `json:"description"`
	Duration     string    `json:"duration"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MissionSubmission is one mission as submitted by the edit form
type MissionSubmission struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Date        string `json:"date"`
}

// IsBlank reports whether every required field is empty after trimming
func (m MissionSubmission) IsBlank() bool {
	return strings.TrimSpace(m.Title) == "" &&
		strings.TrimSpace(m.Company) == "" &&
		strings.TrimSpace(m.Description) == "" &&
		strings.TrimSpace(m.Duration) == ""
}

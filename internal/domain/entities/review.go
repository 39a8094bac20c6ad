package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Review is a client testimonial attached to one consultant
type Review struct {
	ID             uuid.UUID   `json:"id"`
	ConsultantID   uuid.UUID   `json:"consultantId"`
	ClientName     string      `json:"clientName"`
	ClientRole     string      `json:"clientRole"`
	ClientCompany  string      `json:"clientCompany"`
	ReviewText     string      `json:"reviewText"`
	Rating         int         `json:"rating"`
	ClientImageURL null.String `json:"clientImageUrl,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// ReviewSubmission is one review as submitted by the edit form. The ID is
// either a persisted uuid or a client placeholder prefixed "temp-".
type ReviewSubmission struct {
	ID             string     `json:"id" binding:"required"`
	ClientName     string     `json:"clientName"`
	ClientRole     string     `json:"clientRole"`
	ClientCompany  string     `json:"clientCompany"`
	ReviewText     string     `json:"reviewText"`
	Rating         int        `json:"rating"`
	ClientImageURL string     `json:"clientImageUrl"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

// IsNew reports whether the review has not been persisted yet
func (r ReviewSubmission) IsNew() bool {
	return strings.HasPrefix(r.ID, TempIDPrefix)
}

// IsBlank reports whether every text field is empty after trimming.
// Blank rows are intentional placeholders and are dropped, not rejected.
func (r ReviewSubmission) IsBlank() bool {
	return strings.TrimSpace(r.ClientName) == "" &&
		strings.TrimSpace(r.ClientRole) == "" &&
		strings.TrimSpace(r.ClientCompany) == "" &&
		strings.TrimSpace(r.ReviewText) == ""
}

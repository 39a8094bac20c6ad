package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Spark is a packaged consulting offer in the catalog. Its URL is a slug
// unique within the spark scope, derived from the title.
type Spark struct {
	ID           uuid.UUID   `json:"id"`
	ConsultantID uuid.UUID   `json:"consultantId"`
	Title        string      `json:"title"`
	URL          string      `json:"url"`
	Highlight    null.String `json:"highlight,omitempty"`
	Description  string      `json:"description"`
	Duration     string      `json:"duration"`
	Price        null.String `json:"price,omitempty"`
	Benefits     []string    `json:"benefits"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	DeletedAt    *time.Time  `json:"-"`
}

// CreateSparkInput represents input for creating a spark
type CreateSparkInput struct {
	Title       string   `json:"title" binding:"required,min=3,max=200"`
	Highlight   string   `json:"highlight"`
	Description string   `json:"description" binding:"required"`
	Duration    string   `json:"duration" binding:"required"`
	Price       string   `json:"price"`
	Benefits    []string `json:"benefits"`
}

// UpdateSparkInput represents input for updating a spark
type UpdateSparkInput struct {
	Title       string   `json:"title" binding:"required,min=3,max=200"`
	Highlight   string   `json:"highlight"`
	Description string   `json:"description" binding:"required"`
	Duration    string   `json:"duration" binding:"required"`
	Price       string   `json:"price"`
	Benefits    []string `json:"benefits"`
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Client is a client company record, owned by the user who signed up
// on the client side of the marketplace.
type Client struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	CompanyName string      `json:"companyName"`
	Industry    null.String `json:"industry,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	DeletedAt   *time.Time  `json:"-"`
}

// UpdateClientInput represents the editable client company fields
type UpdateClientInput struct {
	CompanyName string `json:"companyName" binding:"required,min=1,max=200"`
	Industry    string `json:"industry"`
}

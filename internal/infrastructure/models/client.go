package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

type Client struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID   `gorm:"type:uuid;index;not null"`
	CompanyName string      `gorm:"type:varchar(200);not null"`
	Industry    null.String `gorm:"type:varchar(200)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Client) TableName() string { return "clients" }

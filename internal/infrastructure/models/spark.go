package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

type Spark struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	ConsultantID uuid.UUID   `gorm:"type:uuid;index;not null"`
	Title        string      `gorm:"type:varchar(200);not null"`
	URL          string      `gorm:"type:varchar(100);uniqueIndex;not null"`
	Highlight    null.String `gorm:"type:varchar(500)"`
	Description  string      `gorm:"type:text;not null"`
	Duration     string      `gorm:"type:varchar(100);not null"`
	Price        null.String `gorm:"type:varchar(100)"`
	Benefits     []string    `gorm:"type:text;serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Spark) TableName() string { return "sparks" }

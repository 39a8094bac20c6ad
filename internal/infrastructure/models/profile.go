package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

type Profile struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID   `gorm:"type:uuid;index;not null"`
	FirstName       string      `gorm:"type:varchar(100);not null"`
	LastName        string      `gorm:"type:varchar(100);not null"`
	Slug            string      `gorm:"type:varchar(100);uniqueIndex;not null"`
	Title           string      `gorm:"type:varchar(200)"`
	Bio             string      `gorm:"type:text"`
	Company         string      `gorm:"type:varchar(200)"`
	Competencies    []string    `gorm:"type:text;serializer:json"`
	Languages       []string    `gorm:"type:text;serializer:json"`
	Roles           []string    `gorm:"type:text;serializer:json"`
	LinkedInURL     null.String `gorm:"type:varchar(500)"`
	BookingURL      null.String `gorm:"type:varchar(500)"`
	ProfileImageURL null.String `gorm:"type:varchar(500)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Profile) TableName() string { return "profiles" }

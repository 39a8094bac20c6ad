package models

import (
	"time"

	"github.com/google/uuid"
)

type ConsultantMission struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConsultantID uuid.UUID `gorm:"type:uuid;index;not null"`
	Title        string    `gorm:"type:varchar(200);not null"`
	Company      string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:text;not null"`
	Duration     string    `gorm:"type:varchar(100);not null"`
	Date         string    `gorm:"type:varchar(50)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ConsultantMission) TableName() string { return "consultant_missions" }

package models

import (
	"time"

	"gorm.io/gorm"
)

type Session struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"session_name" gorm:"not null"`
	IsActive  bool           `json:"is_active" gorm:"not null;default:false;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:SessionID"`
}

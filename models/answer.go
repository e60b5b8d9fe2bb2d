package models

import (
	"time"

	"gorm.io/gorm"
)

// Answer records one taker's response to one question of a session,
// including an explicit row for skipped questions (SelectedOption nil).
// At most one row may exist per (user_code, session_id, question_id).
type Answer struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	UserCode       string         `json:"user_code" gorm:"not null;uniqueIndex:idx_answers_attempt"`
	Role           string         `json:"role" gorm:"not null"`
	UlbName        string         `json:"ulb_name"`
	SessionID      uint           `json:"session_id" gorm:"not null;uniqueIndex:idx_answers_attempt"`
	QuestionID     uint           `json:"question_id" gorm:"not null;uniqueIndex:idx_answers_attempt"`
	SelectedOption *string        `json:"selected_option"`
	IsCorrect      bool           `json:"is_correct" gorm:"not null"`
	TimeSpent      *int           `json:"time_spent"` // seconds
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Session  Session  `json:"session,omitempty"`
	Question Question `json:"question,omitempty"`
}

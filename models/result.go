package models

import (
	"time"

	"gorm.io/gorm"
)

// Result is the authoritative "already attempted" marker: the unique index
// on (user_code, session_id) is what makes duplicate submissions fail at
// the storage level rather than racing an application-side check.
type Result struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserCode        string         `json:"user_code" gorm:"not null;uniqueIndex:idx_results_attempt"`
	SessionID       uint           `json:"session_id" gorm:"not null;uniqueIndex:idx_results_attempt"`
	CorrectAnswers  int            `json:"correct_answers" gorm:"not null"`
	WrongAnswers    int            `json:"wrong_answers" gorm:"not null"`
	ScorePercentage int            `json:"score_percentage" gorm:"not null"`
	AttemptedAt     time.Time      `json:"attempted_at" gorm:"not null"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Session Session `json:"session,omitempty"`
}

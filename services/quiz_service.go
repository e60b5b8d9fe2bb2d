package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"commquiz/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db       *gorm.DB
	sessions *SessionService
}

func NewQuizService(db *gorm.DB, sessions *SessionService) *QuizService {
	return &QuizService{
		db:       db,
		sessions: sessions,
	}
}

// Identity is the authenticated quiz taker, as extracted from the JWT by the
// auth middleware. The service treats it as opaque.
type Identity struct {
	UserCode string
	Role     string
	UlbName  string
}

type SubmitQuizRequest struct {
	Answers   []string `json:"answers"`
	TimeSpent []int    `json:"time_spent"`
}

type SubmitResult struct {
	Correct    int `json:"correct"`
	Wrong      int `json:"wrong"`
	Percentage int `json:"percentage"`
}

// ActiveQuestions returns the active session and its questions ordered by id
// ascending. Submitted answer arrays are index-aligned to this order.
func (s *QuizService) ActiveQuestions(ctx context.Context) (*models.Session, []models.Question, error) {
	session, err := s.sessions.Active(ctx)
	if err != nil {
		return nil, nil, err
	}

	var questions []models.Question
	if err := s.db.WithContext(ctx).Where("session_id = ?", session.ID).
		Order("id ASC").Find(&questions).Error; err != nil {
		return nil, nil, err
	}

	return session, questions, nil
}

// Submit scores one attempt against the active session. The attempt-once
// guarantee does not rest on the initial lookup: the Result insert runs
// under a unique (user_code, session_id) constraint inside the same
// transaction as the answer rows, so of two concurrent submissions exactly
// one commits and the other fails with ErrAlreadyAttempted, leaving no
// partial answer rows behind.
func (s *QuizService) Submit(ctx context.Context, identity Identity, req *SubmitQuizRequest) (*SubmitResult, error) {
	session, err := s.sessions.Active(ctx)
	if err != nil {
		return nil, err
	}

	// Fast path: a known repeat attempt fails before any scoring work.
	var attempts int64
	if err := s.db.WithContext(ctx).Model(&models.Result{}).
		Where("user_code = ? AND session_id = ?", identity.UserCode, session.ID).
		Count(&attempts).Error; err != nil {
		return nil, err
	}
	if attempts > 0 {
		return nil, ErrAlreadyAttempted
	}

	tx := s.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var questions []models.Question
	if err := tx.Where("session_id = ?", session.ID).Order("id ASC").Find(&questions).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	correct, wrong := 0, 0
	for i, question := range questions {
		selected := ""
		if i < len(req.Answers) {
			selected = strings.ToUpper(strings.TrimSpace(req.Answers[i]))
		}

		var selectedOption *string
		isCorrect := false
		if selected != "" {
			if !validOption(selected) {
				tx.Rollback()
				return nil, ErrValidation
			}
			// Correct markers are canonicalized to uppercase on write, but
			// legacy rows are not guaranteed to be, so compare normalized.
			isCorrect = selected == strings.ToUpper(question.CorrectOption)
			if isCorrect {
				correct++
			} else {
				wrong++
			}
			selectedOption = &selected
		}

		var timeSpent *int
		if i < len(req.TimeSpent) {
			spent := req.TimeSpent[i]
			timeSpent = &spent
		}

		// Skipped questions get a row too (SelectedOption nil); question
		// analysis needs them to tell "skipped" from "never recorded".
		answer := models.Answer{
			UserCode:       identity.UserCode,
			Role:           identity.Role,
			UlbName:        identity.UlbName,
			SessionID:      session.ID,
			QuestionID:     question.ID,
			SelectedOption: selectedOption,
			IsCorrect:      isCorrect,
			TimeSpent:      timeSpent,
		}
		if err := tx.Create(&answer).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrAlreadyAttempted
			}
			return nil, err
		}
	}

	percentage := 0
	if len(questions) > 0 {
		percentage = int(math.Round(float64(correct) / float64(len(questions)) * 100))
	}

	result := models.Result{
		UserCode:        identity.UserCode,
		SessionID:       session.ID,
		CorrectAnswers:  correct,
		WrongAnswers:    wrong,
		ScorePercentage: percentage,
		AttemptedAt:     time.Now().UTC(),
	}
	if err := tx.Create(&result).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyAttempted
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &SubmitResult{
		Correct:    correct,
		Wrong:      wrong,
		Percentage: percentage,
	}, nil
}

func validOption(option string) bool {
	switch option {
	case "A", "B", "C", "D":
		return true
	}
	return false
}

package services

import (
	"context"
	"errors"

	"commquiz/models"

	"gorm.io/gorm"
)

type AnalysisService struct {
	db       *gorm.DB
	sessions *SessionService
}

func NewAnalysisService(db *gorm.DB, sessions *SessionService) *AnalysisService {
	return &AnalysisService{
		db:       db,
		sessions: sessions,
	}
}

type QuestionAnalysis struct {
	QuestionID   uint             `json:"question_id"`
	QuestionText string           `json:"question_text"`
	CorrectCount int              `json:"correct_count"`
	WrongCount   int              `json:"wrong_count"`
	SkippedCount int              `json:"skipped_count"`
	Responses    []AnswerResponse `json:"responses"`
}

type AnswerResponse struct {
	UserCode       string  `json:"user_code"`
	Role           string  `json:"role"`
	UlbName        string  `json:"ulb_name"`
	SelectedOption *string `json:"selected_option"`
	IsCorrect      bool    `json:"is_correct"`
	Status         string  `json:"status"` // answered or skipped
}

// QuestionAnalysis tallies recorded answers per question of a session.
// Skipped counts come from the explicit nil-selection rows the submission
// path writes, so the tallies always reconcile with the stored attempts.
func (s *AnalysisService) QuestionAnalysis(ctx context.Context, sessionID uint) ([]QuestionAnalysis, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var questions []models.Question
	if err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).
		Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}

	var answers []models.Answer
	if err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).
		Order("id ASC").Find(&answers).Error; err != nil {
		return nil, err
	}

	byQuestion := make(map[uint][]models.Answer, len(questions))
	for _, answer := range answers {
		byQuestion[answer.QuestionID] = append(byQuestion[answer.QuestionID], answer)
	}

	analysis := make([]QuestionAnalysis, 0, len(questions))
	for _, question := range questions {
		row := QuestionAnalysis{
			QuestionID:   question.ID,
			QuestionText: question.Text,
			Responses:    []AnswerResponse{},
		}

		for _, answer := range byQuestion[question.ID] {
			status := "answered"
			switch {
			case answer.SelectedOption == nil:
				status = "skipped"
				row.SkippedCount++
			case answer.IsCorrect:
				row.CorrectCount++
			default:
				row.WrongCount++
			}

			row.Responses = append(row.Responses, AnswerResponse{
				UserCode:       answer.UserCode,
				Role:           answer.Role,
				UlbName:        answer.UlbName,
				SelectedOption: answer.SelectedOption,
				IsCorrect:      answer.IsCorrect,
				Status:         status,
			})
		}

		analysis = append(analysis, row)
	}

	return analysis, nil
}

// ResultsForActiveSession lists the recorded results of the active session,
// most recent attempt first.
func (s *AnalysisService) ResultsForActiveSession(ctx context.Context) (*models.Session, []models.Result, error) {
	session, err := s.sessions.Active(ctx)
	if err != nil {
		return nil, nil, err
	}

	var results []models.Result
	if err := s.db.WithContext(ctx).Where("session_id = ?", session.ID).
		Order("attempted_at DESC").Find(&results).Error; err != nil {
		return nil, nil, err
	}

	return session, results, nil
}

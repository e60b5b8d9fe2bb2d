package services

import (
	"context"
	"errors"
	"strings"

	"commquiz/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type CreateQuestionRequest struct {
	SessionID     uint   `json:"session_id" binding:"required"`
	Text          string `json:"question" binding:"required"`
	OptionA       string `json:"option_a" binding:"required"`
	OptionB       string `json:"option_b" binding:"required"`
	OptionC       string `json:"option_c" binding:"required"`
	OptionD       string `json:"option_d" binding:"required"`
	CorrectOption string `json:"correct_option" binding:"required"`
}

type UpdateQuestionRequest struct {
	Text          string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
}

// BySession returns the questions of a session ordered by id ascending, the
// same stable order the submission path scores against.
func (s *QuestionService) BySession(ctx context.Context, sessionID uint) ([]models.Question, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var questions []models.Question
	err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).
		Order("id ASC").Find(&questions).Error
	return questions, err
}

func (s *QuestionService) Add(ctx context.Context, req *CreateQuestionRequest) (*models.Question, error) {
	correctOption, ok := normalizeOption(req.CorrectOption)
	if !ok {
		return nil, ErrValidation
	}

	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, req.SessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	question := models.Question{
		SessionID:     req.SessionID,
		Text:          req.Text,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectOption: correctOption,
	}
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, err
	}

	return &question, nil
}

// Update edits a question in place. Past answer rows keep the verdict they
// were scored with; edits never cascade into recorded attempts.
func (s *QuestionService) Update(ctx context.Context, questionID uint, req *UpdateQuestionRequest) (*models.Question, error) {
	var question models.Question
	if err := s.db.WithContext(ctx).First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Text != "" {
		question.Text = req.Text
	}
	if req.OptionA != "" {
		question.OptionA = req.OptionA
	}
	if req.OptionB != "" {
		question.OptionB = req.OptionB
	}
	if req.OptionC != "" {
		question.OptionC = req.OptionC
	}
	if req.OptionD != "" {
		question.OptionD = req.OptionD
	}
	if req.CorrectOption != "" {
		correctOption, ok := normalizeOption(req.CorrectOption)
		if !ok {
			return nil, ErrValidation
		}
		question.CorrectOption = correctOption
	}

	if err := s.db.WithContext(ctx).Save(&question).Error; err != nil {
		return nil, err
	}

	return &question, nil
}

// normalizeOption canonicalizes an option letter to uppercase so stored
// correct markers always compare cleanly.
func normalizeOption(option string) (string, bool) {
	option = strings.ToUpper(strings.TrimSpace(option))
	if !validOption(option) {
		return "", false
	}
	return option, true
}

package handlers

import (
	"net/http"

	"commquiz/middleware"
	"commquiz/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// GetQuestions serves the active session's questions ordered by id
// ascending. Clients must submit answers index-aligned to this order.
func (h *QuizHandler) GetQuestions(c *gin.Context) {
	session, questions, err := h.quizService.ActiveQuestions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"session":   session,
		"questions": questions,
	})
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	var req services.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	result, err := h.quizService.Submit(c.Request.Context(), identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"correct":    result.Correct,
		"wrong":      result.Wrong,
		"percentage": result.Percentage,
	})
}

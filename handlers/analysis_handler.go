package handlers

import (
	"net/http"
	"strconv"

	"commquiz/services"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisService *services.AnalysisService
}

func NewAnalysisHandler(analysisService *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

func (h *AnalysisHandler) GetResults(c *gin.Context) {
	session, results, err := h.analysisService.ResultsForActiveSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": gin.H{
			"id":   session.ID,
			"name": session.Name,
		},
		"total_attempts": len(results),
		"results":        results,
	})
}

func (h *AnalysisHandler) GetQuestionAnalysis(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("sessionId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid session ID"})
		return
	}

	analysis, err := h.analysisService.QuestionAnalysis(c.Request.Context(), uint(sessionID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": analysis})
}

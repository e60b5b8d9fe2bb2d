package routes

import (
	"net/http"

	"commquiz/handlers"
	"commquiz/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	sessionHandler *handlers.SessionHandler,
	questionHandler *handlers.QuestionHandler,
	quizHandler *handlers.QuizHandler,
	analysisHandler *handlers.AnalysisHandler,
	jwtSecret string,
) {
	// API routes
	api := router.Group("/api")
	{
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			// Quiz routes (any authenticated role)
			quiz := protected.Group("/quiz")
			{
				quiz.GET("/questions", quizHandler.GetQuestions)
				quiz.POST("/submit", quizHandler.SubmitQuiz)
			}

			// Admin routes
			admin := protected.Group("/")
			admin.Use(middleware.RequireRole("admin"))
			{
				sessions := admin.Group("/sessions")
				{
					sessions.GET("", sessionHandler.ListSessions)
					sessions.POST("", sessionHandler.CreateSession)
					sessions.PUT("/:id/activate", sessionHandler.ActivateSession)
					sessions.POST("/clone", sessionHandler.CloneSession)
					sessions.GET("/:id/questions", questionHandler.ListBySession)
				}

				questions := admin.Group("/questions")
				{
					questions.POST("", questionHandler.CreateQuestion)
					questions.PUT("/:id", questionHandler.UpdateQuestion)
				}

				results := admin.Group("/results")
				{
					results.GET("", analysisHandler.GetResults)
					results.GET("/question-analysis/:sessionId", analysisHandler.GetQuestionAnalysis)
				}
			}
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

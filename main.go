package main

import (
	"log"

	"commquiz/config"
	"commquiz/handlers"
	"commquiz/middleware"
	"commquiz/models"
	"commquiz/routes"
	"commquiz/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Session{},
		&models.Question{},
		&models.Answer{},
		&models.Result{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	sessionService := services.NewSessionService(db, redisClient)
	questionService := services.NewQuestionService(db)
	quizService := services.NewQuizService(db, sessionService)
	analysisService := services.NewAnalysisService(db, sessionService)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessionService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	quizHandler := handlers.NewQuizHandler(quizService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, sessionHandler, questionHandler, quizHandler, analysisHandler, cfg.JWTSecret)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

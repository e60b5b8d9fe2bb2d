package services_test

import (
	"testing"

	"commquiz/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// The in-memory database lives exactly as long as its connection, and a
	// single connection also serializes concurrent transactions in tests.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Session{},
		&models.Question{},
		&models.Answer{},
		&models.Result{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func seedSession(t *testing.T, db *gorm.DB, name string, active bool) *models.Session {
	t.Helper()

	session := models.Session{Name: name, IsActive: active}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("seed session %q: %v", name, err)
	}
	return &session
}

func seedQuestion(t *testing.T, db *gorm.DB, sessionID uint, text, correctOption string) *models.Question {
	t.Helper()

	question := models.Question{
		SessionID:     sessionID,
		Text:          text,
		OptionA:       "alpha",
		OptionB:       "bravo",
		OptionC:       "charlie",
		OptionD:       "delta",
		CorrectOption: correctOption,
	}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("seed question %q: %v", text, err)
	}
	return &question
}

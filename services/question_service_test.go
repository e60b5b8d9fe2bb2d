package services_test

import (
	"context"
	"errors"
	"testing"

	"commquiz/services"
)

func TestAddQuestionCanonicalizesCorrectOption(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := services.NewQuestionService(db)

	session := seedSession(t, db, "Bank", false)

	question, err := svc.Add(ctx, &services.CreateQuestionRequest{
		SessionID:     session.ID,
		Text:          "Which option is right?",
		OptionA:       "one",
		OptionB:       "two",
		OptionC:       "three",
		OptionD:       "four",
		CorrectOption: " c ",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if question.CorrectOption != "C" {
		t.Fatalf("expected correct option stored as C, got %q", question.CorrectOption)
	}
}

func TestAddQuestionRejectsBadOption(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewQuestionService(db)
	session := seedSession(t, db, "Bank", false)

	_, err := svc.Add(context.Background(), &services.CreateQuestionRequest{
		SessionID:     session.ID,
		Text:          "q",
		OptionA:       "1",
		OptionB:       "2",
		OptionC:       "3",
		OptionD:       "4",
		CorrectOption: "E",
	})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAddQuestionUnknownSession(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewQuestionService(db)

	_, err := svc.Add(context.Background(), &services.CreateQuestionRequest{
		SessionID:     42,
		Text:          "q",
		OptionA:       "1",
		OptionB:       "2",
		OptionC:       "3",
		OptionD:       "4",
		CorrectOption: "A",
	})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateQuestionPartial(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := services.NewQuestionService(db)

	session := seedSession(t, db, "Bank", false)
	question := seedQuestion(t, db, session.ID, "original", "A")

	updated, err := svc.Update(ctx, question.ID, &services.UpdateQuestionRequest{
		Text:          "revised",
		CorrectOption: "d",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Text != "revised" {
		t.Fatalf("expected revised text, got %q", updated.Text)
	}
	if updated.CorrectOption != "D" {
		t.Fatalf("expected correct option D, got %q", updated.CorrectOption)
	}
	if updated.OptionA != question.OptionA || updated.OptionD != question.OptionD {
		t.Fatal("untouched fields must keep their values")
	}
}

func TestUpdateQuestionUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewQuestionService(db)

	_, err := svc.Update(context.Background(), 404, &services.UpdateQuestionRequest{Text: "x"})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuestionsBySessionOrder(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := services.NewQuestionService(db)

	session := seedSession(t, db, "Bank", false)
	for i := 0; i < 3; i++ {
		seedQuestion(t, db, session.ID, "q", "A")
	}

	questions, err := svc.BySession(ctx, session.ID)
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for i := 1; i < len(questions); i++ {
		if questions[i-1].ID >= questions[i].ID {
			t.Fatal("questions must be ordered by id ascending")
		}
	}

	if _, err := svc.BySession(ctx, 404); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown session, got %v", err)
	}
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"strings"
	"time"

	"commquiz/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	activeSessionKey = "session:active"
	activeSessionTTL = 5 * time.Minute
)

type SessionService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewSessionService(db *gorm.DB, redis *redis.Client) *SessionService {
	return &SessionService{
		db:    db,
		redis: redis,
	}
}

type CreateSessionRequest struct {
	Name string `json:"session_name" binding:"required"`
}

type CloneSessionRequest struct {
	NewSessionName   string `json:"new_session_name" binding:"required"`
	SourceSessionIDs []uint `json:"source_session_ids" binding:"required,min=1"`
	QuestionCount    int    `json:"question_count" binding:"required,min=1"`
}

func (s *SessionService) List(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.WithContext(ctx).Order("id").Find(&sessions).Error
	return sessions, err
}

func (s *SessionService) Create(ctx context.Context, name string) (*models.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}

	session := models.Session{Name: name, IsActive: false}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// Activate makes the given session the single active one. Clearing the old
// flag and setting the new one happen in the same transaction, so no other
// transaction can ever observe two active sessions.
func (s *SessionService) Activate(ctx context.Context, sessionID uint) error {
	tx := s.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var session models.Session
	if err := tx.First(&session, sessionID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := tx.Model(&models.Session{}).Where("is_active = ?", true).
		Update("is_active", false).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&session).Update("is_active", true).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.invalidateActiveSession(ctx)
	return nil
}

// Active returns the unique active session, or ErrNoActiveSession. Reads go
// through a short-lived Redis cache; the database stays the source of truth
// and cache failures fall through to it.
func (s *SessionService) Active(ctx context.Context) (*models.Session, error) {
	if cached := s.cachedActiveSession(ctx); cached != nil {
		return cached, nil
	}

	var session models.Session
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}

	s.storeActiveSession(ctx, &session)
	return &session, nil
}

// Clone assembles a new inactive session by drawing count questions,
// uniformly at random and without replacement, from the combined question
// pool of the source sessions. The whole operation is one transaction: if
// the pool is too small, or any insert fails, neither the session row nor
// any question copy survives.
func (s *SessionService) Clone(ctx context.Context, name string, sourceIDs []uint, count int) (*models.Session, int, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(sourceIDs) == 0 || count < 1 {
		return nil, 0, ErrValidation
	}

	tx := s.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var found int64
	if err := tx.Model(&models.Session{}).Where("id IN ?", sourceIDs).Count(&found).Error; err != nil {
		tx.Rollback()
		return nil, 0, err
	}
	if found != int64(len(dedupeIDs(sourceIDs))) {
		tx.Rollback()
		return nil, 0, ErrNotFound
	}

	session := models.Session{Name: name, IsActive: false}
	if err := tx.Create(&session).Error; err != nil {
		tx.Rollback()
		return nil, 0, err
	}

	// The pool keeps duplicates across different source sessions: two
	// copies of the same question in two sources both count.
	var pool []models.Question
	if err := tx.Where("session_id IN ?", sourceIDs).Order("id").Find(&pool).Error; err != nil {
		tx.Rollback()
		return nil, 0, err
	}

	if len(pool) < count {
		tx.Rollback()
		return nil, 0, ErrInsufficientQuestions
	}

	// Fisher-Yates shuffle, then take the prefix: every question in the
	// pool has equal selection probability and none repeats.
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	for _, src := range pool[:count] {
		question := models.Question{
			SessionID:     session.ID,
			Text:          src.Text,
			OptionA:       src.OptionA,
			OptionB:       src.OptionB,
			OptionC:       src.OptionC,
			OptionD:       src.OptionD,
			CorrectOption: src.CorrectOption,
		}
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return nil, 0, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, 0, err
	}

	return &session, count, nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *SessionService) cachedActiveSession(ctx context.Context) *models.Session {
	if s.redis == nil {
		return nil
	}

	data, err := s.redis.Get(ctx, activeSessionKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis error getting active session: %v", err)
		}
		return nil
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		log.Printf("Failed to decode cached active session: %v", err)
		return nil
	}

	return &session
}

func (s *SessionService) storeActiveSession(ctx context.Context, session *models.Session) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(session)
	if err != nil {
		return
	}

	if err := s.redis.Set(ctx, activeSessionKey, data, activeSessionTTL).Err(); err != nil {
		log.Printf("Failed to cache active session: %v", err)
	}
}

func (s *SessionService) invalidateActiveSession(ctx context.Context) {
	if s.redis == nil {
		return
	}

	if err := s.redis.Del(ctx, activeSessionKey).Err(); err != nil {
		log.Printf("Failed to invalidate active session cache: %v", err)
	}
}

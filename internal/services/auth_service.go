package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hydrolog/hydrolog-backend/internal/config"
	"github.com/hydrolog/hydrolog-backend/internal/models"
	"github.com/hydrolog/hydrolog-backend/internal/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPasswordMismatch = errors.New("password and confirm password do not match")
	ErrEmailTaken       = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// the two are only told apart in server-side logs.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Signup validates and persists a new account. No session is created; the
// caller logs in afterwards.
func (s *AuthService) Signup(email, password, confirmPassword string) (*models.User, error) {
	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}

	email = validation.NormalizeEmail(email)
	if verr := validation.ValidateCredentials(email, password); verr != nil {
		return nil, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hash),
	}

	if err := s.db.Create(&user).Error; err != nil {
		// The unique index on users.email is the uniqueness check; there
		// is no racy pre-insert lookup.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Login verifies credentials and creates a session. The returned raw token
// goes to the client as a cookie; only its sha256 hash is stored.
func (s *AuthService) Login(email, password string) (*models.Session, string, error) {
	email = validation.NormalizeEmail(email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		slog.Info("login failed", "reason", "unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		slog.Info("login failed", "reason", "wrong password", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}
	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	session := models.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Email:     user.Email,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.SessionExpiry),
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, "", fmt.Errorf("failed to store session: %w", err)
	}

	return &session, rawToken, nil
}

// ResolveSession maps a raw cookie token to a live session. Expired or
// unknown tokens both come back as ErrSessionNotFound; the gate treats them
// identically.
func (s *AuthService) ResolveSession(rawToken string) (*models.Session, error) {
	if rawToken == "" {
		return nil, ErrSessionNotFound
	}

	var session models.Session
	if err := s.db.Where("token_hash = ?", hashToken(rawToken)).First(&session).Error; err != nil {
		return nil, ErrSessionNotFound
	}

	if session.Expired() {
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

// Logout destroys the session bound to the raw token. Deleting a token that
// no longer maps to a session is not an error.
func (s *AuthService) Logout(rawToken string) error {
	if err := s.db.Where("token_hash = ?", hashToken(rawToken)).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// ListUsers returns every registered user, for the administrative listing.
func (s *AuthService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}

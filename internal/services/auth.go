package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"
	"sync"

	"github.com/sbilibin2017/senda7/internal/logger"
	"github.com/sbilibin2017/senda7/internal/models"
)

// ErrInvalidCredentials is returned both for an unknown user and for a wrong
// password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// decoyPassword is hashed once and checked on logins for unknown usernames,
// so both rejection paths pay the same hashing cost.
const decoyPassword = "senda-decoy-password"

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, country string) (int64, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	hasher    PasswordHasher
	jwt       JWTGenerator
	publisher *EventPublisher

	decoyOnce sync.Once
	decoyHash string
}

// NewAuthService creates a new AuthService instance. publisher may be nil.
func NewAuthService(reader UserReader, writer UserWriter, hasher PasswordHasher, jwt JWTGenerator, publisher *EventPublisher) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		hasher:    hasher,
		jwt:       jwt,
		publisher: publisher,
	}
}

// Register creates a user and returns a token for the new session.
// Concurrent registrations of one username are settled by the store's
// uniqueness constraint.
func (svc *AuthService) Register(ctx context.Context, username, password, country string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", err
	}
	if user != nil {
		logger.Log.Infow("user already exists", "username", username)
		return "", models.ErrDuplicateUsername
	}

	hashedPassword, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	userID, err := svc.writer.Save(ctx, username, hashedPassword, country)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			logger.Log.Infow("user already exists", "username", username)
		} else {
			logger.Log.Errorw("failed to save user", "err", err)
		}
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", userID, "err", err)
		return "", err
	}

	svc.publisher.Publish(ctx, models.EventUserRegistered, userID)
	logger.Log.Infow("user registered", "user_id", userID)

	return token, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		svc.hasher.Verify(password, svc.decoy())
		logger.Log.Infow("login rejected", "reason", "unknown user")
		return "", ErrInvalidCredentials
	}

	if !svc.hasher.Verify(password, user.PasswordHash) {
		logger.Log.Infow("login rejected", "reason", "wrong password", "user_id", user.ID)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", user.ID, "err", err)
		return "", err
	}

	svc.publisher.Publish(ctx, models.EventUserLoggedIn, user.ID)

	return token, nil
}

func (svc *AuthService) decoy() string {
	svc.decoyOnce.Do(func() {
		hash, err := svc.hasher.Hash(decoyPassword)
		if err != nil {
			logger.Log.Errorw("failed to hash decoy password", "err", err)
			return
		}
		svc.decoyHash = hash
	})
	return svc.decoyHash
}

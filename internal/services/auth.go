package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, role string) (string, error)
}

// LoginAttemptLimiter counts failed logins per username.
type LoginAttemptLimiter interface {
	Attempts(ctx context.Context, username string) (int, error)
	RegisterFailure(ctx context.Context, username string) (int, error)
	Reset(ctx context.Context, username string) error
}

// AuthService handles registration and login.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	limiter     LoginAttemptLimiter
	maxAttempts int
}

// NewAuthService creates a new AuthService instance. limiter may be nil,
// which disables login throttling.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, limiter LoginAttemptLimiter, maxAttempts int) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		limiter:     limiter,
		maxAttempts: maxAttempts,
	}
}

// Register creates a user with the given role.
func (svc *AuthService) Register(ctx context.Context, username, password, role string) (*models.User, error) {
	username = strings.TrimSpace(username)

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	role = strings.TrimSpace(role)
	if role != models.RoleAdmin && role != models.RoleUser {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	if err := svc.writer.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrUsernameConflict) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)

	if svc.locked(ctx, username) {
		logger.Log.Warnw("login throttled", "username", username)
		return "", ErrTooManyAttempts
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "username", username)
		svc.registerFailure(ctx, username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "username", username)
		svc.registerFailure(ctx, username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	if svc.limiter != nil {
		if err := svc.limiter.Reset(ctx, username); err != nil {
			logger.Log.Warnw("failed to reset login attempts", "username", username, "err", err)
		}
	}

	return token, nil
}

// ListUsers returns all users ordered by username.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// locked reports whether username exhausted its attempts. Limiter errors
// disable throttling instead of blocking logins.
func (svc *AuthService) locked(ctx context.Context, username string) bool {
	if svc.limiter == nil || svc.maxAttempts <= 0 {
		return false
	}

	n, err := svc.limiter.Attempts(ctx, username)
	if err != nil {
		logger.Log.Warnw("failed to read login attempts", "username", username, "err", err)
		return false
	}
	return n >= svc.maxAttempts
}

func (svc *AuthService) registerFailure(ctx context.Context, username string) {
	if svc.limiter == nil {
		return
	}
	if _, err := svc.limiter.RegisterFailure(ctx, username); err != nil {
		logger.Log.Warnw("failed to record login failure", "username", username, "err", err)
	}
}

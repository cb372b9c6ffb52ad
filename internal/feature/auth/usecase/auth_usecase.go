package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"twitchplanner/internal/feature/auth/domain/entity"
	jwtmw "twitchplanner/internal/platform/jwt"
)

const minPasswordLength = 8

// dataImagePrefix is the required prefix for data-URI encoded images.
const dataImagePrefix = "data:image/"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailAlreadyExists when the
	// email is already registered.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update persists changes to an existing user. Returns
	// ErrEmailAlreadyExists when the new email is taken by another user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user and, in the same transaction, all plannings and
	// events the user owns.
	Delete(ctx context.Context, id uint) error
}

// TokenGenerator creates signed session tokens.
type TokenGenerator interface {
	GenerateToken(userID uint, sessionID string) (string, error)
}

// TokenVerifier verifies signed session tokens.
type TokenVerifier interface {
	ParseToken(token string) (*jwtmw.Claims, error)
}

// SessionMeta captures client details recorded with a new session.
type SessionMeta struct {
	UserAgent string
	IPAddress string
}

// UpdateProfileParams carries a partial profile update. Nil fields are left
// untouched; an empty Logo clears the stored logo.
type UpdateProfileParams struct {
	Email     *string
	Password  *string
	TwitchURL *string
	Logo      *string
}

// AuthUsecase implements registration, login, session verification and
// profile management.
type AuthUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	generator  TokenGenerator
	verifier   TokenVerifier
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, generator TokenGenerator, verifier TokenVerifier, sessionTTL time.Duration) *AuthUsecase {
	return &AuthUsecase{
		users:      users,
		sessions:   sessions,
		generator:  generator,
		verifier:   verifier,
		sessionTTL: sessionTTL,
	}
}

// validatePassword checks the password policy: at least 8 characters with one
// uppercase letter, one lowercase letter and one digit.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}

// newSessionID generates a random 64-character hex session identifier.
func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Register creates a new account and opens a session for it. Returns the
// created user and a signed session token.
func (u *AuthUsecase) Register(ctx context.Context, email, password string, meta SessionMeta) (*entity.User, string, error) {
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.issueSession(ctx, user.ID, meta)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a user and returns a signed session token.
// A bcrypt comparison runs even when the email is unknown, so response timing
// does not reveal whether an account exists.
func (u *AuthUsecase) Login(ctx context.Context, email, password string, meta SessionMeta) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path even for
	// unknown emails.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.issueSession(ctx, user.ID, meta)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes the session referenced by the token. An invalid token is not
// an error: the client-held cookie is cleared either way.
func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	claims, err := u.verifier.ParseToken(token)
	if err != nil || claims.SessionID == "" {
		return nil
	}
	if err := u.sessions.Revoke(ctx, claims.SessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// Authenticate resolves a raw session token to a user ID: the token must
// verify, its session must still be valid and the user must still exist.
func (u *AuthUsecase) Authenticate(ctx context.Context, token string) (uint, error) {
	claims, err := u.verifier.ParseToken(token)
	if err != nil {
		return 0, err
	}

	session, err := u.sessions.FindByID(ctx, claims.SessionID)
	if err != nil {
		return 0, ErrSessionInvalid
	}
	if !session.IsValid() || session.UserID != claims.UserID {
		return 0, ErrSessionInvalid
	}

	user, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// GetUser returns the user with the given ID.
func (u *AuthUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// UpdateProfile applies a partial profile update. The update is merged into
// the current record and validated as a whole before anything is persisted.
func (u *AuthUsecase) UpdateProfile(ctx context.Context, userID uint, params UpdateProfileParams) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if params.Email != nil && *params.Email != "" {
		user.Email = *params.Email
	}

	if params.Password != nil && *params.Password != "" {
		if err := validatePassword(*params.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*params.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if params.TwitchURL != nil && *params.TwitchURL != "" {
		user.TwitchURL = params.TwitchURL
	}

	if params.Logo != nil {
		if *params.Logo == "" {
			user.Logo = nil
		} else {
			if !strings.HasPrefix(*params.Logo, dataImagePrefix) {
				return nil, ErrInvalidLogo
			}
			user.Logo = params.Logo
		}
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user, cascading to all owned plannings and
// events, and revokes every open session.
func (u *AuthUsecase) DeleteAccount(ctx context.Context, userID uint) error {
	if err := u.users.Delete(ctx, userID); err != nil {
		return err
	}
	return u.sessions.RevokeAllByUserID(ctx, userID)
}

// issueSession stores a new session and returns the signed token carrying it.
func (u *AuthUsecase) issueSession(ctx context.Context, userID uint, meta SessionMeta) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := u.generator.GenerateToken(userID, id)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"stockroom-backend/internal/database"
	"stockroom-backend/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports a request that fails the shared shape checks. It is
// a caller error, never logged.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// dummyHash is verified against when login hits an unknown username, so that
// path costs a bcrypt comparison just like a wrong password does.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("stockroom.dummy.password"), bcryptCost)

// Service handles registration, login and session lifecycle
type Service struct {
	users    *database.UserRepo
	sessions *database.SessionRepo
}

// NewService creates a new auth service
func NewService(users *database.UserRepo, sessions *database.SessionRepo) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
	}
}

// Register validates the credentials and creates the user. Duplicate
// usernames surface as database.ErrUserAlreadyExists; the UNIQUE constraint
// on the users table decides the winner under concurrent registration, the
// pre-check only spares a hash for the common sequential case.
func (s *Service) Register(username, password string) (*models.User, error) {
	if len(username) < minUsernameLen {
		return nil, &ValidationError{Message: fmt.Sprintf("username must be at least %d characters", minUsernameLen)}
	}
	if len(password) < minPasswordLen {
		return nil, &ValidationError{Message: fmt.Sprintf("password must be at least %d characters", minPasswordLen)}
	}
	if len(password) > maxPasswordLen {
		return nil, &ValidationError{Message: fmt.Sprintf("password must be at most %d bytes", maxPasswordLen)}
	}

	exists, err := s.users.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, database.ErrUserAlreadyExists
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and creates a session, returning the plain
// session token. Unknown usernames and wrong passwords are deliberately
// indistinguishable: both cost a bcrypt comparison and both return
// ErrInvalidCredentials.
func (s *Service) Login(username, password string) (string, *models.Session, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			VerifyPassword(password, string(dummyHash))
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, session, err := s.sessions.Create(user.ID, SessionTTL)
	if err != nil {
		return "", nil, err
	}

	return token, session, nil
}

// Logout destroys the session for the given token. Idempotent: an unknown or
// already-destroyed token still succeeds.
func (s *Service) Logout(token string) error {
	return s.sessions.DeleteByToken(token)
}

// ResolveSession resolves a token to its live session. It does not look at
// the user: a session whose user row has since vanished still resolves, and
// lingers until it expires or is destroyed.
func (s *Service) ResolveSession(token string) (*models.Session, error) {
	return s.sessions.GetByToken(token)
}

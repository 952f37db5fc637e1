package database

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"stockroom-backend/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// SessionRepo handles session database operations. Session rows hold a weak
// reference to their user: deleting a user does not cascade here, the session
// simply lingers until it expires or is destroyed.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session and returns the plain token. Only the SHA-256
// hash of the token is persisted.
func (r *SessionRepo) Create(userID int64, duration time.Duration) (string, *models.Session, error) {
	// Generate random token
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", nil, err
	}
	token := hex.EncodeToString(tokenBytes)

	session := &models.Session{
		UserID:    userID,
		TokenHash: hashToken(token),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(duration),
	}

	result, err := r.db.Exec(`
		INSERT INTO sessions (user_id, token_hash, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, session.UserID, session.TokenHash, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return "", nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return "", nil, err
	}
	session.ID = id

	return token, session, nil
}

// GetByToken retrieves a session by its plain token. Unknown, malformed and
// expired tokens all come back as not-found class errors; expired rows are
// purged on the way out.
func (r *SessionRepo) GetByToken(token string) (*models.Session, error) {
	session := &models.Session{}

	err := r.db.QueryRow(`
		SELECT id, user_id, token_hash, created_at, expires_at
		FROM sessions WHERE token_hash = ?
	`, hashToken(token)).Scan(
		&session.ID, &session.UserID, &session.TokenHash,
		&session.CreatedAt, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	// Check if expired
	if time.Now().After(session.ExpiresAt) {
		r.Delete(session.ID)
		return nil, ErrSessionExpired
	}

	return session, nil
}

// Delete deletes a session by ID
func (r *SessionRepo) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	return err
}

// DeleteByToken deletes a session by its plain token. Idempotent: deleting a
// token that was never issued or is already gone is not an error.
func (r *SessionRepo) DeleteByToken(token string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE token_hash = ?", hashToken(token))
	return err
}

// DeleteExpired removes all expired sessions
func (r *SessionRepo) DeleteExpired() (int64, error) {
	result, err := r.db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// hashToken creates a SHA-256 hash of the token
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

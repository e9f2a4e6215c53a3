package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/vocab/internal/vocab/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories so transactional code only ever touches the
// Tx-scoped ones.
type Store interface {
	Users() Users
	RefreshTokens() RefreshTokens
	Words() Words
	Progress() Progress

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only the tx repositories may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user. ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail expects a normalised email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

// RefreshTokens is the per-user set of currently valid refresh tokens.
type RefreshTokens interface {
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	// ListUserRefreshTokens returns the user's set, oldest first.
	ListUserRefreshTokens(ctx context.Context, userID string) ([]domain.RefreshToken, error)

	// DeleteUserRefreshToken removes hash from userID's set in one statement.
	// ErrNotFound when it was not a member, so of two concurrent callers only
	// one can succeed.
	DeleteUserRefreshToken(ctx context.Context, userID, hash string) error

	// DeleteRefreshTokenByHash removes the token from whichever set holds it.
	// ErrNotFound when no set does.
	DeleteRefreshTokenByHash(ctx context.Context, hash string) error

	// DeleteExpiredRefreshTokens drops rows whose expiry is before now.
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}

type Words interface {
	CreateWord(ctx context.Context, w domain.Word) error

	ListWords(ctx context.Context, f domain.WordFilter) ([]domain.Word, error)

	GetWord(ctx context.Context, userID, id string) (domain.Word, error)

	// UpdateWordImage sets the image of one of the user's words.
	UpdateWordImage(ctx context.Context, userID, id, image string) (domain.Word, error)

	// ListCourses returns the distinct non-empty course names of the user.
	ListCourses(ctx context.Context, userID string) ([]string, error)

	// ListLessons returns distinct lesson names, within course unless empty.
	ListLessons(ctx context.Context, userID, course string) ([]string, error)

	// DeleteLesson removes every word of the lesson and reports how many.
	// An empty course matches the lesson in any course.
	DeleteLesson(ctx context.Context, userID, course, lesson string) (int64, error)
}

type Progress interface {
	// CreateProgress inserts a counter. ErrAlreadyExists for a duplicate key.
	CreateProgress(ctx context.Context, p domain.LessonProgress) error

	GetProgress(ctx context.Context, userID, course, lesson string) (domain.LessonProgress, error)

	// ListProgress returns the user's counters, within course unless empty.
	ListProgress(ctx context.Context, userID, course string) ([]domain.LessonProgress, error)

	// IncrementRepeats adds one to the counter and returns the new state.
	IncrementRepeats(ctx context.Context, userID, course, lesson string, now time.Time) (domain.LessonProgress, error)

	// SetRepeats overwrites the counter and returns the new state.
	SetRepeats(ctx context.Context, userID, course, lesson string, repeats int, now time.Time) (domain.LessonProgress, error)
}

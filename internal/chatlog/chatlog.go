package chatlog

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Exchange is one completed question/answer turn with its provenance.
type Exchange struct {
	UserID    string
	Question  string
	Answer    string
	Source    string
	CreatedAt time.Time
}

// Log is an append-only sqlite record of completed exchanges. It is an audit
// artifact: nothing reads it back into live conversations.
type Log struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (or creates) the exchange log at path.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	createExchangesTable := `
	CREATE TABLE IF NOT EXISTS exchanges (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT,
		question TEXT,
		answer TEXT,
		source TEXT,
		created_at DATETIME
	);`

	if _, err := db.Exec(createExchangesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create exchanges table: %w", err)
	}

	return &Log{db: db}, nil
}

// Record appends one exchange.
func (l *Log) Record(ex Exchange) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO exchanges (user_id, question, answer, source, created_at) VALUES (?, ?, ?, ?, ?)",
		ex.UserID, ex.Question, ex.Answer, ex.Source, ex.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save exchange: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Count returns the number of recorded exchanges for a user.
func (l *Log) Count(userID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var n int
	err := l.db.QueryRow("SELECT COUNT(*) FROM exchanges WHERE user_id = ?", userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count exchanges: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (l *Log) Close() error {
	return l.db.Close()
}

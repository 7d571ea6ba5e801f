package actionlog

import (
	"database/sql"
	"time"
)

// Store handles action log persistence to the database
type Store struct {
	db *sql.DB
}

// NewStore opens a store against the given connection string.
// Returns nil if dbURL is empty (persistence disabled, log lines only).
func NewStore(dbURL string) (*Store, error) {
	if dbURL == "" {
		return nil, nil
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewStoreWithDB creates a store with an existing database connection.
// Useful for testing with sqlmock.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save persists an action event to the database
func (s *Store) Save(event Event) error {
	if s.db == nil {
		return nil
	}

	_, err := s.db.Exec(`
		INSERT INTO action_log (action_time, username, object_type, object_id, object_repr, action_flag, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		time.Now().UTC(),
		event.Username(),
		event.ObjectType(),
		event.ObjectID(),
		event.ObjectRepr(),
		event.ActionFlag(),
		event.Message(),
	)

	return err
}

// DB returns the underlying database connection (for testing)
func (s *Store) DB() *sql.DB {
	return s.db
}

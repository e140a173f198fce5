package cache

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
	_ "modernc.org/sqlite"

	"titlekit/internal/config"
	"titlekit/internal/services"
)

// ErrMiss reports a cache lookup that found nothing.
var ErrMiss = errors.New("cache miss")

// Store manages result persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Key derives the content address for a canonical input envelope.
func Key(canonical []byte) string {
	sum := blake3.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

// Open initializes or connects to the result database and applies the schema.
// Initialization is guarded by a file lock so concurrent CLI invocations
// don't race on schema creation.
func Open(cfg *config.Config) (*Store, error) {
	if cfg == nil || !cfg.Cache.Enabled {
		return nil, services.Wrap(services.ErrConfiguration,
			"cache", "open", "cache is disabled", nil)
	}
	if err := os.MkdirAll(cfg.Cache.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Cache.Dir, "results.lock"))
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	dbPath := filepath.Join(cfg.Cache.Dir, "results.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) applySchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS results (
    id         TEXT NOT NULL,
    key        TEXT PRIMARY KEY,
    payload    BLOB NOT NULL,
    created_at TEXT NOT NULL
)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Put stores payload under key, replacing any previous entry.
func (s *Store) Put(ctx context.Context, key string, payload []byte) error {
	compressed, err := compress(payload)
	if err != nil {
		return services.Wrap(services.ErrStorage, "cache", "compress payload", "", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO results (id, key, payload, created_at) VALUES (?, ?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at`,
		uuid.NewString(),
		key,
		compressed,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return services.Wrap(services.ErrStorage, "cache", "store result", "", err)
	}
	return nil
}

// Get returns the payload stored under key, or ErrMiss.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var compressed []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM results WHERE key = ?`, key,
	).Scan(&compressed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, services.Wrap(services.ErrStorage, "cache", "load result", "", err)
	}
	payload, err := decompress(compressed)
	if err != nil {
		return nil, services.Wrap(services.ErrStorage, "cache", "decompress payload", "", err)
	}
	return payload, nil
}

// Stats summarizes the store contents.
type Stats struct {
	Entries int64
	Bytes   int64
}

// Stats reports entry count and compressed payload bytes.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(LENGTH(payload)), 0) FROM results`,
	).Scan(&stats.Entries, &stats.Bytes)
	if err != nil {
		return Stats{}, services.Wrap(services.ErrStorage, "cache", "collect stats", "", err)
	}
	return stats, nil
}

// Clear removes every stored result.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM results`)
	if err != nil {
		return 0, services.Wrap(services.ErrStorage, "cache", "clear results", "", err)
	}
	return res.RowsAffected()
}

func compress(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(payload); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(compressed []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

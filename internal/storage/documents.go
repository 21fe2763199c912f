package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
)

var (
	// ErrNotFound is returned when no document exists under the requested key.
	ErrNotFound = errors.New("document not found")

	// ErrCorruptState is returned when a persisted document cannot be decoded.
	// The store never reinitializes a corrupt document; operator intervention
	// is required, since dropping it would silently discard history.
	ErrCorruptState = errors.New("corrupt persisted document")
)

// DocumentStore is a key-addressed durable store mapping (collection, key)
// to a JSON document. Every write is a single atomic per-key upsert, so a
// document is durable the moment Put returns; callers serializing
// read-modify-write cycles can rely on that ordering.
type DocumentStore struct {
	db *sqlx.DB
}

// New creates a DocumentStore.
func New(db *sqlx.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Get loads the document stored under (collection, key) into dest.
// Returns ErrNotFound when the key is absent and ErrCorruptState when the
// stored value does not decode into dest.
func (s *DocumentStore) Get(ctx context.Context, collection, key string, dest any) error {
	const query = `
		SELECT value
		FROM documents
		WHERE collection = $1 AND key = $2
	`

	var raw []byte
	err := s.db.GetContext(ctx, &raw, query, collection, key)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{collection, key},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Log.Errorw("failed to decode stored document",
			"collection", collection, "key", key, "error", err)
		return fmt.Errorf("%w: %s/%s: %v", ErrCorruptState, collection, key, err)
	}
	return nil
}

// Put stores value under (collection, key), overwriting any previous document
// in a single upsert.
func (s *DocumentStore) Put(ctx context.Context, collection, key string, value any) error {
	const query = `
		INSERT INTO documents (collection, key, value, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (collection, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, collection, key, raw)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{collection, key},
		"error", err,
	)

	return err
}

// Keys returns every key in a collection in insertion order.
func (s *DocumentStore) Keys(ctx context.Context, collection string) ([]string, error) {
	const query = `
		SELECT key
		FROM documents
		WHERE collection = $1
		ORDER BY created_at, key
	`

	var keys []string
	err := s.db.SelectContext(ctx, &keys, query, collection)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{collection},
		"result", len(keys),
		"error", err,
	)

	return keys, err
}

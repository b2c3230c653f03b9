package payer

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ErrNotStored is returned when no payer list has been persisted yet.
var ErrNotStored = errors.New("payer registry not stored")

const settingsKey = "payers"

// Repo persists the payer registry as a single settings value holding an
// ordered JSON list of names.
type Repo interface {
	Load(ctx context.Context) ([]string, error)
	Store(ctx context.Context, names []string) error
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Load(ctx context.Context) ([]string, error) {
	query := "SELECT value FROM settings WHERE key = ?"
	row := r.db.QueryRowContext(ctx, query, settingsKey)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotStored
		}
		err := fmt.Errorf("could not read payer registry: %w", err)
		log.Error(err)
		return nil, err
	}

	var names []string
	if err := json.Unmarshal([]byte(value), &names); err != nil {
		err := fmt.Errorf("could not parse payer registry: %w", err)
		log.Error(err)
		return nil, err
	}

	return names, nil
}

func (r *RepoImpl) Store(ctx context.Context, names []string) error {
	value, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("could not encode payer registry: %w", err)
	}

	query := `INSERT INTO settings (key, value) VALUES (?, ?)
              ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, settingsKey, string(value)); err != nil {
		err := fmt.Errorf("could not store payer registry: %w", err)
		log.Error(err)
		return err
	}

	return nil
}

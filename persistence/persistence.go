package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paologalligit/seat-helper/entities"
)

// Persistence defines the interface for recording seat lookups
// Implementations: FilePersistence, PostgresPersistence
type Persistence interface {
	WriteLookup(ctx context.Context, entry entities.LookupLogEntry) error
}

// FilePersistence implements Persistence by appending JSON lines to a file
type FilePersistence struct {
	FilePath string
	mu       sync.Mutex
}

func NewFilePersistence(filePath string) *FilePersistence {
	return &FilePersistence{FilePath: filePath}
}

func (f *FilePersistence) WriteLookup(ctx context.Context, entry entities.LookupLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, err := os.OpenFile(f.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening lookup log: %w", err)
	}
	defer file.Close()
	enc := json.NewEncoder(file)
	if err := enc.Encode(entry); err != nil {
		return fmt.Errorf("error writing lookup entry: %w", err)
	}
	return nil
}

// PostgresPersistence implements Persistence by writing to the seat_lookup table
type PostgresPersistence struct {
	Pool *pgxpool.Pool
}

func NewPostgresPersistence(pool *pgxpool.Pool) *PostgresPersistence {
	return &PostgresPersistence{Pool: pool}
}

func (p *PostgresPersistence) WriteLookup(ctx context.Context, entry entities.LookupLogEntry) error {
	_, err := p.Pool.Exec(ctx, `
		INSERT INTO seat_lookup (cinema, session, data_id, row_name, seat_name, outcome, error, logged_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, NULLIF($7, ''), $8)
	`,
		entry.Cinema,
		entry.Session,
		entry.DataId,
		entry.Row,
		entry.Seat,
		entry.Outcome,
		entry.Error,
		entry.LoggedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting seat lookup entry: %w", err)
	}
	return nil
}

// Multi fans a lookup out to several sinks and joins their errors
type Multi []Persistence

func (m Multi) WriteLookup(ctx context.Context, entry entities.LookupLogEntry) error {
	var errs []error
	for _, p := range m {
		if err := p.WriteLookup(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("writing lookup to %d sinks: %w", len(errs), errors.Join(errs...))
	}
	return nil
}

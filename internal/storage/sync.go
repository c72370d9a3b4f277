package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Dump is a portable copy of every stored bucket. Bucket values are plain
// decoded JSON so the dump can be written as TOML or YAML.
type Dump struct {
	ExportedAt time.Time      `json:"exported_at" toml:"exported_at" yaml:"exported_at"`
	Buckets    map[string]any `json:"buckets" toml:"buckets" yaml:"buckets"`
}

// Export reads all buckets into a Dump. Buckets holding JSON null are skipped.
func (s *Storage) Export(ctx context.Context) (*Dump, error) {
	names, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	dump := &Dump{ExportedAt: s.now().UTC(), Buckets: make(map[string]any, len(names))}
	for _, name := range names {
		raw, ok, err := s.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decoding bucket %s: %w", name, err)
		}
		if v == nil {
			continue
		}
		dump.Buckets[name] = v
	}
	return dump, nil
}

// Import replaces the stored data with the buckets of dump, all or nothing.
// Unknown bucket names and values that do not decode as their bucket's type
// are refused before anything is written.
func (s *Storage) Import(ctx context.Context, dump *Dump) error {
	encoded := make(map[string]json.RawMessage, len(dump.Buckets))
	for name, v := range dump.Buckets {
		if !IsKnownBucket(name) {
			return fmt.Errorf("unknown bucket %q in dump", name)
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding bucket %s: %w", name, err)
		}
		if err := validateBucket(name, raw); err != nil {
			return err
		}
		encoded[name] = raw
	}

	now := s.now()
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM buckets"); err != nil {
			return fmt.Errorf("Clearing buckets: %w", err)
		}
		for name, raw := range encoded {
			if err := set(ctx, tx, name, raw, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("data imported", slog.Int("buckets", len(encoded)))
	return nil
}

// ClearAll removes every application bucket.
func (s *Storage) ClearAll(ctx context.Context) error {
	if err := s.Remove(ctx, Buckets...); err != nil {
		return err
	}
	s.logger.Info("all data cleared")
	return nil
}

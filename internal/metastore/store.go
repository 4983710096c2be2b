// Package metastore persists build metadata summaries as JSON files.
package metastore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/zeebo/xxh3"

	"github.com/coral-mesh/buildmeta/internal/buildmeta"
	"github.com/coral-mesh/buildmeta/internal/retry"
	"github.com/coral-mesh/buildmeta/internal/safe"
)

// ErrNotFound is returned by Load when the metadata file does not exist.
var ErrNotFound = errors.New("build metadata not found")

// Options configures a Store.
type Options struct {
	// MaxSize bounds the file size read by Load. Zero uses the safe package default.
	MaxSize int64
	// AllowSymlinks lets Load follow a symlinked metadata file.
	AllowSymlinks bool
	// Retry controls how Save retries a failed file replacement. The zero
	// value uses retry.Default.
	Retry retry.Config
}

// Store reads and writes a single metadata summary file.
type Store struct {
	path   string
	opts   Options
	logger zerolog.Logger
}

// New creates a store for the file at path.
func New(path string, opts Options, logger zerolog.Logger) *Store {
	return &Store{
		path:   path,
		opts:   opts,
		logger: logger.With().Str("path", path).Logger(),
	}
}

// Path returns the metadata file path.
func (s *Store) Path() string {
	return s.path
}

// Save writes the summary atomically. Replacing an existing file is retried
// while the rename fails, e.g. because a reader still holds the old file open.
func (s *Store) Save(ctx context.Context, summary buildmeta.Summary) error {
	data, err := Encode(summary)
	if err != nil {
		return err
	}

	cfg := s.opts.Retry
	if cfg.Attempts == 0 {
		cfg = retry.Default
	}

	attempt := 0
	err = retry.Do(ctx, cfg, func() error {
		attempt++
		err := safe.WriteFileAtomic(s.path, data, 0o644, s.logger)
		if err != nil && isReplaceError(err) {
			s.logger.Debug().Err(err).Int("attempt", attempt).Msg("Replacing build metadata failed")
		}
		return err
	}, isReplaceError)
	if err != nil {
		return fmt.Errorf("failed to save build metadata: %w", err)
	}
	s.logger.Debug().Int("bytes", len(data)).Msg("Saved build metadata")
	return nil
}

func isReplaceError(err error) bool {
	var linkErr *os.LinkError
	return errors.As(err, &linkErr)
}

// Load reads the summary. Unknown JSON fields are ignored so files written by
// newer producers remain readable.
func (s *Store) Load() (buildmeta.Summary, error) {
	data, err := safe.ReadFile(s.path, &safe.ReadOptions{
		MaxSize:       s.opts.MaxSize,
		AllowSymlinks: s.opts.AllowSymlinks,
	})
	if err != nil {
		if os.IsNotExist(err) {
			return buildmeta.Summary{}, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return buildmeta.Summary{}, fmt.Errorf("failed to read build metadata: %w", err)
	}

	var summary buildmeta.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return buildmeta.Summary{}, fmt.Errorf("failed to parse build metadata %s: %w", s.path, err)
	}

	s.logger.Debug().
		Str("target_directory", summary.TargetDirectory).
		Int("base_output_directories", len(summary.BaseOutputDirectories)).
		Int("linked_paths", len(summary.LinkedPaths)).
		Msg("Loaded build metadata")

	return summary, nil
}

// LoadDiscovery loads the summary as Discovery metadata, warning when the
// target triple is not recognized.
func (s *Store) LoadDiscovery() (*buildmeta.Discovery, error) {
	summary, err := s.Load()
	if err != nil {
		return nil, err
	}

	meta := buildmeta.FromSummary[buildmeta.BinaryListState](summary)
	if meta.TargetTriple != nil && !meta.TargetTriple.Recognized() {
		s.logger.Warn().
			Str("target_triple", meta.TargetTriple.String()).
			Msg("Unrecognized target triple in build metadata, keeping it as unknown")
	}
	return meta, nil
}

// Encode returns the canonical JSON encoding of a summary: indented, with
// collections sorted and deduplicated, and a trailing newline. Equal
// metadata encodes to identical bytes.
func Encode(summary buildmeta.Summary) ([]byte, error) {
	canonical := buildmeta.FromSummary[buildmeta.BinaryListState](summary).ToSummary()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(canonical); err != nil {
		return nil, fmt.Errorf("failed to encode build metadata: %w", err)
	}
	return buf.Bytes(), nil
}

// Fingerprint returns a stable xxh3 digest of the summary's canonical encoding.
func Fingerprint(summary buildmeta.Summary) (string, error) {
	data, err := Encode(summary)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxh3.Hash(data)), nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/metrics"
	"github.com/guttosm/freight-service/internal/repository"
)

// ErrCatalogUnavailable is returned by searches before any catalog has been loaded.
var ErrCatalogUnavailable = errors.New("parts catalog is not loaded")

// AmbiguousModelError is returned when a lookup matches several records and none of
// them carries exactly the requested model number. The caller picks one of Candidates.
type AmbiguousModelError struct {
	Query      string
	Candidates []model.PartSpec
}

func (e *AmbiguousModelError) Error() string {
	return fmt.Sprintf("model %q matches %d catalog records: %s", e.Query, len(e.Candidates), strings.Join(e.Models(), ", "))
}

// Models lists the candidate model numbers in catalog order.
func (e *AmbiguousModelError) Models() []string {
	models := make([]string, len(e.Candidates))
	for i, p := range e.Candidates {
		models[i] = p.Model
	}
	return models
}

// CatalogService serves catalog searches from an in-memory snapshot.
type CatalogService interface {
	// Search returns the records matching query in catalog order.
	Search(query string) ([]model.PartSpec, error)
	// Lookup returns the single record query resolves to. Several matches yield an
	// *AmbiguousModelError unless exactly one of them has the query as its model number.
	Lookup(query string) (model.PartSpec, bool, error)
	// Import parses a CSV catalog, persists it when storage is configured and swaps the snapshot.
	Import(ctx context.Context, r io.Reader) (int, error)
	// Size returns the number of records in the snapshot.
	Size() int
	// Loaded reports whether a snapshot is available.
	Loaded() bool
}

// CatalogServiceImpl implements CatalogService. Snapshots are replaced, never mutated.
type CatalogServiceImpl struct {
	repo     repository.PartsRepositoryInterface
	snapshot atomic.Pointer[[]model.PartSpec]
}

// NewCatalogService creates a catalog service. repo may be nil when MongoDB is disabled.
func NewCatalogService(repo repository.PartsRepositoryInterface) *CatalogServiceImpl {
	return &CatalogServiceImpl{repo: repo}
}

// Replace swaps the snapshot for parts.
func (s *CatalogServiceImpl) Replace(parts []model.PartSpec) {
	snapshot := make([]model.PartSpec, len(parts))
	copy(snapshot, parts)
	s.snapshot.Store(&snapshot)
	metrics.UpdateCatalogSize(len(snapshot))
}

// LoadFile reads a CSV catalog from disk into the snapshot without persisting it.
func (s *CatalogServiceImpl) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	parts, err := LoadCatalogCSV(f)
	if err != nil {
		return fmt.Errorf("load catalog %s: %w", path, err)
	}
	s.Replace(parts)
	log.Info().Str("file", path).Int("records", len(parts)).Msg("Catalog loaded from file")
	return nil
}

// LoadFromRepository fills the snapshot from MongoDB. An empty collection leaves the
// snapshot untouched and reports false.
func (s *CatalogServiceImpl) LoadFromRepository(ctx context.Context) (bool, error) {
	if s.repo == nil {
		return false, ErrRepositoryNotConfigured
	}
	parts, err := s.repo.List(ctx)
	if err != nil {
		return false, fmt.Errorf("list catalog: %w", err)
	}
	if len(parts) == 0 {
		return false, nil
	}
	s.Replace(parts)
	log.Info().Int("records", len(parts)).Msg("Catalog loaded from database")
	return true, nil
}

// Persist writes the current snapshot to MongoDB.
func (s *CatalogServiceImpl) Persist(ctx context.Context) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	current := s.snapshot.Load()
	if current == nil {
		return ErrCatalogUnavailable
	}
	return s.repo.ReplaceAll(ctx, *current)
}

func (s *CatalogServiceImpl) Import(ctx context.Context, r io.Reader) (int, error) {
	parts, err := LoadCatalogCSV(r)
	if err != nil {
		return 0, err
	}
	if s.repo != nil {
		if err := s.repo.ReplaceAll(ctx, parts); err != nil {
			return 0, fmt.Errorf("store catalog: %w", err)
		}
	}
	s.Replace(parts)
	log.Info().Int("records", len(parts)).Bool("persisted", s.repo != nil).Msg("Catalog imported")
	return len(parts), nil
}

func (s *CatalogServiceImpl) Search(query string) ([]model.PartSpec, error) {
	current := s.snapshot.Load()
	if current == nil {
		return nil, ErrCatalogUnavailable
	}
	matches := MatchCatalog(query, *current)
	metrics.RecordCatalogSearch(len(matches))
	return matches, nil
}

func (s *CatalogServiceImpl) Lookup(query string) (model.PartSpec, bool, error) {
	matches, err := s.Search(query)
	if err != nil {
		return model.PartSpec{}, false, err
	}
	switch len(matches) {
	case 0:
		return model.PartSpec{}, false, nil
	case 1:
		return matches[0], true, nil
	}

	if exact, ok := exactModel(query, matches); ok {
		return exact, true, nil
	}
	return model.PartSpec{}, false, &AmbiguousModelError{Query: query, Candidates: matches}
}

func (s *CatalogServiceImpl) Size() int {
	if current := s.snapshot.Load(); current != nil {
		return len(*current)
	}
	return 0
}

func (s *CatalogServiceImpl) Loaded() bool {
	return s.snapshot.Load() != nil
}

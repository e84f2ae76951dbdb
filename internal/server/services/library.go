package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/playhub-library/internal/common"
	"github.com/dmitrijs2005/playhub-library/internal/dbx"
	"github.com/dmitrijs2005/playhub-library/internal/logging"
	"github.com/dmitrijs2005/playhub-library/internal/metrics"
	sc "github.com/dmitrijs2005/playhub-library/internal/server/config"
	"github.com/dmitrijs2005/playhub-library/internal/server/models"
	"github.com/dmitrijs2005/playhub-library/internal/server/repositories/repomanager"
)

// LibraryService holds the library use cases on top of the repository.
type LibraryService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	logger      logging.Logger
	metrics     metrics.MetricsCollector
}

func NewLibraryService(db dbx.DBTX, repomanager repomanager.RepositoryManager, config *sc.Config,
	logger logging.Logger, metrics metrics.MetricsCollector) *LibraryService {
	return &LibraryService{
		db:          db,
		repomanager: repomanager,
		config:      config,
		logger:      logger,
		metrics:     metrics,
	}
}

// UpdateEntry upserts the user's status for a game and returns the stored
// entry. A store result without a user id is reported as common.ErrEmptyResult.
func (s *LibraryService) UpdateEntry(ctx context.Context, userID, gameID string, status models.GameStatus) (*models.LibraryEntry, error) {
	repo := s.repomanager.Library(s.db)

	start := time.Now()
	entry, err := repo.Upsert(ctx, userID, gameID, status)
	s.metrics.RecordRepositoryCall(metrics.OpUpsert, time.Since(start), err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrEmptyResult
	}
	if err != nil {
		s.logger.Error(ctx, "library entry upsert failed",
			common.UserIDLogKey, userID, common.GameIDLogKey, gameID, "error", err)
		return nil, fmt.Errorf("error updating library entry: %w", err)
	}

	if entry.IsEmpty() {
		s.logger.Warn(ctx, "library entry upsert returned empty result",
			common.UserIDLogKey, userID, common.GameIDLogKey, gameID)
		return nil, common.ErrEmptyResult
	}

	return entry, nil
}

// PageLimit applies the paging policy: 0 selects the default page size and
// anything above MaxPageSize is capped.
func (s *LibraryService) PageLimit(limit int32) int32 {
	if limit == 0 {
		return s.config.DefaultPageSize
	}
	if limit > s.config.MaxPageSize {
		return s.config.MaxPageSize
	}
	return limit
}

// GetLibrary returns a window of the user's entries, most recently updated
// first. An unspecified status returns entries of every status.
func (s *LibraryService) GetLibrary(ctx context.Context, userID string, status models.GameStatus, limit, offset int32) ([]*models.LibraryEntry, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must not be negative", common.ErrorValidation)
	}

	repo := s.repomanager.Library(s.db)

	start := time.Now()
	entries, err := repo.List(ctx, userID, status, s.PageLimit(limit), offset)
	s.metrics.RecordRepositoryCall(metrics.OpList, time.Since(start), err)

	if err != nil {
		s.logger.Error(ctx, "library entries select failed", common.UserIDLogKey, userID, "error", err)
		return nil, fmt.Errorf("error getting library: %w", err)
	}

	return entries, nil
}

// GetStats returns the number of entries in the user's library.
func (s *LibraryService) GetStats(ctx context.Context, userID string) (int32, error) {
	repo := s.repomanager.Library(s.db)

	start := time.Now()
	count, err := repo.Count(ctx, userID)
	s.metrics.RecordRepositoryCall(metrics.OpCount, time.Since(start), err)

	if err != nil {
		s.logger.Error(ctx, "library entries count failed", common.UserIDLogKey, userID, "error", err)
		return 0, fmt.Errorf("error getting library stats: %w", err)
	}

	return count, nil
}

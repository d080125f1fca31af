package command

import (
	"context"
	"errors"

	"github.com/alem-hub/cgpa-tracker/internal/domain/shared"
	"github.com/alem-hub/cgpa-tracker/internal/domain/transcript"
	"github.com/alem-hub/cgpa-tracker/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// LOAD TRANSCRIPT COMMAND
// Replaces in-memory state with the persisted semester/course tree.
//
// State rules:
//   - no data file yet: in-memory state stays untouched;
//   - file parsed cleanly: existing semesters are replaced unconditionally;
//   - corrupt file: ALL state is discarded, including what was held before
//     the load started, so no half-loaded tree ever survives.
// ══════════════════════════════════════════════════════════════════════════════

// LoadTranscriptResult contains the result of loading the transcript.
type LoadTranscriptResult struct {
	// SemesterCount is the number of semesters after the load.
	SemesterCount int
}

// LoadTranscriptHandler handles loading the transcript.
type LoadTranscriptHandler struct {
	transcript *transcript.Transcript
	repo       transcript.Repository
	cache      CacheInvalidator
	log        *logger.Logger
}

// NewLoadTranscriptHandler creates a new LoadTranscriptHandler.
// The cache invalidator is optional.
func NewLoadTranscriptHandler(t *transcript.Transcript, repo transcript.Repository, cache CacheInvalidator, log *logger.Logger) *LoadTranscriptHandler {
	if log == nil {
		log = logger.Default()
	}
	return &LoadTranscriptHandler{
		transcript: t,
		repo:       repo,
		cache:      cache,
		log:        log.With(logger.Component("command"), logger.Operation("load_transcript")),
	}
}

// Handle loads persisted state into the transcript.
func (h *LoadTranscriptHandler) Handle(ctx context.Context) (*LoadTranscriptResult, error) {
	semesters, err := h.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNoData) {
			// Nothing persisted yet: existing state stays as it was.
			h.log.Debug("no saved data found")
			return nil, err
		}

		// Corrupt or unreadable file: reset to empty so no partial state
		// survives the failed load.
		h.transcript.Clear()
		if h.cache != nil {
			h.cache.Invalidate(h.transcript.ID())
		}
		h.log.Error("load failed, state reset", logger.Err(err))
		return nil, err
	}

	h.transcript.Replace(semesters)
	if h.cache != nil {
		h.cache.Invalidate(h.transcript.ID())
	}

	result := &LoadTranscriptResult{SemesterCount: h.transcript.SemesterCount()}
	h.log.Debug("transcript loaded", logger.Int("semesters", result.SemesterCount))
	return result, nil
}

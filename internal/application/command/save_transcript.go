package command

import (
	"context"

	"github.com/alem-hub/cgpa-tracker/internal/domain/transcript"
	"github.com/alem-hub/cgpa-tracker/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// SAVE TRANSCRIPT COMMAND
// Persists the whole semester/course tree through the repository.
// A failure is reported to the caller and never crashes the process.
// ══════════════════════════════════════════════════════════════════════════════

// SaveTranscriptHandler handles saving the transcript.
type SaveTranscriptHandler struct {
	transcript *transcript.Transcript
	repo       transcript.Repository
	log        *logger.Logger
}

// NewSaveTranscriptHandler creates a new SaveTranscriptHandler.
func NewSaveTranscriptHandler(t *transcript.Transcript, repo transcript.Repository, log *logger.Logger) *SaveTranscriptHandler {
	if log == nil {
		log = logger.Default()
	}
	return &SaveTranscriptHandler{
		transcript: t,
		repo:       repo,
		log:        log.With(logger.Component("command"), logger.Operation("save_transcript")),
	}
}

// Handle writes the current state to storage, replacing prior content.
func (h *SaveTranscriptHandler) Handle(ctx context.Context) error {
	if err := h.repo.Save(ctx, h.transcript); err != nil {
		h.log.Error("save failed", logger.Err(err))
		return err
	}

	h.log.Debug("transcript saved", logger.Int("semesters", h.transcript.SemesterCount()))
	return nil
}

// Package command contains write operations (CQRS - Commands).
// Commands are responsible for changing the state of the transcript.
package command

import (
	"context"

	"github.com/alem-hub/cgpa-tracker/internal/domain/shared"
	"github.com/alem-hub/cgpa-tracker/internal/domain/transcript"
	"github.com/alem-hub/cgpa-tracker/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD SEMESTER COMMAND
// Appends one fully collected semester to the transcript. Semesters are
// add-only: once appended they are never removed or mutated for the
// lifetime of the session.
// ══════════════════════════════════════════════════════════════════════════════

// AddSemesterCommand contains the courses of the semester to append.
type AddSemesterCommand struct {
	// Courses are the (grade, credit) records in entry order.
	Courses []transcript.Course
}

// Validate validates the command. This is the input-time boundary: courses
// appended through it are range-checked, while direct aggregate construction
// stays unvalidated.
func (c AddSemesterCommand) Validate() error {
	if len(c.Courses) == 0 {
		return shared.ErrEmptySemester
	}
	for _, course := range c.Courses {
		if !transcript.Grade(course.Grade).IsValid() {
			return shared.ErrInvalidGrade
		}
		if !transcript.Credit(course.Credit).IsValid() {
			return shared.ErrInvalidCredit
		}
	}
	return nil
}

// AddSemesterResult contains the result of appending a semester.
type AddSemesterResult struct {
	// SemesterIndex is the 1-based position of the new semester.
	SemesterIndex int

	// GPA is the weighted average of the new semester.
	GPA float64
}

// AddSemesterHandler handles AddSemesterCommand.
type AddSemesterHandler struct {
	transcript *transcript.Transcript
	cache      CacheInvalidator
	log        *logger.Logger
}

// CacheInvalidator drops cached projections after a mutation.
type CacheInvalidator interface {
	Invalidate(transcriptID string)
}

// NewAddSemesterHandler creates a new AddSemesterHandler.
// The cache invalidator is optional.
func NewAddSemesterHandler(t *transcript.Transcript, cache CacheInvalidator, log *logger.Logger) *AddSemesterHandler {
	if log == nil {
		log = logger.Default()
	}
	return &AddSemesterHandler{
		transcript: t,
		cache:      cache,
		log:        log.With(logger.Component("command"), logger.Operation("add_semester")),
	}
}

// Handle appends the semester. It never fails once the command validates.
func (h *AddSemesterHandler) Handle(_ context.Context, cmd AddSemesterCommand) (*AddSemesterResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	sem := transcript.NewSemester()
	for _, c := range cmd.Courses {
		sem.AddCourse(c.Grade, c.Credit)
	}
	h.transcript.AddSemester(sem)

	if h.cache != nil {
		h.cache.Invalidate(h.transcript.ID())
	}

	result := &AddSemesterResult{
		SemesterIndex: h.transcript.SemesterCount(),
		GPA:           sem.GPA(),
	}

	h.log.Debug("semester added",
		logger.SemesterIndex(result.SemesterIndex),
		logger.CourseCount(sem.CourseCount()),
		logger.GPAValue(result.GPA),
	)
	return result, nil
}

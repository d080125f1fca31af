// Package file implements the plain-text persistence layer for CGPA Tracker.
package file

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"

	"github.com/alem-hub/cgpa-tracker/internal/domain/shared"
	"github.com/alem-hub/cgpa-tracker/internal/domain/transcript"
	"github.com/alem-hub/cgpa-tracker/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// TRANSCRIPT REPOSITORY IMPLEMENTATION
//
// Line-oriented text format, whitespace-separated tokens:
//
//	<courseCount>
//	<grade> <credit>      (courseCount times)
//	<courseCount>
//	...
//
// No header, no versioning, no checksum. An empty file is a valid transcript
// with zero semesters.
// ══════════════════════════════════════════════════════════════════════════════

// TranscriptRepository implements transcript.Repository on a flat text file.
type TranscriptRepository struct {
	path string
	log  *logger.Logger
}

// NewTranscriptRepository creates a repository writing to the given path.
func NewTranscriptRepository(path string, log *logger.Logger) *TranscriptRepository {
	if log == nil {
		log = logger.Default()
	}
	return &TranscriptRepository{
		path: path,
		log:  log.With(logger.Component("file_repository"), logger.DataPath(path)),
	}
}

// Path returns the data file path.
func (r *TranscriptRepository) Path() string {
	return r.path
}

// Save writes every semester in order, truncating any existing content.
// Unlike the save path of older revisions, write and close results are
// checked: a failure after a successful open surfaces as ErrWriteFailed.
func (r *TranscriptRepository) Save(_ context.Context, t *transcript.Transcript) error {
	f, err := os.Create(r.path)
	if err != nil {
		return shared.WrapError("storage", "Save", shared.ErrFileUnavailable,
			"failed to open file for saving", err)
	}

	writeErr := r.writeTranscript(f, t)

	closeErr := f.Close()
	if writeErr == nil && closeErr != nil {
		writeErr = shared.WrapError("storage", "Save", shared.ErrWriteFailed,
			"failed to write data file", closeErr)
	}
	if writeErr != nil {
		return writeErr
	}

	r.log.Debug("transcript saved", logger.Int("semesters", t.SemesterCount()))
	return nil
}

// writeTranscript writes every semester to w. Any write or flush failure
// surfaces as ErrWriteFailed.
func (r *TranscriptRepository) writeTranscript(w io.Writer, t *transcript.Transcript) error {
	bw := bufio.NewWriter(w)
	for _, sem := range t.Semesters() {
		if _, err := bw.WriteString(strconv.Itoa(sem.CourseCount()) + "\n"); err != nil {
			return shared.WrapError("storage", "Save", shared.ErrWriteFailed,
				"failed to write data file", err)
		}
		for _, c := range sem.Courses() {
			line := formatFloat(c.Grade) + " " + formatFloat(c.Credit) + "\n"
			if _, err := bw.WriteString(line); err != nil {
				return shared.WrapError("storage", "Save", shared.ErrWriteFailed,
					"failed to write data file", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return shared.WrapError("storage", "Save", shared.ErrWriteFailed,
			"failed to write data file", err)
	}
	return nil
}

// Load reads every semester from the data file.
//
// A missing file yields ErrNoData. Reaching end of input while expecting a
// fresh course count is the normal end of the loop; running out of tokens
// mid-record is corruption and yields ErrCorruptData. The caller decides
// what to do with in-memory state in either case.
func (r *TranscriptRepository) Load(_ context.Context) ([]*transcript.Semester, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, shared.WrapError("storage", "Load", shared.ErrNoData,
				"no saved data found", err)
		}
		return nil, shared.WrapError("storage", "Load", shared.ErrFileUnavailable,
			"failed to open file for loading", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)

	var semesters []*transcript.Semester
	for sc.Scan() {
		count, err := strconv.Atoi(sc.Text())
		if err != nil {
			// A non-numeric token where a course count belongs stops the
			// loop, matching the historical stream-read behavior.
			break
		}

		sem := transcript.NewSemester()
		for i := 0; i < count; i++ {
			grade, ok := r.scanFloat(sc)
			if !ok {
				return nil, shared.NewDomainError("storage", "Load",
					shared.ErrCorruptData, "corrupt data in file")
			}
			credit, ok := r.scanFloat(sc)
			if !ok {
				return nil, shared.NewDomainError("storage", "Load",
					shared.ErrCorruptData, "corrupt data in file")
			}
			sem.AddCourse(grade, credit)
		}
		semesters = append(semesters, sem)
	}

	if err := sc.Err(); err != nil {
		return nil, shared.WrapError("storage", "Load", shared.ErrCorruptData,
			"failed to read data file", err)
	}

	r.log.Debug("transcript loaded", logger.Int("semesters", len(semesters)))
	return semesters, nil
}

// scanFloat reads the next token as a float64.
func (r *TranscriptRepository) scanFloat(sc *bufio.Scanner) (float64, bool) {
	if !sc.Scan() {
		return 0, false
	}
	v, err := strconv.ParseFloat(sc.Text(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// formatFloat renders a value with the shortest representation that
// round-trips exactly through ParseFloat.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

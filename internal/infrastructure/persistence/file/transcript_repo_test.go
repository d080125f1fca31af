package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/cgpa-tracker/internal/domain/shared"
	"github.com/alem-hub/cgpa-tracker/internal/domain/transcript"
)

func newTestRepo(t *testing.T) *TranscriptRepository {
	t.Helper()
	return NewTranscriptRepository(filepath.Join(t.TempDir(), "cgpa_data.txt"), nil)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tr := transcript.New()
	first := transcript.NewSemester()
	first.AddCourse(8.0, 4.0)
	first.AddCourse(6.0, 2.0)
	tr.AddSemester(first)

	second := transcript.NewSemester()
	second.AddCourse(7.25, 1.5)
	second.AddCourse(9.999, 0.5)
	second.AddCourse(10.0, 6.0)
	tr.AddSemester(second)

	require.NoError(t, repo.Save(ctx, tr))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, first.Courses(), loaded[0].Courses())
	assert.Equal(t, second.Courses(), loaded[1].Courses())
}

func TestLoad_MissingFileReturnsNoData(t *testing.T) {
	repo := newTestRepo(t)

	loaded, err := repo.Load(context.Background())
	assert.Nil(t, loaded)
	assert.True(t, shared.IsNoData(err))
}

func TestLoad_TruncatedMidRecordIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgpa_data.txt")
	// Declares two courses but provides one and a half records.
	require.NoError(t, os.WriteFile(path, []byte("2\n8 4\n6\n"), 0644))

	repo := NewTranscriptRepository(path, nil)
	loaded, err := repo.Load(context.Background())

	assert.Nil(t, loaded)
	assert.True(t, shared.IsCorruptData(err))
}

func TestLoad_CountExceedsAvailablePairsIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgpa_data.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\n8 4\n"), 0644))

	repo := NewTranscriptRepository(path, nil)
	_, err := repo.Load(context.Background())

	assert.True(t, shared.IsCorruptData(err))
}

func TestLoad_EmptyFileYieldsZeroSemesters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgpa_data.txt")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	repo := NewTranscriptRepository(path, nil)
	loaded, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSave_ZeroSemestersProducesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgpa_data.txt")
	repo := NewTranscriptRepository(path, nil)

	require.NoError(t, repo.Save(context.Background(), transcript.New()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSave_TruncatesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgpa_data.txt")
	require.NoError(t, os.WriteFile(path, []byte("9\nstale content\n"), 0644))

	repo := NewTranscriptRepository(path, nil)
	tr := transcript.New()
	sem := transcript.NewSemester()
	sem.AddCourse(5.0, 1.0)
	tr.AddSemester(sem)

	require.NoError(t, repo.Save(context.Background(), tr))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, sem.Courses(), loaded[0].Courses())
}

// failingWriter fails every write with a fixed error.
type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestSave_WriteFailureAfterOpenIsReported(t *testing.T) {
	repo := newTestRepo(t)

	tr := transcript.New()
	sem := transcript.NewSemester()
	sem.AddCourse(8.0, 4.0)
	tr.AddSemester(sem)

	diskFull := errors.New("no space left on device")
	err := repo.writeTranscript(failingWriter{err: diskFull}, tr)

	assert.ErrorIs(t, err, shared.ErrWriteFailed)
	assert.ErrorIs(t, err, diskFull)
}

func TestSave_OpenFailureIsFileUnavailable(t *testing.T) {
	// A directory path cannot be opened for writing as a file.
	repo := NewTranscriptRepository(t.TempDir(), nil)

	err := repo.Save(context.Background(), transcript.New())
	assert.ErrorIs(t, err, shared.ErrFileUnavailable)
}

func TestLoad_NonNumericCountStopsParsing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgpa_data.txt")
	// Historical stream-read behavior: a non-numeric token in count
	// position ends the loop with everything read so far.
	require.NoError(t, os.WriteFile(path, []byte("1\n8 4\ngarbage\n"), 0644))

	repo := NewTranscriptRepository(path, nil)
	loaded, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, []transcript.Course{{Grade: 8, Credit: 4}}, loaded[0].Courses())
}

func TestSaveLoad_FileFormatIsLineOriented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgpa_data.txt")
	repo := NewTranscriptRepository(path, nil)

	tr := transcript.New()
	sem := transcript.NewSemester()
	sem.AddCourse(8.0, 4.0)
	sem.AddCourse(6.0, 2.0)
	tr.AddSemester(sem)

	require.NoError(t, repo.Save(context.Background(), tr))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2\n8 4\n6 2\n", string(data))
}

package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemesterGPA_WeightedAverage(t *testing.T) {
	sem := NewSemester()
	sem.AddCourse(8.0, 4.0)
	sem.AddCourse(6.0, 2.0)

	// (8*4 + 6*2) / (4+2) = 44/6
	assert.InDelta(t, 44.0/6.0, sem.GPA(), 1e-12)
	assert.Equal(t, 2, sem.CourseCount())
}

func TestSemesterGPA_IndependentComputation(t *testing.T) {
	courses := []Course{
		{Grade: 9.5, Credit: 3},
		{Grade: 7.25, Credit: 1.5},
		{Grade: 4.0, Credit: 6},
		{Grade: 10.0, Credit: 0.5},
	}

	sem := NewSemester()
	var points, credits float64
	for _, c := range courses {
		sem.AddCourse(c.Grade, c.Credit)
		points += c.Grade * c.Credit
		credits += c.Credit
	}

	assert.InDelta(t, points/credits, sem.GPA(), 1e-12)
}

func TestSemesterGPA_EmptyIsExactlyZero(t *testing.T) {
	sem := NewSemester()
	assert.Zero(t, sem.GPA())
}

func TestSemesterGPA_ZeroCreditsIsExactlyZero(t *testing.T) {
	// The domain does not re-validate on direct construction; an
	// all-zero-credit set silently averages to 0.0.
	sem := NewSemester()
	sem.AddCourse(8.0, 0.0)
	sem.AddCourse(9.0, 0.0)

	assert.Equal(t, 0.0, sem.GPA())
}

func TestTranscriptCGPA_FlattensAcrossSemesters(t *testing.T) {
	tr := New()

	first := NewSemester()
	first.AddCourse(8.0, 4.0)
	first.AddCourse(6.0, 2.0)
	tr.AddSemester(first)

	second := NewSemester()
	second.AddCourse(10.0, 2.0)
	tr.AddSemester(second)

	// Single weighted average over the flat course list,
	// not an average of semester GPAs.
	expected := (8.0*4.0 + 6.0*2.0 + 10.0*2.0) / (4.0 + 2.0 + 2.0)
	assert.InDelta(t, expected, tr.CGPA(), 1e-12)

	averageOfGPAs := (first.GPA() + second.GPA()) / 2
	assert.NotEqual(t, averageOfGPAs, tr.CGPA())
}

func TestTranscriptCGPA_SingleSemesterMatchesGPA(t *testing.T) {
	tr := New()
	sem := NewSemester()
	sem.AddCourse(8.0, 4.0)
	sem.AddCourse(6.0, 2.0)
	tr.AddSemester(sem)

	assert.Equal(t, sem.GPA(), tr.CGPA())
}

func TestTranscriptCGPA_EmptyIsExactlyZero(t *testing.T) {
	assert.Zero(t, New().CGPA())
}

func TestTranscript_ReplaceAndClear(t *testing.T) {
	tr := New()
	sem := NewSemester()
	sem.AddCourse(5.0, 3.0)
	tr.AddSemester(sem)
	assert.Equal(t, 1, tr.SemesterCount())

	other := NewSemester()
	other.AddCourse(9.0, 2.0)
	tr.Replace([]*Semester{other, other})
	assert.Equal(t, 2, tr.SemesterCount())

	tr.Clear()
	assert.Zero(t, tr.SemesterCount())
	assert.Zero(t, tr.CGPA())
}

func TestTranscript_HasIdentity(t *testing.T) {
	a := New()
	b := New()

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestGradeAndCreditValidation(t *testing.T) {
	assert.True(t, Grade(0).IsValid())
	assert.True(t, Grade(10).IsValid())
	assert.False(t, Grade(-0.5).IsValid())
	assert.False(t, Grade(10.5).IsValid())

	assert.True(t, Credit(0.01).IsValid())
	assert.False(t, Credit(0).IsValid())
	assert.False(t, Credit(-1).IsValid())
}

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/cgpa-tracker/internal/application/query"
)

func TestReportCache_SetGetInvalidate(t *testing.T) {
	c := NewReportCache(time.Minute)
	report := &query.Report{TranscriptID: "t1", CGPA: 7.5}

	_, ok := c.Get("t1")
	assert.False(t, ok)

	c.Set("t1", report)

	got, ok := c.Get("t1")
	require.True(t, ok)
	assert.Same(t, report, got)

	c.Invalidate("t1")
	_, ok = c.Get("t1")
	assert.False(t, ok)
}

func TestReportCache_EntriesExpire(t *testing.T) {
	c := NewReportCache(10 * time.Millisecond)
	c.Set("t1", &query.Report{TranscriptID: "t1"})

	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get("t1")
	assert.False(t, ok)
}

func TestReportCache_KeysAreIndependent(t *testing.T) {
	c := NewReportCache(time.Minute)
	c.Set("a", &query.Report{TranscriptID: "a"})
	c.Set("b", &query.Report{TranscriptID: "b"})

	c.Invalidate("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
	got, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, "b", got.TranscriptID)
}

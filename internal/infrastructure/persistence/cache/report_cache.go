// Package cache implements in-process caching of rendered projections.
// It mirrors the cached read-model layer of the larger services, but on an
// in-process store: this program's only external interface is one flat file,
// so a networked cache is off the table.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/alem-hub/cgpa-tracker/internal/application/query"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPORT CACHE
// ══════════════════════════════════════════════════════════════════════════════

// ReportCache caches rendered reports keyed by transcript ID.
// Entries expire after the configured TTL and are dropped eagerly
// whenever the transcript mutates.
type ReportCache struct {
	store *gocache.Cache
}

// NewReportCache creates a report cache with the given TTL.
func NewReportCache(ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ReportCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

// Get returns the cached report for the transcript, if still valid.
func (c *ReportCache) Get(transcriptID string) (*query.Report, bool) {
	v, ok := c.store.Get(transcriptID)
	if !ok {
		return nil, false
	}
	report, ok := v.(*query.Report)
	return report, ok
}

// Set stores the report for the transcript.
func (c *ReportCache) Set(transcriptID string, report *query.Report) {
	c.store.SetDefault(transcriptID, report)
}

// Invalidate drops the cached report after a mutation.
func (c *ReportCache) Invalidate(transcriptID string) {
	c.store.Delete(transcriptID)
}

// internal/snapshot/snapshot.go
//
// TTL-guarded in-memory copy of the content set.
//
// Context
// -------
// Every list and detail request reads from one immutable Snapshot value:
// the full insight slice, the flattened practice and mistake slices, and
// the derived filter option lists.  The cache reloads from the store when
// the TTL lapses, funnelling concurrent reloads through singleflight so a
// stampede of requests after expiry costs one database read.  Reads are
// lock-free via atomic.Pointer; a reload swaps the whole value.
//
// Consumers must treat a Snapshot as read-only.  The pipeline only ever
// derives new slices from it, so handing the same backing arrays to many
// requests is safe.

package snapshot

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/vibecodingtips/vibetips/internal/content"
	"github.com/vibecodingtips/vibetips/internal/metrics"
)

// DefaultTTL matches the 24-hour revalidation window of the rendered
// pages.
const DefaultTTL = 24 * time.Hour

// Source is the read operation the cache refreshes from.  Satisfied by
// *store.Store.
type Source interface {
	ListInsights(ctx context.Context) ([]content.Insight, error)
}

// Snapshot is one immutable view of the content set.
type Snapshot struct {
	Insights  []content.Insight
	Practices []content.Practice
	Mistakes  []content.Practice
	Options   content.FilterOptions
	LoadedAt  time.Time
}

// Cache lazily loads and periodically refreshes the Snapshot.
type Cache struct {
	src     Source
	ttl     time.Duration
	current atomic.Pointer[Snapshot]
	sfg     singleflight.Group
}

// New constructs a Cache; the first Get triggers the initial load.
func New(src Source, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{src: src, ttl: ttl}
}

// Get returns the current snapshot, reloading it when stale or absent.
// A failed refresh keeps serving the previous snapshot rather than taking
// the site down; only the very first load can fail hard.
func (c *Cache) Get(ctx context.Context) (*Snapshot, error) {
	if snap := c.current.Load(); snap != nil && time.Since(snap.LoadedAt) < c.ttl {
		return snap, nil
	}

	v, err, _ := c.sfg.Do("snapshot", func() (interface{}, error) {
		// Double-check after the singleflight barrier.
		if snap := c.current.Load(); snap != nil && time.Since(snap.LoadedAt) < c.ttl {
			return snap, nil
		}
		snap, err := c.load(ctx)
		if err != nil {
			metrics.SnapshotLoadErrorsTotal.Inc()
			if stale := c.current.Load(); stale != nil {
				zap.L().Warn("snapshot refresh failed, serving stale",
					zap.Error(err),
					zap.Time("loaded_at", stale.LoadedAt))
				return stale, nil
			}
			return nil, err
		}
		c.current.Store(snap)
		metrics.SnapshotLoadTotal.Inc()
		metrics.SnapshotInsights.Set(float64(len(snap.Insights)))
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Invalidate forces the next Get to reload.
func (c *Cache) Invalidate() { c.current.Store(nil) }

func (c *Cache) load(ctx context.Context) (*Snapshot, error) {
	insights, err := c.src.ListInsights(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Insights:  insights,
		Practices: content.FlattenPractices(insights, content.BestPractices),
		Mistakes:  content.FlattenPractices(insights, content.WhatNotToDo),
		Options:   content.OptionsFor(insights),
		LoadedAt:  time.Now(),
	}

	zap.L().Info("snapshot loaded",
		zap.Int("insights", len(snap.Insights)),
		zap.Int("practices", len(snap.Practices)),
		zap.Int("mistakes", len(snap.Mistakes)))
	return snap, nil
}

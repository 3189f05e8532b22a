package layout

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Revisioned is satisfied by widgets whose fit results are safe to
// cache: the result may only change when the revision does.
type Revisioned interface {
	Revision() uint64
}

// fitCacheSize bounds the memoized fit results. Keys include the
// widget revision, so stale entries age out of the LRU instead of
// needing an explicit purge.
const fitCacheSize = 512

type fitKey struct {
	widget Widget
	rev    uint64
	width  int
	height int
}

type fitSize struct {
	w, h int
}

// Context carries per-tree render state: the fit-query cache and its
// counters. Create one per surface and reuse it across renders so the
// cache survives between frames.
type Context struct {
	cache  *lru.Cache[fitKey, fitSize]
	hits   uint64
	misses uint64
}

// NewContext returns a Context with an empty fit cache.
func NewContext() *Context {
	cache, _ := lru.New[fitKey, fitSize](fitCacheSize)
	return &Context{cache: cache}
}

// FitWidget queries w's preferred size under the given constraints,
// applying the collaborator rules every container relies on:
//
//   - nil and hidden widgets fit to (0, 0)
//   - negative constraints clamp to 0 before the query
//   - results clamp into [0, constraint] on each axis
//
// Leaf fits are memoized by (widget, revision, constraints). Container
// fits always recompute: a container's revision does not move when a
// descendant changes, so caching them would serve stale sums.
func (c *Context) FitWidget(w Widget, width, height int) (int, int) {
	if w == nil {
		return 0, 0
	}
	if v, ok := w.(interface{ Visible() bool }); ok && !v.Visible() {
		return 0, 0
	}
	width, height = sanitizeBox(width, height)

	rev, cacheable := c.fitCacheable(w)
	var key fitKey
	if cacheable {
		key = fitKey{widget: w, rev: rev, width: width, height: height}
		if s, ok := c.cache.Get(key); ok {
			c.hits++
			return s.w, s.h
		}
		c.misses++
	}

	fw, fh := w.Fit(c, width, height)
	fw = clampExtent(fw, width)
	fh = clampExtent(fh, height)
	if cacheable {
		c.cache.Add(key, fitSize{w: fw, h: fh})
	}
	return fw, fh
}

// LayoutWidget runs a container's layout pass after the same input
// sanitation as FitWidget. Hidden widgets and non-containers yield
// nothing.
func (c *Context) LayoutWidget(w Widget, width, height int) []Placement {
	ct, ok := w.(Container)
	if !ok {
		return nil
	}
	if v, ok := w.(interface{ Visible() bool }); ok && !v.Visible() {
		return nil
	}
	width, height = sanitizeBox(width, height)
	return ct.Layout(c, width, height)
}

// Metrics reports fit cache behavior for the debug monitor.
func (c *Context) Metrics() (hits, misses uint64, entries int) {
	return c.hits, c.misses, c.cache.Len()
}

func (c *Context) fitCacheable(w Widget) (uint64, bool) {
	if _, isContainer := w.(Container); isContainer {
		return 0, false
	}
	r, ok := w.(Revisioned)
	if !ok {
		return 0, false
	}
	return r.Revision(), true
}

func clampExtent(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}

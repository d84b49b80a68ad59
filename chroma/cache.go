package chroma

import "github.com/fwojciec/editcore"

type cacheKey struct {
	line string
	num  int
}

// lineCache is a bounded cache of computed line spans. Eviction is by
// insertion order: when an insertion would exceed the bound, the oldest
// entries leave first.
type lineCache struct {
	max     int
	entries map[cacheKey][]editcore.Span
	order   []cacheKey
}

func newLineCache(max int) *lineCache {
	return &lineCache{
		max:     max,
		entries: make(map[cacheKey][]editcore.Span),
	}
}

// get returns a copy of the cached spans, so a caller mutating the result
// cannot corrupt the entry for later hits.
func (c *lineCache) get(line string, num int) ([]editcore.Span, bool) {
	spans, ok := c.entries[cacheKey{line: line, num: num}]
	if !ok {
		return nil, false
	}
	out := make([]editcore.Span, len(spans))
	copy(out, spans)
	return out, true
}

// put stores its own copy of spans, for the same reason get copies: the
// caller keeps a reference to the slice it passed in.
func (c *lineCache) put(line string, num int, spans []editcore.Span) {
	key := cacheKey{line: line, num: num}
	stored := make([]editcore.Span, len(spans))
	copy(stored, spans)
	if _, ok := c.entries[key]; ok {
		c.entries[key] = stored
		return
	}
	for len(c.entries) >= c.max && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = stored
	c.order = append(c.order, key)
}

func (c *lineCache) clear() {
	c.entries = make(map[cacheKey][]editcore.Span)
	c.order = nil
}

func (c *lineCache) len() int {
	return len(c.entries)
}

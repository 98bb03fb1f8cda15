package compute

import "sort"

// Entry is one value and the number of times it was seen.
type Entry struct {
	Value string
	Count int
}

// Counter is a frequency table that remembers first-seen order.
type Counter struct {
	index   map[string]int
	entries []Entry
}

// NewCounter builds a Counter from values in a single pass.
func NewCounter(values []string) *Counter {
	c := &Counter{index: make(map[string]int)}
	for _, v := range values {
		c.Add(v)
	}
	return c
}

// Add counts one occurrence of v.
func (c *Counter) Add(v string) {
	if i, ok := c.index[v]; ok {
		c.entries[i].Count++
		return
	}
	c.index[v] = len(c.entries)
	c.entries = append(c.entries, Entry{Value: v, Count: 1})
}

// Get returns the count for v, 0 if unseen.
func (c *Counter) Get(v string) int {
	if i, ok := c.index[v]; ok {
		return c.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct values.
func (c *Counter) Len() int { return len(c.entries) }

// Sorted returns entries by descending count; equal counts keep first-seen order.
func (c *Counter) Sorted() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Mode returns the most frequent value. Ties go to the value seen first.
func (c *Counter) Mode() (Entry, error) {
	if len(c.entries) == 0 {
		return Entry{}, ErrEmptySubset
	}
	best := c.entries[0]
	for _, e := range c.entries[1:] {
		if e.Count > best.Count {
			best = e
		}
	}
	return best, nil
}

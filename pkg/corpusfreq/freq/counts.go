// Package freq counts words and n-grams and ranks them by frequency.
package freq

import (
	"sort"
	"strings"
)

// keySep joins n-gram tokens into a map key. Normalized tokens never contain
// control characters, so the key is unambiguous.
const keySep = "\x1f"

// Entry is one ranked item: a word (one token) or an n-gram (n tokens)
type Entry struct {
	Tokens []string
	Count  int
}

// Label joins the entry's tokens with single spaces
func (e Entry) Label() string {
	return strings.Join(e.Tokens, " ")
}

// Counter maintains occurrence counts and remembers the order in which items
// were first seen
type Counter struct {
	counts map[string]int
	order  []string
	tokens map[string][]string
	total  int
}

// NewCounter creates an empty counter
func NewCounter() *Counter {
	return &Counter{
		counts: make(map[string]int),
		tokens: make(map[string][]string),
	}
}

// Add counts one occurrence of the item made of the given tokens
func (c *Counter) Add(tokens ...string) {
	key := strings.Join(tokens, keySep)
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
		c.tokens[key] = append([]string(nil), tokens...)
	}
	c.counts[key]++
	c.total++
}

// Count returns the occurrences of the item made of the given tokens
func (c *Counter) Count(tokens ...string) int {
	return c.counts[strings.Join(tokens, keySep)]
}

// Len returns the number of distinct items
func (c *Counter) Len() int {
	return len(c.order)
}

// Total returns the number of occurrences added
func (c *Counter) Total() int {
	return c.total
}

// MostCommon returns the k most frequent items, highest count first. Ties keep
// first-seen order. k <= 0 returns every item. The returned entries own their
// token slices.
func (c *Counter) MostCommon(k int) []Entry {
	entries := make([]Entry, len(c.order))
	for i, key := range c.order {
		tokens := append([]string(nil), c.tokens[key]...)
		entries[i] = Entry{Tokens: tokens, Count: c.counts[key]}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if k > 0 && len(entries) > k {
		entries = entries[:k]
	}
	return entries
}

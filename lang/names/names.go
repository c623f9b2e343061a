// Package names interns identifier text.
//
// A [Table] stores each distinct identifier once, in first-seen order, and
// hands out a stable integer id for it. The zero value is ready to use.
package names

import (
	"iter"

	"github.com/tidwall/btree"
)

// Table is an identifier interning table.
type Table struct {
	list  []string
	index btree.Map[string, int]
}

// New returns a table pre-sized for n identifiers.
func New(n int) *Table {
	return &Table{list: make([]string, 0, n)}
}

// Push interns text and returns its id. Pushing the same text again returns
// the id assigned the first time.
func (t *Table) Push(text string) int {
	if id, ok := t.index.Get(text); ok {
		return id
	}

	id := len(t.list)
	t.list = append(t.list, text)
	t.index.Set(text, id)

	return id
}

// Lookup returns the id of text if it was pushed.
func (t *Table) Lookup(text string) (int, bool) {
	return t.index.Get(text)
}

// At returns the text with the given id, or "" if id is out of range.
func (t *Table) At(id int) string {
	if id < 0 || id >= len(t.list) {
		return ""
	}

	return t.list[id]
}

// Len returns the number of distinct identifiers.
func (t *Table) Len() int { return len(t.list) }

// All returns an iterator over (id, text) pairs in insertion order.
func (t *Table) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for id, text := range t.list {
			if !yield(id, text) {
				return
			}
		}
	}
}

// Sorted returns an iterator over (text, id) pairs in lexical order.
func (t *Table) Sorted() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		it := t.index.Iter()
		for ok := it.First(); ok; ok = it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Prefixed returns the identifiers starting with prefix, in lexical order.
func (t *Table) Prefixed(prefix string) []string {
	var out []string

	it := t.index.Iter()
	for ok := it.Seek(prefix); ok; ok = it.Next() {
		key := it.Key()
		if len(key) < len(prefix) || key[:len(prefix)] != prefix {
			break
		}

		out = append(out, key)
	}

	return out
}

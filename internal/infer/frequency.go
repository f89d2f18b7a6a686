package infer

import "github.com/handiism/tagtidy/internal/model"

// Entry is one value of a FrequencyTable with its occurrence count.
type Entry struct {
	Value string
	Count int
}

// FrequencyTable counts occurrences of string values and remembers the
// order in which each value was first seen.
//
// Values are grouped by exact string equality. Top breaks ties in favour of
// the value seen first, so feeding tracks in file-name order gives a
// reproducible result.
type FrequencyTable struct {
	order  []string
	counts map[string]int
}

// NewFrequencyTable creates an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Add counts one occurrence of value.
func (f *FrequencyTable) Add(value string) {
	if _, ok := f.counts[value]; !ok {
		f.order = append(f.order, value)
	}
	f.counts[value]++
}

// Count returns the number of occurrences of value.
func (f *FrequencyTable) Count(value string) int {
	return f.counts[value]
}

// Len returns the number of distinct values.
func (f *FrequencyTable) Len() int {
	return len(f.order)
}

// Top returns the most frequent value and its count. ok is false when the
// table is empty.
func (f *FrequencyTable) Top() (value string, count int, ok bool) {
	for _, v := range f.order {
		if c := f.counts[v]; c > count {
			value, count, ok = v, c, true
		}
	}
	return value, count, ok
}

// Entries returns every value with its count in first-seen order.
func (f *FrequencyTable) Entries() []Entry {
	entries := make([]Entry, 0, len(f.order))
	for _, v := range f.order {
		entries = append(entries, Entry{Value: v, Count: f.counts[v]})
	}
	return entries
}

// Tables builds the artist and album frequency tables of tracks, in the
// order given.
func Tables(tracks []*model.Track) (artists, albums *FrequencyTable) {
	artists, albums = NewFrequencyTable(), NewFrequencyTable()
	for _, t := range tracks {
		artists.Add(t.Artist)
		albums.Add(t.Album)
	}
	return artists, albums
}

// Package suspects maps clue text to the suspect it incriminates using a
// hash table with chained buckets.
package suspects

import (
	"slices"

	"github.com/EstruturaDados/detective-quest-OruamC/internal/models"
)

// DefaultBuckets is the bucket count used when none is given.
const DefaultBuckets = 101

type association struct {
	key   string
	value string
	next  *association
}

// Index is a fixed-size chained hash table from clue to suspect. Keys are
// compared byte-wise, so lookups are case-sensitive. The zero value is an
// empty index with DefaultBuckets buckets, allocated on first insert.
type Index struct {
	buckets []*association
	size    int
}

// New creates an empty index with bucketCount buckets. A non-positive count
// falls back to DefaultBuckets.
func New(bucketCount int) *Index {
	if bucketCount <= 0 {
		bucketCount = DefaultBuckets
	}
	return &Index{buckets: make([]*association, bucketCount)}
}

// FromRules builds an index holding every rule. Later rules win over earlier
// ones with the same clue.
func FromRules(rules []models.Rule, bucketCount int) *Index {
	ix := New(bucketCount)
	for _, r := range rules {
		ix.Insert(r.Clue, r.Suspect)
	}
	return ix
}

// Hash is the djb2 string hash: h = h*33 + b, starting at 5381, wrapping
// at 64 bits.
func Hash(key string) uint64 {
	h := uint64(5381)
	for i := 0; i < len(key); i++ {
		h = h<<5 + h + uint64(key[i])
	}
	return h
}

func (ix *Index) bucket(key string) int {
	return int(Hash(key) % uint64(len(ix.buckets)))
}

// Insert associates key with value, replacing any previous value for key.
// Empty keys or values are ignored.
func (ix *Index) Insert(key, value string) {
	if key == "" || value == "" {
		return
	}
	if len(ix.buckets) == 0 {
		ix.buckets = make([]*association, DefaultBuckets)
	}

	b := ix.bucket(key)
	for a := ix.buckets[b]; a != nil; a = a.next {
		if a.key == key {
			a.value = value
			return
		}
	}
	ix.buckets[b] = &association{key: key, value: value, next: ix.buckets[b]}
	ix.size++
}

// Lookup returns the suspect associated with key.
func (ix *Index) Lookup(key string) (string, bool) {
	if key == "" || len(ix.buckets) == 0 {
		return "", false
	}
	for a := ix.buckets[ix.bucket(key)]; a != nil; a = a.next {
		if a.key == key {
			return a.value, true
		}
	}
	return "", false
}

// Len is the number of distinct keys.
func (ix *Index) Len() int { return ix.size }

func (ix *Index) BucketCount() int {
	if len(ix.buckets) == 0 {
		return DefaultBuckets
	}
	return len(ix.buckets)
}

// ChainLength reports how many associations share bucket i.
func (ix *Index) ChainLength(i int) int {
	if i >= len(ix.buckets) {
		return 0
	}
	n := 0
	for a := ix.buckets[i]; a != nil; a = a.next {
		n++
	}
	return n
}

// Suspects returns the distinct suspect names in the index, sorted.
func (ix *Index) Suspects() []string {
	var names []string
	for _, head := range ix.buckets {
		for a := head; a != nil; a = a.next {
			if !slices.Contains(names, a.value) {
				names = append(names, a.value)
			}
		}
	}
	slices.Sort(names)
	return names
}

package wif

import (
	"maps"
	"slices"
	"strconv"
)

// The four index kinds of a draft. They are distinct types on purpose:
// several tables are keyed by one kind and valued by another, and
// substituting a shaft index where a treadle index belongs would silently
// corrupt a draft.

// Shaft identifies a loom frame that raises warp threads.
type Shaft uint32

// Warp identifies a lengthwise thread, counted across the cloth's width.
type Warp uint32

// Weft identifies a crosswise thread, one per woven row.
type Weft uint32

// Treadle identifies a foot pedal tied to one or more shafts.
type Treadle uint32

func (s Shaft) String() string   { return strconv.FormatUint(uint64(s), 10) }
func (w Warp) String() string    { return strconv.FormatUint(uint64(w), 10) }
func (w Weft) String() string    { return strconv.FormatUint(uint64(w), 10) }
func (t Treadle) String() string { return strconv.FormatUint(uint64(t), 10) }

// Set is an unordered collection of identifiers that iterates in ascending
// order via Sorted, which keeps re-serialization deterministic.
type Set[E ~uint32] map[E]struct{}

// NewSet returns a Set holding members.
func NewSet[E ~uint32](members ...E) Set[E] {
	s := make(Set[E], len(members))
	for _, m := range members {
		s.Add(m)
	}
	return s
}

// Add inserts e.
func (s Set[E]) Add(e E) { s[e] = struct{}{} }

// Has reports whether e is a member.
func (s Set[E]) Has(e E) bool {
	_, ok := s[e]
	return ok
}

// Sorted returns the members in ascending order.
func (s Set[E]) Sorted() []E {
	return slices.Sorted(maps.Keys(s))
}

// Equal reports whether s and other have the same members.
func (s Set[E]) Equal(other Set[E]) bool {
	if len(s) != len(other) {
		return false
	}
	for e := range s {
		if !other.Has(e) {
			return false
		}
	}
	return true
}

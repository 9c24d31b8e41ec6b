package schema

// ForeignKeySet holds foreign keys without duplicates, where duplicates are
// keys that are Equal. Iteration follows insertion order.
type ForeignKeySet struct {
	buckets map[uint64][]*ForeignKey
	order   []*ForeignKey
}

// NewForeignKeySet returns an empty set.
func NewForeignKeySet() *ForeignKeySet {
	return &ForeignKeySet{buckets: make(map[uint64][]*ForeignKey)}
}

// Add inserts fk and reports whether it was new.
func (s *ForeignKeySet) Add(fk *ForeignKey) bool {
	if s.Contains(fk) {
		return false
	}
	h := fk.Hash()
	s.buckets[h] = append(s.buckets[h], fk)
	s.order = append(s.order, fk)
	return true
}

// Contains reports whether a key Equal to fk is in the set.
func (s *ForeignKeySet) Contains(fk *ForeignKey) bool {
	for _, existing := range s.buckets[fk.Hash()] {
		if existing.Equal(fk) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct keys.
func (s *ForeignKeySet) Len() int { return len(s.order) }

// List returns the keys in insertion order.
func (s *ForeignKeySet) List() []*ForeignKey {
	return append([]*ForeignKey(nil), s.order...)
}

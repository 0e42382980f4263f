package repo

import (
	errs "detective_quest/internal/errors"
)

type suspectEntry struct {
	clue    string
	suspect string
	next    *suspectEntry
}

// defaultTableSize is used when Insert meets a zero-value table.
const defaultTableSize = 10

// SuspectHashStorage maps clue text to the suspect it implicates. It is a
// fixed number of buckets with chained entries; it never resizes. The zero
// value is an empty table that gets defaultTableSize buckets on first Insert.
type SuspectHashStorage struct {
	buckets []*suspectEntry
	entries int
}

func NewSuspectHashStorage(size int) (*SuspectHashStorage, error) {
	if size <= 0 {
		return nil, errs.ErrInvalidTableSize
	}
	return &SuspectHashStorage{
		buckets: make([]*suspectEntry, size),
	}, nil
}

// djb2: hash*33 + c, starting at 5381.
func generateHash(key string) uint64 {
	var hash uint64 = 5381
	for i := 0; i < len(key); i++ {
		hash = hash*33 + uint64(key[i])
	}
	return hash
}

func (s *SuspectHashStorage) bucketIndex(key string) int {
	return int(generateHash(key) % uint64(len(s.buckets)))
}

// Insert stores the association. A clue that is already present gets its
// suspect overwritten, it is never stored twice.
func (s *SuspectHashStorage) Insert(clue, suspect string) {
	if len(s.buckets) == 0 {
		s.buckets = make([]*suspectEntry, defaultTableSize)
	}
	idx := s.bucketIndex(clue)
	for e := s.buckets[idx]; e != nil; e = e.next {
		if e.clue == clue {
			e.suspect = suspect
			return
		}
	}
	s.buckets[idx] = &suspectEntry{clue: clue, suspect: suspect, next: s.buckets[idx]}
	s.entries++
}

func (s *SuspectHashStorage) Lookup(clue string) (string, bool) {
	if len(s.buckets) == 0 {
		return "", false
	}
	for e := s.buckets[s.bucketIndex(clue)]; e != nil; e = e.next {
		if e.clue == clue {
			return e.suspect, true
		}
	}
	return "", false
}

// Teardown unlinks every chain and returns how many entries were dropped.
// The bucket array stays, so the table remains usable and empty.
func (s *SuspectHashStorage) Teardown() int {
	freed := 0
	for i, head := range s.buckets {
		for e := head; e != nil; {
			next := e.next
			e.next = nil
			e = next
			freed++
		}
		s.buckets[i] = nil
	}
	s.entries = 0
	return freed
}

func (s *SuspectHashStorage) Len() int {
	return s.entries
}

func (s *SuspectHashStorage) Size() int {
	return len(s.buckets)
}

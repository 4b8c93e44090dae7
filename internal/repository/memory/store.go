// Package memory keeps spaces and bookings in process memory. Admissions on
// one space are serialised by that space's bucket mutex.
package memory

import (
	"sync"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
)

type bucket struct {
	mu       sync.Mutex
	bookings []*domain.Booking
}

type Store struct {
	mu      sync.RWMutex
	spaces  map[string]*domain.Space
	buckets map[string]*bucket
	// booking id -> space id
	index map[string]string
}

func NewStore() *Store {
	return &Store{
		spaces:  make(map[string]*domain.Space),
		buckets: make(map[string]*bucket),
		index:   make(map[string]string),
	}
}

func (s *Store) bucket(spaceID string) *bucket {
	s.mu.RLock()
	b, ok := s.buckets[spaceID]
	s.mu.RUnlock()
	if ok {
		return b
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok = s.buckets[spaceID]; !ok {
		b = &bucket{}
		s.buckets[spaceID] = b
	}
	return b
}

func (b *bucket) count(status domain.BookingStatus) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, bk := range b.bookings {
		if bk.Status == status {
			n++
		}
	}
	return n
}

func (s *Store) allBuckets() []*bucket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*bucket, 0, len(s.buckets))
	for _, b := range s.buckets {
		out = append(out, b)
	}
	return out
}

func cloneSpace(sp *domain.Space) *domain.Space {
	c := *sp
	c.Amenities = append([]string(nil), sp.Amenities...)
	return &c
}

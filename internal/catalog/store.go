// Package catalog holds the kiosk's ordered movie collection.
package catalog

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-kiosk/internal/domain"
	appvalidator "github.com/metinatakli/cinema-kiosk/internal/validator"
)

// Store keeps movie records in insertion order. Positions are counted from the
// most recently added record, so position 0 is always the newest movie.
type Store struct {
	mu        sync.RWMutex
	records   []domain.MovieRecord
	nextID    int
	validator *validator.Validate
}

func NewStore(v *validator.Validate) *Store {
	if v == nil {
		v = appvalidator.NewValidator()
	}

	return &Store{
		validator: v,
	}
}

// Add validates and inserts a new record as the logical head of the catalog
// and returns its ID. IDs start at 0 and are never reused, even after the
// record is removed.
func (s *Store) Add(name string, price, hour, minute int) (int, error) {
	record := domain.MovieRecord{
		Name:   name,
		Price:  price,
		Hour:   hour,
		Minute: minute,
	}

	err := s.validator.Struct(record)
	if err != nil {
		return 0, fmt.Errorf("invalid movie record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.nextID
	s.nextID++
	s.records = append(s.records, record)

	return record.ID, nil
}

// Remove deletes the record with the given ID. Unknown IDs are ignored.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}

	s.records = slices.Delete(s.records, i, i+1)
}

// At returns the record at position i, newest first.
func (s *Store) At(i int) (domain.MovieRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i < 0 || i >= len(s.records) {
		return domain.MovieRecord{}, fmt.Errorf("position %d of %d: %w", i, len(s.records), domain.ErrOutOfRange)
	}

	return s.records[len(s.records)-1-i], nil
}

func (s *Store) Get(id int) (domain.MovieRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.MovieRecord{}, domain.ErrRecordNotFound
	}

	return s.records[i], nil
}

func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// All returns a copy of every record in position order.
func (s *Store) All() []domain.MovieRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := slices.Clone(s.records)
	slices.Reverse(all)

	return all
}

// Seed adds every movie in order, so the last seed ends up at position 0.
func (s *Store) Seed(movies []domain.SeedMovie) error {
	for _, m := range movies {
		_, err := s.Add(m.Name, m.Price, m.Hour, m.Minute)
		if err != nil {
			return fmt.Errorf("seed %q: %w", m.Name, err)
		}
	}

	return nil
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.records, func(r domain.MovieRecord) bool {
		return r.ID == id
	})
}

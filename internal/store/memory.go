package store

import "searchbar/internal/domain"

// ResultStore provides read-only access to the loaded results
type ResultStore interface {
	Records() []domain.ResultRecord
	Len() int
}

// MemoryStore is an in-memory, read-only ResultStore
type MemoryStore struct {
	records []domain.ResultRecord
}

// NewMemoryStore creates a store over a private copy of records
func NewMemoryStore(records []domain.ResultRecord) *MemoryStore {
	owned := make([]domain.ResultRecord, len(records))
	copy(owned, records)
	return &MemoryStore{records: owned}
}

// Records returns a copy to prevent external modification
func (s *MemoryStore) Records() []domain.ResultRecord {
	result := make([]domain.ResultRecord, len(s.records))
	copy(result, s.records)
	return result
}

// Len returns the number of loaded records
func (s *MemoryStore) Len() int {
	return len(s.records)
}

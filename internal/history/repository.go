package history

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("history record not found")

type Repository interface {
	Insert(rec Record) (Record, error)
	// ListByAccount returns the account's records newest-first.
	ListByAccount(accountID int, limit int, offset int) ([]Record, error)
}

// InMemoryRepository backs the app when no database is configured.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Record
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Insert(rec Record) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, rec)
	return rec, nil
}

func (r *InMemoryRepository) ListByAccount(accountID int, limit int, offset int) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Record, 0)
	// walk backwards so newest records come first
	for i := len(r.storage) - 1; i >= 0; i-- {
		if r.storage[i].AccountID == accountID {
			matched = append(matched, r.storage[i])
		}
	}
	if offset >= len(matched) {
		return []Record{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

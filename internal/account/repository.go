package account

import (
	"errors"
	"sync"
)

var (
	ErrNotFound           = errors.New("account not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repository interface {
	GetByID(id int) (Account, error)
	GetByEmail(email string) (Account, error)
	Create(a Account) (Account, error)
}

// InMemoryRepository backs the app when no database is configured and keeps
// handler tests free of SQL.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Account
	nextID  int
}

func NewInMemoryRepository(seed []Account) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Account, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, a := range seed {
		r.storage = append(r.storage, a)
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) GetByID(id int) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.storage {
		if a.ID == id {
			return a, nil
		}
	}
	return Account{}, ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(email string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.storage {
		if a.Email == email {
			return a, nil
		}
	}
	return Account{}, ErrNotFound
}

func (r *InMemoryRepository) Create(a Account) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == 0 {
		a.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, a)
	return a, nil
}

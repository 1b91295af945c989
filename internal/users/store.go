package users

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrDuplicateLogin is returned by Create when the store was built with
// WithUniqueLogins and the login is already taken.
var ErrDuplicateLogin = errors.New("login already taken")

// Store is a thread-safe in-memory user store keyed by login. All public
// methods are safe for concurrent use. By default a second registration
// with the same login overwrites the first record; WithUniqueLogins turns
// that into a conflict error instead.
type Store struct {
	mu           sync.RWMutex
	users        map[string]User
	uniqueLogins bool
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithUniqueLogins makes Create reject a login that is already present
// instead of overwriting its record.
func WithUniqueLogins() StoreOption {
	return func(s *Store) { s.uniqueLogins = true }
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{users: make(map[string]User)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create assigns a fresh id to the new user, stores the record under its
// login and returns the id. The id is never derived from the input.
func (s *Store) Create(nu NewUser) (string, error) {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uniqueLogins {
		if _, exists := s.users[nu.Login]; exists {
			return "", ErrDuplicateLogin
		}
	}
	s.users[nu.Login] = User{ID: id, Login: nu.Login, Password: nu.Password}
	return id, nil
}

// Find returns the record stored under login, if any.
func (s *Store) Find(login string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[login]
	return u, ok
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

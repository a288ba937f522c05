package gate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	goerrors "github.com/goliatone/go-errors"
)

// Fixed storage keys, mirrored in the StoredSession JSON tags.
const (
	SessionTokenKey = "authToken"
	SessionRoleKey  = "role"
)

// FileSessionStore keeps the session in a JSON file so it survives
// restarts. Concurrent writers race last-write-wins; reads never fail,
// a missing or corrupt file reads as an empty session.
type FileSessionStore struct {
	mu     sync.Mutex
	path   string
	logger Logger
}

// NewFileSessionStore creates a store backed by the given file path.
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{
		path:   path,
		logger: defLogger{},
	}
}

func (s *FileSessionStore) WithLogger(logger Logger) *FileSessionStore {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Save persists the token and role under the fixed keys.
func (s *FileSessionStore) Save(token, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(StoredSession{Token: token, Role: role})
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to encode session")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to create session directory")
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist session")
	}
	return nil
}

// Read returns the stored session without side effects.
func (s *FileSessionStore) Read() StoredSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return StoredSession{}
	}

	var session StoredSession
	if err := json.Unmarshal(data, &session); err != nil {
		s.logger.Debug("session file unreadable, treating as unauthenticated", "error", err)
		return StoredSession{}
	}
	return session
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (s *FileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to clear session")
	}
	return nil
}

// MemorySessionStore is an in-process SessionStore for tests and for
// embedding in larger session managers.
type MemorySessionStore struct {
	mu      sync.RWMutex
	session StoredSession
}

// NewMemorySessionStore creates an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Save(token, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = StoredSession{Token: token, Role: role}
	return nil
}

func (s *MemorySessionStore) Read() StoredSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *MemorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = StoredSession{}
	return nil
}

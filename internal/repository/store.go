package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"fintrack/internal/model"
)

const storeVersion = 1

// Store keeps every user's record and persists all of them as one JSON
// document. Mutations run through Update so that read-modify-write-save is a
// single critical section.
type Store interface {
	Get(userID string) (*model.User, error)
	Update(userID string, fn func(*model.User) error) error
	UserIDs() ([]string, error)
	Flush() error
}

type document struct {
	Version int                    `json:"version"`
	Users   map[string]*model.User `json:"users"`
}

// FileStore is the single-process file-backed implementation. One mutex
// serializes every operation; each mutation rewrites the whole file.
type FileStore struct {
	mu   sync.Mutex
	path string
	doc  *document
}

// NewFileStore loads the backing file. A missing file means a fresh
// deployment and starts empty. A file that exists but can't be decoded is
// moved aside with a .corrupt suffix so it is never silently overwritten.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path: path,
		doc:  &document{Version: storeVersion, Users: make(map[string]*model.User)},
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logrus.Infof("repository.FileStore: no data file at %s, starting empty", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository.FileStore couldn't read %s: %v", path, err)
	}

	users, err := decode(raw)
	if err != nil {
		sidelined := fmt.Sprintf("%s.corrupt-%s", path, time.Now().UTC().Format("20060102T150405"))
		if renameErr := os.Rename(path, sidelined); renameErr != nil {
			return nil, fmt.Errorf("repository.FileStore couldn't move corrupt file aside: %v (decode error: %v)", renameErr, err)
		}
		logrus.Errorf("repository.FileStore: %s is corrupt, moved to %s and starting empty: %v", path, sidelined, err)
		return s, nil
	}

	s.doc.Users = users
	logrus.Infof("repository.FileStore: loaded %d users from %s", len(users), path)
	return s, nil
}

// decode understands the current versioned document and the legacy layout,
// a bare object keyed by user id, which predates the version field.
func decode(raw []byte) (map[string]*model.User, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err == nil && doc.Version == storeVersion {
		if doc.Users == nil {
			doc.Users = make(map[string]*model.User)
		}
		return normalize(doc.Users), nil
	}

	var legacy map[string]*model.User
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCorruptStore, err)
	}
	if legacy == nil {
		legacy = make(map[string]*model.User)
	}
	return normalize(legacy), nil
}

// normalize repairs records written by older deployments: nil collections
// become empty ones and the id counters catch up with ids that were assigned
// positionally before the counters existed.
func normalize(users map[string]*model.User) map[string]*model.User {
	for _, u := range users {
		if u.Transactions == nil {
			u.Transactions = []model.Transaction{}
		}
		if u.Goals == nil {
			u.Goals = []model.Goal{}
		}
		if u.Budgets == nil {
			u.Budgets = make(map[string]model.Budget)
		}
		if u.Currency == "" {
			u.Currency = model.DefaultCurrency
		}
		for _, tx := range u.Transactions {
			if tx.ID > u.TxCounter {
				u.TxCounter = tx.ID
			}
		}
		for _, g := range u.Goals {
			if g.ID > u.GoalCounter {
				u.GoalCounter = g.ID
			}
		}
	}
	return users
}

// Get returns a deep copy of the user's record, creating a default one on
// first lookup. It never fails for a reachable store.
func (s *FileStore) Get(userID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user(userID).Clone(), nil
}

// Update runs fn on the live record and rewrites the backing file. If fn
// returns an error nothing is persisted.
func (s *FileStore) Update(userID string, fn func(*model.User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.user(userID)); err != nil {
		return err
	}
	return s.save()
}

// UserIDs returns every known user id in stable order.
func (s *FileStore) UserIDs() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.doc.Users))
	for id := range s.doc.Users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Flush rewrites the backing file, for shutdown paths.
func (s *FileStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *FileStore) user(userID string) *model.User {
	u, ok := s.doc.Users[userID]
	if !ok {
		u = model.NewUser()
		s.doc.Users[userID] = u
	}
	return u
}

// save writes to a temp file in the same directory and renames it over the
// target, so a crash mid-write can't truncate the store.
func (s *FileStore) save() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("repository.FileStore couldn't marshal store: %v", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("repository.FileStore couldn't create temp file: %v", err)
	}
	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("repository.FileStore couldn't write temp file: %v", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("repository.FileStore couldn't close temp file: %v", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("repository.FileStore couldn't rename temp file: %v", err)
	}
	return nil
}

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Slot file names under the store's data folder.
const (
	tokenSlot   = "auth_token"
	profileSlot = "user.json"
)

// Store persists the session in client-local durable storage.
// Token and profile live in two independently-addressable slots; a
// state where only one slot survives must not outlive a Load.
type Store interface {
	Save(session Session) error
	Load() (*Session, error)
	Clear() error
}

// FileStore keeps the two session slots as files under a data folder
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. The folder is created
// lazily on the first Save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save writes both slots, overwriting any prior session unconditionally.
// The profile is written first so a crash mid-save leaves a split state
// that Load treats as absent, never a token with a stale profile.
func (s *FileStore) Save(session Session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create session folder: %w", err)
	}

	profile, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.WriteFile(s.profilePath(), profile, 0o600); err != nil {
		return fmt.Errorf("write profile slot: %w", err)
	}
	if err := os.WriteFile(s.tokenPath(), []byte(session.Token), 0o600); err != nil {
		return fmt.Errorf("write token slot: %w", err)
	}
	return nil
}

// Load returns the stored session, or nil when no usable session
// exists. Absence, a split state, and an unparsable profile all read as
// "not logged in" - corruption is logged, never surfaced.
func (s *FileStore) Load() (*Session, error) {
	tokenBytes, tokenErr := os.ReadFile(s.tokenPath())
	profileBytes, profileErr := os.ReadFile(s.profilePath())

	if os.IsNotExist(tokenErr) && os.IsNotExist(profileErr) {
		return nil, nil
	}
	if tokenErr != nil || profileErr != nil {
		if !os.IsNotExist(tokenErr) && tokenErr != nil {
			return nil, fmt.Errorf("read token slot: %w", tokenErr)
		}
		if !os.IsNotExist(profileErr) && profileErr != nil {
			return nil, fmt.Errorf("read profile slot: %w", profileErr)
		}
		// One slot missing: a split session must not survive a read
		log.Warn().Msg("session store: split session detected, clearing")
		return nil, s.Clear()
	}

	var profile Profile
	if err := json.Unmarshal(profileBytes, &profile); err != nil {
		log.Err(err).Msg("session store: corrupt profile, treating as absent")
		return nil, s.Clear()
	}

	return &Session{Token: string(tokenBytes), User: profile}, nil
}

// Clear removes both slots. Clearing an already-empty store is not an
// error.
func (s *FileStore) Clear() error {
	for _, path := range []string{s.tokenPath(), s.profilePath()} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("clear session slot %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

func (s *FileStore) tokenPath() string {
	return filepath.Join(s.dir, tokenSlot)
}

func (s *FileStore) profilePath() string {
	return filepath.Join(s.dir, profileSlot)
}

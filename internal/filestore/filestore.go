// Package filestore persists each collection as a whole JSON array on
// disk, the on-disk format of the original job board. Every mutation
// reads the full array, changes it in memory and rewrites the file.
// A per-collection RWMutex serializes writers so concurrent mutations
// cannot lose updates, and rewrites go through a temp file + rename so
// a crash never leaves a half-written array behind.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"jobboard_backend/internal/repositories"
)

const (
	usersFile         = "users.json"
	jobsFile          = "jobs.json"
	interestsFile     = "interests.json"
	refreshTokensFile = "refreshTokens.json"
)

// New creates the data directory, seeds missing collection files with
// empty arrays and returns file-backed repositories.
func New(dir string) (*repositories.Repositories, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	files := make(map[string]*jsonFile, 4)
	for _, name := range []string{usersFile, jobsFile, interestsFile, refreshTokensFile} {
		f := &jsonFile{path: filepath.Join(dir, name)}
		if err := f.init(); err != nil {
			return nil, err
		}
		files[name] = f
	}

	return &repositories.Repositories{
		Users:         &UserStore{file: files[usersFile]},
		Jobs:          &JobStore{file: files[jobsFile]},
		Interests:     &InterestStore{file: files[interestsFile]},
		RefreshTokens: &RefreshTokenStore{file: files[refreshTokensFile]},
	}, nil
}

// jsonFile is one collection file. Callers take mu before load/save.
type jsonFile struct {
	path string
	mu   sync.RWMutex
}

func (f *jsonFile) init() error {
	if _, err := os.Stat(f.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.WriteFile(f.path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("failed to seed %s: %w", f.path, err)
	}
	return nil
}

func (f *jsonFile) load(v interface{}) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	return nil
}

func (f *jsonFile) save(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}

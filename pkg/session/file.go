package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// History is a file-backed list of recently viewed wallets, most recent
// first. All methods are safe for concurrent use within one process; the
// file itself is rewritten atomically via a temp file.
type History struct {
	mu   sync.Mutex
	path string
}

// NewHistory creates a history backed by the given file.
// If path is empty, defaults to ~/.config/walletscope/history.json
func NewHistory(path string) (*History, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		path = filepath.Join(home, ".config", "walletscope", "history.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	return &History{path: path}, nil
}

// Path returns the history file path.
func (h *History) Path() string {
	return h.path
}

// Record remembers a wallet view. A wallet already in the history moves to
// the front with a new ID and transfer count; the list is capped at
// [MaxEntries].
func (h *History) Record(wallet string, transfers int) (Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load()
	if err != nil {
		return Entry{}, err
	}

	entry := NewEntry(wallet, transfers)
	updated := make([]Entry, 0, len(entries)+1)
	updated = append(updated, entry)
	for _, e := range entries {
		if e.Wallet == wallet {
			continue
		}
		updated = append(updated, e)
	}
	if len(updated) > MaxEntries {
		updated = updated[:MaxEntries]
	}

	if err := h.save(updated); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Recent returns the remembered wallets, most recent first.
// A missing history file yields an empty list, not an error.
func (h *History) Recent() ([]Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

// Forget removes the entry with the given ID. Removing an unknown ID is
// not an error.
func (h *History) Forget(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return h.save(kept)
}

// Clear removes all history entries.
func (h *History) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove history file: %w", err)
	}
	return nil
}

func (h *History) load() ([]Entry, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	return entries, nil
}

func (h *History) save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return os.Rename(tmp, h.path)
}

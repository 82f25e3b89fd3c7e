package memory

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// SlotName is the canonical name of the persistent slot holding the
// serialized memory collection.
const SlotName = "family_memories_2025"

// Slot is the single persistent key-value location backing a Store. Read
// reports ok=false when the slot has never been written (or was deleted),
// which is distinct from an empty value.
type Slot interface {
	Read() (data []byte, ok bool, err error)
	Write(data []byte) error
	Delete() error
}

// FileSlot persists the slot value as a single file on disk. Writes replace
// the whole file atomically (temp file + rename) so a crash mid-write can
// never leave a torn value behind.
type FileSlot struct {
	path string
}

// NewFileSlot creates a FileSlot at the given path.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// DefaultSlotPath returns the conventional slot location under the user's
// home directory.
func DefaultSlotPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".yearbook", SlotName+".json")
}

// Path returns the backing file path.
func (s *FileSlot) Path() string { return s.path }

// Read returns the current slot value, or ok=false when the file is absent.
func (s *FileSlot) Read() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read slot %s: %w", s.path, err)
	}
	return data, true, nil
}

// Write replaces the slot value in full.
func (s *FileSlot) Write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create slot directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, SlotName+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create slot temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write slot temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close slot temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace slot %s: %w", s.path, err)
	}
	return nil
}

// Delete removes the slot entirely. Deleting an absent slot is not an error.
func (s *FileSlot) Delete() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete slot %s: %w", s.path, err)
	}
	return nil
}

// MemorySlot is a volatile Slot kept entirely in process memory. It is the
// default for tests and throwaway sessions. Safe for concurrent use.
type MemorySlot struct {
	mu      sync.RWMutex
	data    []byte
	present bool
}

// NewMemorySlot constructs an empty, never-written MemorySlot.
func NewMemorySlot() *MemorySlot { return &MemorySlot{} }

// Read returns a copy of the stored value, or ok=false before the first write.
func (s *MemorySlot) Read() ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.present {
		return nil, false, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, true, nil
}

// Write replaces the stored value in full.
func (s *MemorySlot) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.present = true
	return nil
}

// Delete empties the slot and marks it absent.
func (s *MemorySlot) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.present = false
	return nil
}

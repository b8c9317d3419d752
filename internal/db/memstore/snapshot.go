package memstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
)

// Save writes the store as snappy framed JSON.
func (m *Store) Save(w io.Writer) error {
	m.mu.RLock()
	data, err := json.Marshal(m.s)
	m.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("unable to encode snapshot: %w", err)
	}
	sw := snappy.NewBufferedWriter(w)
	if _, err := sw.Write(data); err != nil {
		return fmt.Errorf("unable to write snapshot: %w", err)
	}
	return sw.Close()
}

// Load replaces the contents of the store with a snapshot written by Save.
func (m *Store) Load(r io.Reader) error {
	s := newState()
	if err := json.NewDecoder(snappy.NewReader(r)).Decode(s); err != nil {
		return fmt.Errorf("unable to decode snapshot: %w", err)
	}
	s.ensure()
	m.mu.Lock()
	m.s = s
	m.mu.Unlock()
	return nil
}

// SaveFile writes the snapshot next to path and renames it into place.
func (m *Store) SaveFile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := m.Save(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// LoadFile restores the store from path. It reports false when the file does not exist.
func (m *Store) LoadFile(path string) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()
	if err := m.Load(f); err != nil {
		return false, err
	}
	return true, nil
}

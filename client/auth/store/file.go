package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
)

// FileStore persists all values as a single JSON document addressed by an afs
// URL. Every mutation rewrites the whole document.
type FileStore struct {
	mu     sync.RWMutex
	URL    string
	fs     afs.Service
	values map[string]string
}

type fileSnapshot struct {
	Values map[string]string `json:"values"`
}

// NewFileStore loads the document at URL, a missing document starts empty.
// When fs is nil afs.New() is used.
func NewFileStore(ctx context.Context, URL string, fs afs.Service) (*FileStore, error) {
	if fs == nil {
		fs = afs.New()
	}
	ret := &FileStore{URL: URL, fs: fs, values: map[string]string{}}
	if err := ret.load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load store %v: %w", URL, err)
	}
	return ret, nil
}

func (f *FileStore) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	value, ok := f.values[key]
	return value, ok
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if current, ok := f.values[key]; ok && current == value {
		return nil
	}
	f.values[key] = value
	return f.save(context.Background())
}

func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.save(context.Background())
}

func (f *FileStore) save(ctx context.Context) error {
	data, err := json.MarshalIndent(fileSnapshot{Values: f.values}, "", "  ")
	if err != nil {
		return err
	}
	if err = f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save store %v: %w", f.URL, err)
	}
	return nil
}

func (f *FileStore) load(ctx context.Context) error {
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return err
	}
	for k, v := range snap.Values {
		f.values[k] = v
	}
	return nil
}

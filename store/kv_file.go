package store

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

type fileEntry struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FileKV persists entries as a JSON snapshot on disk. The snapshot is read
// once when the store is opened and rewritten after every mutation. A missing
// or unreadable snapshot starts the store empty rather than failing.
type FileKV struct {
	mu      sync.Mutex
	path    string
	entries map[string]fileEntry

	now func() time.Time
}

func OpenFileKV(path string) *FileKV {
	kv := &FileKV{
		path:    path,
		entries: make(map[string]fileEntry),
		now:     time.Now,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return kv
	}
	var entries map[string]fileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Corrupt snapshot: discard and resume empty.
		return kv
	}
	kv.entries = entries
	return kv
}

func (f *FileKV) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.entries[key]
	if !ok {
		return "", false
	}
	if f.now().After(entry.ExpiresAt) {
		delete(f.entries, key)
		f.save()
		return "", false
	}
	return entry.Value, true
}

func (f *FileKV) Set(key, value string, ttl time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = fileEntry{
		Value:     value,
		ExpiresAt: f.now().Add(ttl),
	}
	f.save()
}

func (f *FileKV) Delete(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	f.save()
}

// save writes the snapshot. Held under f.mu; write failures are swallowed,
// matching the fire-and-forget persistence contract.
func (f *FileKV) save() {
	data, err := json.Marshal(f.entries)
	if err != nil {
		return
	}
	_ = os.WriteFile(f.path, data, 0644)
}

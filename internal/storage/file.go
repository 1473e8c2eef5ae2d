package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileKV keeps every key in one JSON document on disk. The whole document is
// rewritten on each Set; values are raw JSON so the file stays readable.
type FileKV struct {
	mu   sync.RWMutex
	path string
	data map[string]json.RawMessage
}

func OpenFile(dataDir string) (*FileKV, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	kv := &FileKV{
		path: filepath.Join(dataDir, "state.json"),
		data: map[string]json.RawMessage{},
	}
	if err := kv.load(); err != nil {
		return nil, err
	}
	return kv, nil
}

func (kv *FileKV) load() error {
	b, err := os.ReadFile(kv.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	loaded := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	kv.data = loaded
	return nil
}

func (kv *FileKV) saveLocked() error {
	b, err := json.MarshalIndent(kv.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := kv.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, kv.path)
}

func (kv *FileKV) Get(key string) ([]byte, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	v, ok := kv.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (kv *FileKV) Set(key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	raw := make(json.RawMessage, len(value))
	copy(raw, value)
	kv.data[key] = raw
	return kv.saveLocked()
}

func (kv *FileKV) Close() error { return nil }

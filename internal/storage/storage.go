// Package storage is the persistence surface: a small key-value store with
// a JSON-file backend and a SQLite backend.
package storage

import "fmt"

// KV is the get/set surface the task store persists through.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Close() error
}

// Open builds the backend named by kind ("file" or "sqlite") rooted in dataDir.
func Open(kind, dataDir string) (KV, error) {
	switch kind {
	case "", "file":
		return OpenFile(dataDir)
	case "sqlite":
		return OpenSQLite(dataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}

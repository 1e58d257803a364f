package storage

import "fmt"

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Open selects and opens a Backend by name. dbPath is used by the sqlite
// backend, dataDir by the file backend.
func Open(backend, dataDir, dbPath string) (Backend, error) {
	switch backend {
	case BackendSQLite:
		return OpenSQLite(dbPath)
	case BackendFile:
		return OpenFile(dataDir)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

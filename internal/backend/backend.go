// Package backend selects and builds the transaction source for a run.
package backend

import (
	"fmt"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/config"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/source"
)

// Type identifies where the operations table comes from.
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	SheetsBackend Type = "sheets"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend, SheetsBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// Result is the constructed transaction source plus optional cleanup.
type Result struct {
	Transactions source.TransactionReader
	Cleanup      CleanupFunc
}

// Config holds what backend construction needs, extracted from app config.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// File backend specific
	DataDirectory string
}

// FromAppConfig converts the application config to a backend config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := Type(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	return Config{
		Type:          backendType,
		SQLiteDBPath:  appConfig.SQLiteDBPath,
		DataDirectory: appConfig.DataDir,
	}, nil
}

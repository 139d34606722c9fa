package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/source/file"
	gsheet "github.com/Anton-Biryukov-Mig/course-work-1/internal/source/google"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/storage"
)

// Factory builds transaction sources from configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the transaction source named by config.
func (f *Factory) Create(ctx context.Context, cfg Config) (*Result, error) {
	switch cfg.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Transactions: repo, Cleanup: repo.Close}, nil

	case SheetsBackend:
		cli, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets client: %w", err)
		}
		f.logger.Info("Initialized Google Sheets backend")
		return &Result{Transactions: cli}, nil

	case FileBackend:
		dataDir := cfg.DataDirectory
		if dataDir == "" {
			dataDir = "data"
		}
		f.logger.Info("Initialized file backend", "data_directory", dataDir)
		return &Result{Transactions: file.New(dataDir)}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}

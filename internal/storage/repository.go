package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/core"

	_ "modernc.org/sqlite"
)

// operatedAtLayout is how operation timestamps are stored in the database.
const operatedAtLayout = "2006-01-02 15:04:05"

// SQLiteRepository stores the operations table in a local SQLite database.
// It implements source.TransactionReader.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Import appends transactions to the operations table inside one transaction.
func (r *SQLiteRepository) Import(ctx context.Context, txns []core.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO operations (operated_at, card, category, description, amount)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range txns {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		_, err := stmt.ExecContext(ctx,
			t.Date.Format(operatedAtLayout),
			t.Card,
			t.Category,
			t.Description,
			t.Amount.String())
		if err != nil {
			return fmt.Errorf("insert transaction %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}

	slog.InfoContext(ctx, "Operations imported to SQLite", "count", len(txns))
	return nil
}

// ListTransactions returns the full operations table in insertion order.
func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT operated_at, card, category, description, amount
		FROM operations
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query operations: %w", err)
	}
	defer rows.Close()

	var txns []core.Transaction
	for rows.Next() {
		var operatedAt, card, category, description, amount string
		if err := rows.Scan(&operatedAt, &card, &category, &description, &amount); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}

		date, err := time.Parse(operatedAtLayout, operatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", operatedAt, err)
		}
		amt, err := core.ParseAmount(amount)
		if err != nil {
			return nil, fmt.Errorf("parse stored amount %q: %w", amount, err)
		}

		txns = append(txns, core.Transaction{
			Date:        date,
			Card:        card,
			Category:    category,
			Description: description,
			Amount:      amt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return txns, nil
}

// Count returns the number of stored operations.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM operations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count operations: %w", err)
	}
	return n, nil
}

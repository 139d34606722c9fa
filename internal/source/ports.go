// Package source defines the ports for transaction and settings input.
package source

import (
	"context"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/core"
)

// Ports for inbound data.
type (
	// TransactionReader supplies the full ordered transaction set for a run.
	TransactionReader interface {
		ListTransactions(ctx context.Context) ([]core.Transaction, error)
	}

	// SettingsReader supplies the user settings for a run.
	SettingsReader interface {
		ReadSettings(ctx context.Context) (core.UserSettings, error)
	}
)

package audit

import (
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger swaps the audit sink. Used by tests to capture entries.
func SetLogger(l *slog.Logger) {
	logger = l
}

// Record emits one structured audit entry for a successful mutation.
func Record(entity string, id uint, actor string, operation string) {
	logger.Info("audit",
		"entity", entity,
		"id", id,
		"actor", actor,
		"operation", operation,
	)
}

// CascadeDelete emits the pre-delete entry for a product that is about to be
// removed along with its parent category or provider.
func CascadeDelete(parentKind, parentName, productName string, productPrice int) {
	logger.Info("cascade delete",
		"parent_kind", parentKind,
		"parent", parentName,
		"product", productName,
		"price", productPrice,
	)
}

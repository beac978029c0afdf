package usecase

import "context"

// ReconcileUsecase defines the interface for the appointment expiry sweep.
type ReconcileUsecase interface {
	// ReconcileExpired removes every appointment scheduled strictly before now
	// and queues one finished notification per removal. It returns the number
	// of appointments removed. Per-record failures are logged and skipped; the
	// sweep keeps going.
	ReconcileExpired(ctx context.Context) (int, error)
}

package cli

import (
	"context"
	"errors"

	"gamelog/internal/common"
)

// Sync runs one forced sync pass so the user sees the outcome immediately,
// unlike the silent background passes.
func (a *App) Sync(ctx context.Context) error {
	if err := a.syncSvc.Sync(ctx, true); err != nil {
		if errors.Is(err, common.ErrOffline) {
			printlnFn("Offline: changes will sync when connectivity returns.")
		} else {
			printlnFn("Sync failed:", err.Error())
		}
		return err
	}
	printlnFn("Sync complete.")
	return nil
}

// Status prints the derived sync state.
func (a *App) Status(ctx context.Context) error {
	st, err := a.status.Evaluate(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Status:", string(st))
	return nil
}

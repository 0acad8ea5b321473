package cli

import (
	"context"
	"fmt"
)

// Undo restores the list as it was before the most recent mutation.
// Running out of snapshots is reported, not an error.
func (a *App) Undo(ctx context.Context) error {
	a.count("undo")
	if len(a.history) == 0 {
		fmt.Fprintln(a.out, renderNotice("nothing to undo"))
		return nil
	}
	a.list = a.history[len(a.history)-1]
	a.history = a.history[:len(a.history)-1]

	a.logger.Debug(ctx, "undo", "entries", a.list.Len())
	fmt.Fprintf(a.out, "undone, %d entries\n", a.list.Len())
	return nil
}

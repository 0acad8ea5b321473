package cli

import (
	"context"
	"fmt"

	"github.com/mixassio/todolist/internal/listfile"
)

// Load replaces the in-memory list with the contents of a file:
// load [file]. Without an argument the configured list file is used.
// The load is all-or-nothing, so the current list survives a bad file.
func (a *App) Load(ctx context.Context, args []string) error {
	a.count("load")
	path := a.config.ListFile
	if len(args) > 0 {
		path = args[0]
	}

	l, err := listfile.LoadFile(path)
	if err != nil {
		return err
	}
	a.push()
	a.list = l

	a.logger.Info(ctx, "list loaded", "file", path, "entries", l.Len())
	fmt.Fprintf(a.out, "loaded %d entries from %s\n", l.Len(), path)
	return nil
}

// Save writes the current list out: save [file]. Without an argument the
// configured list file is used. Ids are renumbered 1..N on the next load.
func (a *App) Save(ctx context.Context, args []string) error {
	a.count("save")
	path := a.config.ListFile
	if len(args) > 0 {
		path = args[0]
	}

	if err := listfile.ExportFile(path, a.list); err != nil {
		return err
	}

	a.logger.Info(ctx, "list saved", "file", path, "entries", a.list.Len())
	fmt.Fprintf(a.out, "saved %d entries to %s\n", a.list.Len(), path)
	return nil
}

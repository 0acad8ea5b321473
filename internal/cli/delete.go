package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Delete removes an entry: del <id>. Deleting an id that is not there is
// not an error; the user is told nothing happened.
func (a *App) Delete(ctx context.Context, args []string) error {
	a.count("del")
	if len(args) != 1 {
		return errors.New("usage: del <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("parse id %q: %w", args[0], err)
	}

	if _, ok := a.list.Get(id); !ok {
		fmt.Fprintln(a.out, renderNotice(fmt.Sprintf("no entry %d", id)))
		return nil
	}

	a.push()
	a.list = a.list.Delete(id)

	a.logger.Debug(ctx, "entry deleted", "id", id)
	fmt.Fprintf(a.out, "entry %d deleted\n", id)
	return nil
}

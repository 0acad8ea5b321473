package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mixassio/todolist/internal/models"
)

// List prints every entry in ascending id order.
func (a *App) List(ctx context.Context) error {
	a.count("list")
	fmt.Fprintln(a.out, renderEntries(a.list.Entries()))
	return nil
}

// On prints the entries scheduled for one date: on <yyyy/mm/dd>.
func (a *App) On(ctx context.Context, args []string) error {
	a.count("on")
	if len(args) != 1 {
		return errors.New("usage: on <yyyy/mm/dd>")
	}
	d, err := models.ParseDate(args[0])
	if err != nil {
		return fmt.Errorf("parse date %q: %w", args[0], err)
	}
	fmt.Fprintln(a.out, renderEntries(a.list.EntriesOn(d)))
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mixassio/todolist/internal/models"
)

// Retitle renames an entry in place: retitle <id> <title>.
func (a *App) Retitle(ctx context.Context, args []string) error {
	a.count("retitle")
	if len(args) < 2 {
		return errors.New("usage: retitle <id> <title>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("parse id %q: %w", args[0], err)
	}
	title := strings.Join(args[1:], " ")

	if _, ok := a.list.Get(id); !ok {
		fmt.Fprintln(a.out, renderNotice(fmt.Sprintf("no entry %d", id)))
		return nil
	}

	next, err := a.list.UpdateFunc(id, func(e models.Entry) models.Entry {
		e.Title = title
		return e
	})
	if err != nil {
		return err
	}
	a.push()
	a.list = next

	a.logger.Debug(ctx, "entry retitled", "id", id)
	fmt.Fprintf(a.out, "entry %d retitled\n", id)
	return nil
}

// Move reschedules an entry to another date: move <id> <yyyy/mm/dd>.
func (a *App) Move(ctx context.Context, args []string) error {
	a.count("move")
	if len(args) != 2 {
		return errors.New("usage: move <id> <yyyy/mm/dd>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("parse id %q: %w", args[0], err)
	}
	d, err := models.ParseDate(args[1])
	if err != nil {
		return fmt.Errorf("parse date %q: %w", args[1], err)
	}

	if _, ok := a.list.Get(id); !ok {
		fmt.Fprintln(a.out, renderNotice(fmt.Sprintf("no entry %d", id)))
		return nil
	}

	next, err := a.list.UpdateFunc(id, func(e models.Entry) models.Entry {
		e.Date = d
		return e
	})
	if err != nil {
		return err
	}
	a.push()
	a.list = next

	a.logger.Debug(ctx, "entry moved", "id", id, "date", d.String())
	fmt.Fprintf(a.out, "entry %d moved to %s\n", id, d)
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mixassio/todolist/internal/models"
)

// Add appends a new entry: add <yyyy/mm/dd> <title>.
func (a *App) Add(ctx context.Context, args []string) error {
	a.count("add")
	if len(args) < 2 {
		return errors.New("usage: add <yyyy/mm/dd> <title>")
	}
	d, err := models.ParseDate(args[0])
	if err != nil {
		return fmt.Errorf("parse date %q: %w", args[0], err)
	}
	title := strings.Join(args[1:], " ")

	id := a.list.NextID()
	next, err := a.list.Add(models.NewEntry{Date: d, Title: title})
	if err != nil {
		return err
	}
	a.push()
	a.list = next

	a.logger.Debug(ctx, "entry added", "id", id, "date", d.String())
	fmt.Fprintf(a.out, "added entry %d\n", id)
	return nil
}

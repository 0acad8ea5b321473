// Package todo implements the in-memory todo list: an id-keyed collection
// of dated entries.
//
// A List is a value. Every writing operation returns a new List and leaves
// the receiver untouched, so two variables never observe each other's
// changes; internally each write builds a fresh map (copy-on-write). The
// zero List is a usable empty list.
package todo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mixassio/todolist/internal/models"
)

// ErrInvalidArgument reports a caller mistake: a NewEntry without a valid
// date, or an updater that rewrites the entry id. Match with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// List holds todo entries keyed by id, plus the id allocator. Ids start at
// 1, grow by one per added entry and are never reused, even after deletes.
type List struct {
	nextID  int
	entries map[int]models.Entry
}

// New builds a List from the given entries in order, assigning ids 1..N.
// The result is the same as folding Add over the slice starting from an
// empty List. The first invalid entry aborts with ErrInvalidArgument and
// an empty List.
func New(initial ...models.NewEntry) (List, error) {
	l := List{nextID: 1, entries: make(map[int]models.Entry, len(initial))}
	for _, e := range initial {
		if err := validate(e); err != nil {
			return List{}, err
		}
		l.entries[l.nextID] = models.Entry{ID: l.nextID, Date: e.Date, Title: e.Title}
		l.nextID++
	}
	return l, nil
}

func validate(e models.NewEntry) error {
	if e.Date.IsZero() {
		return fmt.Errorf("entry date is missing: %w", ErrInvalidArgument)
	}
	if !e.Date.Valid() {
		return fmt.Errorf("entry date %s is not a calendar date: %w", e.Date, ErrInvalidArgument)
	}
	return nil
}

// next returns the id the next Add will assign. It normalizes the zero
// List, whose counter has not started yet.
func (l List) next() int {
	if l.nextID == 0 {
		return 1
	}
	return l.nextID
}

// clone copies the entry map so a writer never touches a map some other
// List value may share.
func (l List) clone() map[int]models.Entry {
	m := make(map[int]models.Entry, len(l.entries)+1)
	for k, v := range l.entries {
		m[k] = v
	}
	return m
}

// Add returns a List with e appended under the next free id. On error the
// receiver is returned unchanged alongside ErrInvalidArgument.
func (l List) Add(e models.NewEntry) (List, error) {
	if err := validate(e); err != nil {
		return l, err
	}
	id := l.next()
	m := l.clone()
	m[id] = models.Entry{ID: id, Date: e.Date, Title: e.Title}
	return List{nextID: id + 1, entries: m}, nil
}

// EntriesOn returns every entry dated d, in ascending id order. The order
// is stable across calls on the same List value.
func (l List) EntriesOn(d models.Date) []models.Entry {
	var out []models.Entry
	for _, e := range l.entries {
		if e.Date == d {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update replaces the stored entry with e.ID by e verbatim. A missing id
// is a no-op, not an error: the receiver is returned as is.
func (l List) Update(e models.Entry) (List, error) {
	return l.UpdateFunc(e.ID, func(models.Entry) models.Entry { return e })
}

// UpdateFunc applies fn to the entry with the given id and stores the
// result under the same id. A missing id is a no-op. fn must keep the id:
// a result with a different ID is rejected with ErrInvalidArgument and the
// receiver is returned unchanged.
func (l List) UpdateFunc(id int, fn func(models.Entry) models.Entry) (List, error) {
	old, ok := l.entries[id]
	if !ok {
		return l, nil
	}
	updated := fn(old)
	if updated.ID != id {
		return l, fmt.Errorf("update of entry %d changed id to %d: %w", id, updated.ID, ErrInvalidArgument)
	}
	m := l.clone()
	m[id] = updated
	return List{nextID: l.nextID, entries: m}, nil
}

// Delete returns a List without the given id. Deleting an absent id is a
// no-op and never moves the id counter.
func (l List) Delete(id int) List {
	if _, ok := l.entries[id]; !ok {
		return l
	}
	m := l.clone()
	delete(m, id)
	return List{nextID: l.nextID, entries: m}
}

// Get looks up a single entry by id.
func (l List) Get(id int) (models.Entry, bool) {
	e, ok := l.entries[id]
	return e, ok
}

// Entries returns all entries in ascending id order.
func (l List) Entries() []models.Entry {
	out := make([]models.Entry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of stored entries.
func (l List) Len() int {
	return len(l.entries)
}

// NextID returns the id the next Add will assign.
func (l List) NextID() int {
	return l.next()
}

// Equal reports whether both lists hold the same entries and will assign
// the same next id. go-cmp picks this method up automatically.
func (l List) Equal(other List) bool {
	if l.next() != other.next() || len(l.entries) != len(other.entries) {
		return false
	}
	for k, v := range l.entries {
		if o, ok := other.entries[k]; !ok || o != v {
			return false
		}
	}
	return true
}

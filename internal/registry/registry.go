package registry

import (
	"sync"

	"github.com/glypha-labs/glypha/internal/font"
)

// Registry owns the list of font records.
type Registry struct {
	mu      sync.Mutex
	records []font.Record
	nextID  int
}

// New returns an empty registry whose first id is 1.
func New() *Registry {
	return &Registry{nextID: 1}
}

// List returns a copy of all records in insertion order.
func (r *Registry) List() []font.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]font.Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Get returns the record with the given id.
func (r *Registry) Get(id int) (font.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return font.Record{}, &font.NotFoundError{ID: id}
	}
	return r.records[i], nil
}

// Create validates in, assigns the next id and appends the record.
// Ids come from a counter, never from the collection length, so they are
// not reused after a delete.
func (r *Registry) Create(in font.Input) (font.Record, error) {
	rec, err := font.NewRecord(in)
	if err != nil {
		return font.Record{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = r.nextID
	r.nextID++
	r.records = append(r.records, rec)
	return rec, nil
}

// Update replaces the fields set in p on the record with the given id.
func (r *Registry) Update(id int, p font.Patch) (font.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return font.Record{}, &font.NotFoundError{ID: id}
	}

	updated, err := r.records[i].Apply(p)
	if err != nil {
		return font.Record{}, err
	}
	r.records[i] = updated
	return updated, nil
}

// Delete removes the record with the given id and returns it. Remaining
// records keep their ids and order.
func (r *Registry) Delete(id int) (font.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return font.Record{}, &font.NotFoundError{ID: id}
	}

	rec := r.records[i]
	r.records = append(r.records[:i], r.records[i+1:]...)
	return rec, nil
}

// Seed creates one record per input, in order. It stops at the first
// invalid input and reports how many records were created before it.
func (r *Registry) Seed(inputs []font.Input) (int, error) {
	for i, in := range inputs {
		if _, err := r.Create(in); err != nil {
			return i, err
		}
	}
	return len(inputs), nil
}

// indexOf must be called with mu held.
func (r *Registry) indexOf(id int) int {
	for i, rec := range r.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

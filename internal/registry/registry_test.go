package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/glypha-labs/glypha/internal/font"
	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string { return &s }

func mustCreate(t *testing.T, r *Registry, name string) font.Record {
	t.Helper()
	rec, err := r.Create(font.Input{Name: name})
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", name, err)
	}
	return rec
}

func names(recs []font.Record) []string {
	out := make([]string, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Name)
	}
	return out
}

func TestCreateAndListScenario(t *testing.T) {
	r := New()

	roboto := mustCreate(t, r, "Roboto")
	if roboto.ID != 1 || roboto.Name != "Roboto" {
		t.Errorf("first create = %+v, want id 1 name Roboto", roboto)
	}

	sansation := mustCreate(t, r, "Sansation")
	if sansation.ID != 2 || sansation.Name != "Sansation" {
		t.Errorf("second create = %+v, want id 2 name Sansation", sansation)
	}

	got := r.List()
	want := []font.Record{roboto, sansation}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteKeepsIDs(t *testing.T) {
	r := New()
	mustCreate(t, r, "Roboto")
	sansation := mustCreate(t, r, "Sansation")

	deleted, err := r.Delete(1)
	if err != nil {
		t.Fatalf("Delete(1) failed: %v", err)
	}
	if deleted.Name != "Roboto" {
		t.Errorf("Delete returned %+v, want Roboto", deleted)
	}

	if diff := cmp.Diff([]font.Record{sansation}, r.List()); diff != "" {
		t.Errorf("List() after delete mismatch (-want +got):\n%s", diff)
	}

	// A new record must not collide with the surviving id 2.
	next := mustCreate(t, r, "Montserrat")
	if next.ID != 3 {
		t.Errorf("create after delete got id %d, want 3", next.ID)
	}
}

func TestListPreservesCreationOrder(t *testing.T) {
	r := New()
	var want []string
	for i := 0; i < 25; i++ {
		name := fmt.Sprintf("Font %02d", i)
		want = append(want, name)
		mustCreate(t, r, name)
	}

	got := r.List()
	if len(got) != len(want) {
		t.Fatalf("List() returned %d records, want %d", len(got), len(want))
	}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	seen := make(map[int]bool)
	for _, rec := range got {
		if seen[rec.ID] {
			t.Fatalf("duplicate id %d", rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestCreateInvalidLeavesCollection(t *testing.T) {
	r := New()
	mustCreate(t, r, "Roboto")

	for _, in := range []font.Input{{}, {Name: ""}, {Name: "  "}} {
		if _, err := r.Create(in); !font.IsValidation(err) {
			t.Errorf("Create(%+v) error = %v, want ValidationError", in, err)
		}
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d after failed creates, want 1", r.Len())
	}

	// Failed creates do not consume ids.
	if rec := mustCreate(t, r, "Sansation"); rec.ID != 2 {
		t.Errorf("id after failed creates = %d, want 2", rec.ID)
	}
}

func TestListReturnsCopy(t *testing.T) {
	r := New()
	mustCreate(t, r, "Roboto")

	got := r.List()
	got[0].Name = "mutated"

	if rec, _ := r.Get(1); rec.Name != "Roboto" {
		t.Errorf("registry state changed through List() result: %+v", rec)
	}
}

func TestGet(t *testing.T) {
	r := New()
	rec := mustCreate(t, r, "Roboto")

	got, err := r.Get(rec.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != rec {
		t.Errorf("Get = %+v, want %+v", got, rec)
	}

	if _, err := r.Get(42); !font.IsNotFound(err) {
		t.Errorf("Get(42) error = %v, want NotFoundError", err)
	}
}

func TestUpdate(t *testing.T) {
	r := New()
	mustCreate(t, r, "Roboto")
	target := mustCreate(t, r, "Sansation")
	mustCreate(t, r, "Montserrat")

	updated, err := r.Update(target.ID, font.Patch{
		Size:     strPtr("24px"),
		Category: strPtr("Creativa"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	want := target
	want.Size = "24px"
	want.Category = font.CategoryCreativa
	if updated != want {
		t.Errorf("Update = %+v, want %+v", updated, want)
	}

	if diff := cmp.Diff([]string{"Roboto", "Sansation", "Montserrat"}, names(r.List())); diff != "" {
		t.Errorf("order changed after update (-want +got):\n%s", diff)
	}
}

func TestUpdateErrorsLeaveCollection(t *testing.T) {
	r := New()
	mustCreate(t, r, "Roboto")
	before := r.List()

	if _, err := r.Update(99, font.Patch{Name: strPtr("Lato")}); !font.IsNotFound(err) {
		t.Errorf("Update(99) error = %v, want NotFoundError", err)
	}
	if _, err := r.Update(1, font.Patch{Name: strPtr("")}); !font.IsValidation(err) {
		t.Errorf("Update with blank name error = %v, want ValidationError", err)
	}

	if diff := cmp.Diff(before, r.List()); diff != "" {
		t.Errorf("collection changed (-want +got):\n%s", diff)
	}
}

func TestDeleteMissing(t *testing.T) {
	r := New()
	mustCreate(t, r, "Roboto")

	if _, err := r.Delete(5); !font.IsNotFound(err) {
		t.Errorf("Delete(5) error = %v, want NotFoundError", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}

	if _, err := r.Delete(1); err != nil {
		t.Fatalf("Delete(1) failed: %v", err)
	}
	if _, err := r.Delete(1); !font.IsNotFound(err) {
		t.Errorf("second Delete(1) error = %v, want NotFoundError", err)
	}
}

func TestConcurrentCreatesGetUniqueIDs(t *testing.T) {
	r := New()
	const workers, perWorker = 8, 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := r.Create(font.Input{Name: fmt.Sprintf("w%d-%d", w, i)}); err != nil {
					t.Errorf("Create failed: %v", err)
				}
			}
		}(w)
	}
	wg.Wait()

	recs := r.List()
	if len(recs) != workers*perWorker {
		t.Fatalf("List() returned %d records, want %d", len(recs), workers*perWorker)
	}
	seen := make(map[int]bool, len(recs))
	for _, rec := range recs {
		if seen[rec.ID] {
			t.Fatalf("duplicate id %d", rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestSeedStopsAtInvalidInput(t *testing.T) {
	r := New()
	n, err := r.Seed([]font.Input{{Name: "Roboto"}, {Name: ""}, {Name: "Lato"}})
	if !font.IsValidation(err) {
		t.Fatalf("Seed error = %v, want ValidationError", err)
	}
	if n != 1 || r.Len() != 1 {
		t.Errorf("Seed created %d (Len %d), want 1", n, r.Len())
	}
}

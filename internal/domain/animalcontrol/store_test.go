package animalcontrol

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// -------------------------
// Fake backend (in-memory)
// -------------------------

type fakeBackend struct {
	items  []Record
	nextID int64
	err    error // si != nil, todas las mutaciones fallan
	noBody bool  // Update devuelve Record vacío (API sin cuerpo)
}

func (f *fakeBackend) List(ctx context.Context) ([]Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]Record, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeBackend) Create(ctx context.Context, in CreateInput) (Record, error) {
	if f.err != nil {
		return Record{}, f.err
	}
	f.nextID++
	r := Record{ID: f.nextID, OwnerName: in.OwnerName, RecordType: in.RecordType, Date: in.Date}
	f.items = append(f.items, r)
	return r, nil
}

func (f *fakeBackend) Update(ctx context.Context, id int64, patch UpdateInput) (Record, error) {
	if f.err != nil {
		return Record{}, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i] = patch.Apply(f.items[i])
			if f.noBody {
				return Record{}, nil
			}
			return f.items[i], nil
		}
	}
	return Record{}, errors.New("not found")
}

func (f *fakeBackend) Delete(ctx context.Context, id int64) error {
	return f.err
}

func seededStore(t *testing.T) (*Store, *fakeBackend) {
	t.Helper()
	be := &fakeBackend{
		items: []Record{
			{ID: 1, OwnerName: "Ana", RecordType: RecordTypeCatch, Date: "2024-01-01"},
			{ID: 2, OwnerName: "Luis", RecordType: RecordTypeSurrendered, Date: "2024-01-02"},
			{ID: 3, OwnerName: "Marta", RecordType: RecordTypeCatch, Date: "2024-01-02"},
		},
		nextID: 3,
	}
	s := NewStore(be, nil)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return s, be
}

// -------------------------
// Tests
// -------------------------

func TestStore_Create_PrependsRecord(t *testing.T) {
	s, _ := seededStore(t)
	before := len(s.Records())

	rec, err := s.Create(context.Background(), CreateInput{OwnerName: "Nuevo", RecordType: RecordTypeCatch, Date: "2024-02-01"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got := s.Records()
	if len(got) != before+1 {
		t.Fatalf("expected %d records, got %d", before+1, len(got))
	}
	if got[0].ID != rec.ID {
		t.Fatalf("expected created record first, got id %d", got[0].ID)
	}
}

func TestStore_Update_ReplacesOnlyThatRecord(t *testing.T) {
	s, _ := seededStore(t)
	before := s.Records()

	addr := "123 Main"
	if _, err := s.Update(context.Background(), 2, UpdateInput{Address: &addr}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	after := s.Records()
	if len(after) != len(before) {
		t.Fatalf("expected length unchanged, got %d -> %d", len(before), len(after))
	}

	want := make([]Record, len(before))
	copy(want, before)
	want[1].Address = "123 Main"
	if diff := cmp.Diff(want, after); diff != "" {
		t.Fatalf("unexpected records (-want +got):\n%s", diff)
	}
}

func TestStore_Update_WithoutBodyAppliesPatchLocally(t *testing.T) {
	s, be := seededStore(t)
	be.noBody = true

	g := GenderFemale
	rec, err := s.Update(context.Background(), 3, UpdateInput{Gender: &g})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.ID != 3 || rec.Gender != GenderFemale {
		t.Fatalf("expected patched record 3, got %#v", rec)
	}
	got, _ := s.Get(3)
	if got.Gender != GenderFemale || got.OwnerName != "Marta" {
		t.Fatalf("expected local patch applied, got %#v", got)
	}
}

func TestStore_Delete_RemovesRecord(t *testing.T) {
	s, _ := seededStore(t)
	before := len(s.Records())

	if err := s.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	got := s.Records()
	if len(got) != before-1 {
		t.Fatalf("expected %d records, got %d", before-1, len(got))
	}
	if _, ok := s.Get(1); ok {
		t.Fatalf("expected record 1 to be gone")
	}
}

func TestStore_FailureKeepsListAndStoresMessage(t *testing.T) {
	s, be := seededStore(t)
	before := s.Records()
	be.err = errors.New("http error: status=500 Internal Server Error")

	if err := s.Delete(context.Background(), 1); err == nil {
		t.Fatalf("expected error from Delete")
	}
	if s.Err() != "http error: status=500 Internal Server Error" {
		t.Fatalf("expected error message stored, got %q", s.Err())
	}
	if diff := cmp.Diff(before, s.Records()); diff != "" {
		t.Fatalf("list changed after failed delete:\n%s", diff)
	}

	// la siguiente operación exitosa limpia el error
	be.err = nil
	if _, err := s.Create(context.Background(), CreateInput{OwnerName: "X", RecordType: RecordTypeCatch, Date: "2024-01-03"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if s.Err() != "" {
		t.Fatalf("expected error cleared, got %q", s.Err())
	}
}

func TestStore_LoadFailure(t *testing.T) {
	s := NewStore(&fakeBackend{err: errors.New("boom")}, nil)

	if err := s.Load(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if s.Loaded() || s.Loading() {
		t.Fatalf("expected loaded=false loading=false after failure")
	}
	if s.Err() != "boom" {
		t.Fatalf("expected boom, got %q", s.Err())
	}
}

package reproductive

import (
	"context"
	"errors"
	"testing"
)

type fakeBackend struct {
	items     []Record
	nextID    int64
	listCalls int
	lastQuery ListQuery
	err       error
}

func (f *fakeBackend) List(ctx context.Context, q ListQuery) ([]Record, error) {
	f.listCalls++
	f.lastQuery = q
	out := make([]Record, 0, len(f.items))
	for _, r := range f.items {
		if Matches(r, q.Species, q.Search) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBackend) Create(ctx context.Context, in Input) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	f.items = append(f.items, Record{ID: f.nextID, Name: in.Name, OwnerName: in.OwnerName, Species: in.Species})
	return f.nextID, nil
}

func (f *fakeBackend) Update(ctx context.Context, id int64, in Input) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i] = Record{ID: id, Name: in.Name, OwnerName: in.OwnerName, Species: in.Species, Color: in.Color}
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeBackend) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	out := f.items[:0]
	for _, r := range f.items {
		if r.ID != id {
			out = append(out, r)
		}
	}
	f.items = out
	return nil
}

func TestStore_MutationsRefetchWithLastQuery(t *testing.T) {
	be := &fakeBackend{items: []Record{
		{ID: 1, Name: "Max", Species: SpeciesCanine},
		{ID: 2, Name: "Luna", Species: SpeciesFeline},
	}, nextID: 2}
	s := NewStore(be, nil)

	if err := s.Load(context.Background(), ListQuery{Species: SpeciesCanine}); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(s.Records()) != 1 {
		t.Fatalf("expected 1 canine record, got %d", len(s.Records()))
	}

	id, err := s.Create(context.Background(), Input{Name: "Rex", OwnerName: "Ana", Species: SpeciesCanine})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != 3 {
		t.Fatalf("expected id 3, got %d", id)
	}
	if be.listCalls != 2 || be.lastQuery.Species != SpeciesCanine {
		t.Fatalf("expected refetch with canine query, got calls=%d query=%#v", be.listCalls, be.lastQuery)
	}
	if _, ok := s.Get(3); !ok {
		t.Fatalf("expected created record after refetch")
	}

	if err := s.Update(context.Background(), 3, Input{Name: "Rex", OwnerName: "Ana", Species: SpeciesCanine, Color: "brown"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if r, _ := s.Get(3); r.Color != "brown" {
		t.Fatalf("expected updated color, got %#v", r)
	}

	if err := s.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := s.Get(1); ok {
		t.Fatalf("expected record 1 gone")
	}
	if be.listCalls != 4 {
		t.Fatalf("expected 4 list calls, got %d", be.listCalls)
	}
}

func TestStore_FailedMutationDoesNotRefetch(t *testing.T) {
	be := &fakeBackend{items: []Record{{ID: 1, Name: "Max", Species: SpeciesCanine}}}
	s := NewStore(be, nil)
	_ = s.Load(context.Background(), ListQuery{})

	be.err = errors.New("http error: status=400 Bad Request")
	if err := s.Delete(context.Background(), 1); err == nil {
		t.Fatalf("expected error")
	}
	if be.listCalls != 1 {
		t.Fatalf("expected no refetch after failure, got %d list calls", be.listCalls)
	}
	if s.Err() != "http error: status=400 Bad Request" {
		t.Fatalf("unexpected error message %q", s.Err())
	}
	if len(s.Records()) != 1 {
		t.Fatalf("expected list untouched")
	}
}

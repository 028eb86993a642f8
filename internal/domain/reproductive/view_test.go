package reproductive

import (
	"fmt"
	"testing"
)

func manyRecords(n int) []Record {
	out := make([]Record, 0, n)
	for i := 1; i <= n; i++ {
		sp := SpeciesCanine
		if i%2 == 0 {
			sp = SpeciesFeline
		}
		out = append(out, Record{ID: int64(i), Name: fmt.Sprintf("pet-%02d", i), OwnerName: "owner", Species: sp})
	}
	return out
}

func TestView_PaginatesWithFixedPageSize(t *testing.T) {
	v := NewView(10)
	records := manyRecords(25)

	p := v.Apply(records)
	if p.TotalItems != 25 || p.TotalPages != 3 || len(p.Items) != 10 || p.Page != 1 {
		t.Fatalf("unexpected first page: %+v", p)
	}

	v.SetPage(3)
	p = v.Apply(records)
	if len(p.Items) != 5 || p.Items[0].ID != 21 {
		t.Fatalf("unexpected last page: %d items, first=%d", len(p.Items), p.Items[0].ID)
	}
}

func TestView_FilterOrSearchChangeResetsPage(t *testing.T) {
	v := NewView(5)
	records := manyRecords(30)

	v.SetPage(4)
	if v.Apply(records).Page != 4 {
		t.Fatalf("expected page 4")
	}

	v.SetSpecies(SpeciesFeline)
	if v.CurrentPage() != 1 {
		t.Fatalf("expected page reset after species change, got %d", v.CurrentPage())
	}
	p := v.Apply(records)
	if p.TotalItems != 15 {
		t.Fatalf("expected 15 feline records, got %d", p.TotalItems)
	}

	v.SetPage(2)
	v.SetSearch("pet-1")
	if v.CurrentPage() != 1 {
		t.Fatalf("expected page reset after search change, got %d", v.CurrentPage())
	}
}

func TestView_PageClampedToTotal(t *testing.T) {
	v := NewView(10)
	v.SetPage(9)

	p := v.Apply(manyRecords(3))
	if p.Page != 1 || p.TotalPages != 1 || len(p.Items) != 3 {
		t.Fatalf("unexpected clamp result: %+v", p)
	}

	empty := v.Apply(nil)
	if empty.TotalPages != 1 || len(empty.Items) != 0 {
		t.Fatalf("unexpected empty page: %+v", empty)
	}
}

func TestFilter_SpeciesPartition(t *testing.T) {
	records := manyRecords(7)
	canine := Filter(records, SpeciesCanine, "")
	feline := Filter(records, SpeciesFeline, "")
	if len(canine)+len(feline) != len(records) {
		t.Fatalf("species partition lost records: %d + %d != %d", len(canine), len(feline), len(records))
	}
}

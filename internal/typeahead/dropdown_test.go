package typeahead

import (
	"errors"
	"testing"
)

type pet struct {
	ID   int
	Name string
}

func newPetDropdown() *Dropdown[pet] {
	d := New("pets", func(p pet) string { return p.Name })
	d.SetCandidates([]pet{{1, "Firulais"}, {2, "Luna"}, {3, "Lunita"}})
	return d
}

func TestDropdown_FocusOpensWithAllCandidates(t *testing.T) {
	d := newPetDropdown()
	if d.State() != Closed {
		t.Fatalf("expected closed initially")
	}

	d.Focus()
	if !d.IsOpen() || len(d.Matches()) != 3 {
		t.Fatalf("expected open with 3 matches, got %s/%d", d.State(), len(d.Matches()))
	}
}

func TestDropdown_TypeFiltersCaseInsensitive(t *testing.T) {
	d := newPetDropdown()
	d.Type("LUN")

	if !d.IsOpen() {
		t.Fatalf("expected keystroke to open dropdown")
	}
	if len(d.Matches()) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(d.Matches()))
	}
	if d.Message() != "" {
		t.Fatalf("expected no message with matches, got %q", d.Message())
	}
}

func TestDropdown_NoMatchKeepsOpenWithMessage(t *testing.T) {
	d := newPetDropdown()
	d.Type("zzz")

	if !d.IsOpen() {
		t.Fatalf("expected dropdown to stay open")
	}
	if got := d.Message(); got != `No pets found matching "zzz"` {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestDropdown_OutsideClickCloses_InsideDoesNot(t *testing.T) {
	d := newPetDropdown()
	d.Focus()

	d.PointerDown(RegionInput)
	d.PointerDown(RegionList)
	if !d.IsOpen() {
		t.Fatalf("clicks inside input/list must not close")
	}

	d.PointerDown(RegionOutside)
	if d.IsOpen() {
		t.Fatalf("outside click must close")
	}
	if d.Message() != "" {
		t.Fatalf("closed dropdown has no message")
	}
}

func TestDropdown_SelectClosesAndSetsTerm(t *testing.T) {
	d := newPetDropdown()
	d.Type("lun")

	p, err := d.Select(1)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if p.ID != 3 || d.Term() != "Lunita" || d.IsOpen() {
		t.Fatalf("unexpected state after select: %#v term=%q state=%s", p, d.Term(), d.State())
	}
	if sel, ok := d.Selected(); !ok || sel.ID != 3 {
		t.Fatalf("expected selection kept")
	}

	d.Type("Lunit")
	if _, ok := d.Selected(); ok {
		t.Fatalf("typing should clear the selection")
	}

	if _, err := d.Select(99); !errors.Is(err, ErrNoSuchCandidate) {
		t.Fatalf("expected ErrNoSuchCandidate, got %v", err)
	}
}

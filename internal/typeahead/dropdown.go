// Package typeahead modela el dropdown de búsqueda (dueños / mascotas) como
// una máquina de estados explícita, sin depender de la superficie de render.
//
//	closed --(Focus | Type)--> open --(PointerDown fuera | Select)--> closed
package typeahead

import (
	"errors"
	"fmt"
	"strings"
)

type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Region es dónde cayó un click/tap respecto del componente.
type Region int

const (
	RegionOutside Region = iota
	RegionInput
	RegionList
)

var ErrNoSuchCandidate = errors.New("typeahead: no such candidate")

// Dropdown filtra candidates por substring (case-insensitive) sobre label.
type Dropdown[T any] struct {
	noun  string // "pets", "owners"
	label func(T) string

	state    State
	term     string
	all      []T
	matches  []T
	selected *T
}

func New[T any](noun string, label func(T) string) *Dropdown[T] {
	return &Dropdown[T]{noun: noun, label: label, matches: []T{}}
}

// SetCandidates reemplaza la lista completa (resultado del fetch).
func (d *Dropdown[T]) SetCandidates(all []T) {
	d.all = all
	d.refilter()
}

func (d *Dropdown[T]) Focus() {
	d.state = Open
	d.refilter()
}

// Type actualiza el término (cada tecla). Escribir invalida la selección previa.
func (d *Dropdown[T]) Type(term string) {
	d.term = term
	d.selected = nil
	d.state = Open
	d.refilter()
}

// PointerDown cierra si el click fue fuera del input y de la lista.
func (d *Dropdown[T]) PointerDown(r Region) {
	if r == RegionOutside {
		d.state = Closed
	}
}

// Select elige el candidato i de Matches() y cierra.
func (d *Dropdown[T]) Select(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(d.matches) {
		return zero, ErrNoSuchCandidate
	}
	v := d.matches[i]
	d.selected = &v
	d.term = d.label(v)
	d.state = Closed
	return v, nil
}

func (d *Dropdown[T]) State() State { return d.state }
func (d *Dropdown[T]) IsOpen() bool { return d.state == Open }
func (d *Dropdown[T]) Term() string { return d.term }
func (d *Dropdown[T]) Matches() []T { return d.matches }

func (d *Dropdown[T]) Selected() (T, bool) {
	if d.selected == nil {
		var zero T
		return zero, false
	}
	return *d.selected, true
}

// Message es el texto a mostrar dentro del dropdown abierto cuando no hay
// coincidencias; "" en cualquier otro caso.
func (d *Dropdown[T]) Message() string {
	if d.state != Open || len(d.matches) > 0 {
		return ""
	}
	term := strings.TrimSpace(d.term)
	if term == "" {
		return fmt.Sprintf("No %s available", d.noun)
	}
	return fmt.Sprintf("No %s found matching %q", d.noun, term)
}

func (d *Dropdown[T]) refilter() {
	q := strings.ToLower(strings.TrimSpace(d.term))
	out := make([]T, 0, len(d.all))
	for _, c := range d.all {
		if q == "" || strings.Contains(strings.ToLower(d.label(c)), q) {
			out = append(out, c)
		}
	}
	d.matches = out
}

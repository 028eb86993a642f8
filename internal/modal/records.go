package modal

import (
	"context"
	"strings"
	"time"

	"animal-control-admin/internal/domain/animalcontrol"
	"animal-control-admin/internal/domain/directory"
	"animal-control-admin/internal/domain/reproductive"
	"animal-control-admin/internal/platform/logger"
	"animal-control-admin/internal/typeahead"
)

type AnimalControlStore interface {
	Create(ctx context.Context, in animalcontrol.CreateInput) (animalcontrol.Record, error)
	Update(ctx context.Context, id int64, patch animalcontrol.UpdateInput) (animalcontrol.Record, error)
	Delete(ctx context.Context, id int64) error
}

type ReproductiveStore interface {
	Create(ctx context.Context, in reproductive.Input) (int64, error)
	Update(ctx context.Context, id int64, in reproductive.Input) error
	Delete(ctx context.Context, id int64) error
}

// -------------------------
// Animal control
// -------------------------

// AnimalControlAdd es el formulario de alta con búsqueda de dueño.
// Si el create falla queda abierto con el error (no se traga).
type AnimalControlAdd struct {
	*Add[animalcontrol.CreateInput]
	Owners *typeahead.Dropdown[directory.User]
}

func NewAnimalControlAdd(store AnimalControlStore, tab animalcontrol.RecordType, now func() time.Time, log logger.Logger) *AnimalControlAdd {
	if now == nil {
		now = time.Now
	}
	initial := func() animalcontrol.CreateInput {
		return animalcontrol.CreateInput{RecordType: tab, Date: now().Format("2006-01-02")}
	}
	submit := func(ctx context.Context, in animalcontrol.CreateInput) error {
		_, err := store.Create(ctx, in)
		return err
	}
	return &AnimalControlAdd{
		Add:    NewAdd[animalcontrol.CreateInput](initial, submit, log),
		Owners: typeahead.New("owners", directory.User.DisplayName),
	}
}

// LoadOwners trae los usuarios para el typeahead.
func (m *AnimalControlAdd) LoadOwners(ctx context.Context, src directory.Source) error {
	users, err := src.Users(ctx)
	if err != nil {
		return err
	}
	m.Owners.SetCandidates(users)
	return nil
}

// TypeOwner escribe en el campo dueño y filtra.
func (m *AnimalControlAdd) TypeOwner(term string) {
	m.Owners.Type(term)
	m.Set(func(s *animalcontrol.CreateInput) { s.OwnerName = term })
}

// SelectOwner copia nombre/contacto/dirección del usuario elegido.
func (m *AnimalControlAdd) SelectOwner(i int) error {
	u, err := m.Owners.Select(i)
	if err != nil {
		return err
	}
	m.Set(func(s *animalcontrol.CreateInput) {
		s.OwnerName = u.DisplayName()
		if u.ContactNumber != "" {
			s.ContactNumber = u.ContactNumber
		}
		if u.Address != "" {
			s.Address = u.Address
		}
	})
	return nil
}

// AnimalControlEdit manda solo lo que cambió respecto del registro original.
type AnimalControlEdit struct {
	*Edit[animalcontrol.CreateInput]
	orig animalcontrol.Record
}

func NewAnimalControlEdit(store AnimalControlStore, log logger.Logger) *AnimalControlEdit {
	m := &AnimalControlEdit{}
	m.Edit = NewEdit[animalcontrol.CreateInput](func(ctx context.Context, form animalcontrol.CreateInput) error {
		patch := animalcontrol.Diff(m.orig, form)
		if patch.IsEmpty() {
			return nil
		}
		_, err := store.Update(ctx, m.orig.ID, patch)
		return err
	}, log)
	return m
}

func (m *AnimalControlEdit) Open(r animalcontrol.Record) {
	m.orig = r
	m.Edit.Open(animalcontrol.FormOf(r))
}

func (m *AnimalControlEdit) Original() animalcontrol.Record { return m.orig }

// -------------------------
// Reproductive
// -------------------------

// ReproductiveAdd es el formulario de alta con búsqueda de mascota.
type ReproductiveAdd struct {
	*Add[reproductive.Input]
	Pets *typeahead.Dropdown[directory.Pet]
}

func NewReproductiveAdd(store ReproductiveStore, log logger.Logger) *ReproductiveAdd {
	submit := func(ctx context.Context, in reproductive.Input) error {
		_, err := store.Create(ctx, in)
		return err
	}
	return &ReproductiveAdd{
		Add:  NewAdd[reproductive.Input](nil, submit, log),
		Pets: typeahead.New("pets", func(p directory.Pet) string { return p.Name }),
	}
}

func (m *ReproductiveAdd) LoadPets(ctx context.Context, src directory.Source) error {
	pets, err := src.Pets(ctx)
	if err != nil {
		return err
	}
	m.Pets.SetCandidates(pets)
	return nil
}

func (m *ReproductiveAdd) TypePet(term string) {
	m.Pets.Type(term)
	m.Set(func(s *reproductive.Input) { s.Name = term })
}

// SelectPet copia los datos de la mascota elegida al formulario.
func (m *ReproductiveAdd) SelectPet(i int) error {
	p, err := m.Pets.Select(i)
	if err != nil {
		return err
	}
	m.Set(func(s *reproductive.Input) {
		s.Name = p.Name
		s.OwnerName = p.OwnerName
		s.Species = SpeciesOf(p.Species)
		s.Breed = p.Breed
		s.Color = p.Color
		s.Gender = strings.ToLower(p.Gender)
		s.DateOfBirth = animalcontrol.DayOf(p.DateOfBirth)
	})
	return nil
}

// SpeciesOf normaliza la especie del registro de mascotas ("dog", "Cat", ...).
func SpeciesOf(s string) reproductive.Species {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "canine", "dog":
		return reproductive.SpeciesCanine
	case "feline", "cat":
		return reproductive.SpeciesFeline
	default:
		return ""
	}
}

// ReproductiveEdit manda el formulario completo.
type ReproductiveEdit struct {
	*Edit[reproductive.Input]
	id int64
}

func NewReproductiveEdit(store ReproductiveStore, log logger.Logger) *ReproductiveEdit {
	m := &ReproductiveEdit{}
	m.Edit = NewEdit[reproductive.Input](func(ctx context.Context, in reproductive.Input) error {
		return store.Update(ctx, m.id, in)
	}, log)
	return m
}

func (m *ReproductiveEdit) Open(r reproductive.Record) {
	m.id = r.ID
	m.Edit.Open(reproductive.InputOf(r))
}

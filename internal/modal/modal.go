package modal

import (
	"context"

	"animal-control-admin/internal/platform/logger"
)

// SubmitFunc es la acción que el formulario dispara al confirmar
// (normalmente un método del store).
type SubmitFunc[T any] func(ctx context.Context, state T) error

// form es el estado común: abierto/cerrado, estado local y último error.
type form[T any] struct {
	open       bool
	state      T
	err        string
	submitting bool
	log        logger.Logger
}

func (f *form[T]) IsOpen() bool      { return f.open }
func (f *form[T]) State() T          { return f.state }
func (f *form[T]) Err() string       { return f.err }
func (f *form[T]) Submitting() bool  { return f.submitting }
func (f *form[T]) Set(fn func(s *T)) { fn(&f.state) }
func (f *form[T]) Close()            { f.open = false; f.err = "" }
func (f *form[T]) fail(err error)    { f.err = err.Error() }
func (f *form[T]) lg() logger.Logger {
	if f.log == nil {
		return logger.Nop()
	}
	return f.log
}

// run valida, llama submit y deja el error visible si falla.
func (f *form[T]) run(ctx context.Context, submit SubmitFunc[T], kind string) error {
	if err := Validate(f.state); err != nil {
		f.fail(err)
		return err
	}
	f.submitting = true
	err := submit(ctx, f.state)
	f.submitting = false
	if err != nil {
		f.fail(err)
		f.lg().Warn("submit failed", map[string]any{"modal": kind, "error": err.Error()})
		return err
	}
	f.err = ""
	f.open = false
	return nil
}

// Add: abre vacío (o con initial), resetea después de un submit exitoso,
// queda abierto con el error si falla.
type Add[T any] struct {
	form[T]
	initial func() T
	submit  SubmitFunc[T]
}

func NewAdd[T any](initial func() T, submit SubmitFunc[T], log logger.Logger) *Add[T] {
	m := &Add[T]{initial: initial, submit: submit}
	m.log = log
	m.reset()
	return m
}

func (m *Add[T]) Open() {
	m.open = true
	m.err = ""
}

func (m *Add[T]) Submit(ctx context.Context) error {
	if err := m.run(ctx, m.submit, "add"); err != nil {
		return err
	}
	m.reset()
	return nil
}

func (m *Add[T]) reset() {
	if m.initial != nil {
		m.state = m.initial()
		return
	}
	var zero T
	m.state = zero
}

// Edit: se siembra con el registro al abrir.
type Edit[T any] struct {
	form[T]
	submit SubmitFunc[T]
}

func NewEdit[T any](submit SubmitFunc[T], log logger.Logger) *Edit[T] {
	m := &Edit[T]{submit: submit}
	m.log = log
	return m
}

func (m *Edit[T]) Open(seed T) {
	m.state = seed
	m.err = ""
	m.open = true
}

func (m *Edit[T]) Submit(ctx context.Context) error {
	return m.run(ctx, m.submit, "edit")
}

// Confirm es el diálogo de borrado de un id.
type Confirm struct {
	open   bool
	id     int64
	label  string
	err    string
	remove func(ctx context.Context, id int64) error
	log    logger.Logger
}

func NewConfirm(remove func(ctx context.Context, id int64) error, log logger.Logger) *Confirm {
	if log == nil {
		log = logger.Nop()
	}
	return &Confirm{remove: remove, log: log}
}

func (m *Confirm) Open(id int64, label string) {
	m.open = true
	m.id = id
	m.label = label
	m.err = ""
}

func (m *Confirm) Close() {
	m.open = false
	m.err = ""
}

// Confirm borra; si falla queda abierto con el mensaje.
func (m *Confirm) Confirm(ctx context.Context) error {
	if err := m.remove(ctx, m.id); err != nil {
		m.err = err.Error()
		m.log.Warn("delete failed", map[string]any{"id": m.id, "error": err.Error()})
		return err
	}
	m.open = false
	m.err = ""
	return nil
}

func (m *Confirm) IsOpen() bool  { return m.open }
func (m *Confirm) ID() int64     { return m.id }
func (m *Confirm) Label() string { return m.label }
func (m *Confirm) Err() string   { return m.err }

// View es de solo lectura.
type View[T any] struct {
	open   bool
	record T
}

func (m *View[T]) Open(r T)     { m.record = r; m.open = true }
func (m *View[T]) Close()       { m.open = false }
func (m *View[T]) IsOpen() bool { return m.open }
func (m *View[T]) Record() T    { return m.record }

package animalcontrol

import (
	"context"
	"sync"

	"animal-control-admin/internal/platform/logger"
)

// Store mantiene la lista en memoria y la reconcilia localmente después de
// cada mutación (prepend / replace-by-id / filter-out), sin refetch.
// El estado solo cambia cuando la llamada al API terminó.
type Store struct {
	backend Backend
	log     logger.Logger

	mu      sync.RWMutex
	records []Record
	loaded  bool
	loading bool
	err     string
}

func NewStore(backend Backend, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		backend: backend,
		log:     log.With(map[string]any{"store": "animal_control"}),
		records: []Record{},
	}
}

// Load trae la lista completa y reemplaza la local.
func (s *Store) Load(ctx context.Context) error {
	s.begin()

	items, err := s.backend.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		s.log.Error("load records failed", map[string]any{"error": err.Error()})
		return err
	}
	s.records = items
	s.loaded = true
	return nil
}

// Create agrega el registro creado al principio de la lista.
func (s *Store) Create(ctx context.Context, in CreateInput) (Record, error) {
	s.clearErr()

	rec, err := s.backend.Create(ctx, in)
	if err != nil {
		s.fail("create record failed", err)
		return Record{}, err
	}

	s.mu.Lock()
	s.records = append([]Record{rec}, s.records...)
	s.mu.Unlock()

	s.log.Info("record created", map[string]any{"id": rec.ID, "record_type": rec.RecordType})
	return rec, nil
}

// Update reemplaza el registro con ese id por la respuesta del API.
// Si el API no devuelve cuerpo, aplica el patch sobre la copia local.
func (s *Store) Update(ctx context.Context, id int64, patch UpdateInput) (Record, error) {
	s.clearErr()

	rec, err := s.backend.Update(ctx, id, patch)
	if err != nil {
		s.fail("update record failed", err)
		return Record{}, err
	}

	s.mu.Lock()
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if rec.ID == 0 {
			rec = patch.Apply(s.records[i])
		}
		s.records[i] = rec
	}
	s.mu.Unlock()

	if rec.ID == 0 {
		rec.ID = id
	}
	return rec, nil
}

// Delete saca el registro de la lista.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.clearErr()

	if err := s.backend.Delete(ctx, id); err != nil {
		s.fail("delete record failed", err)
		return err
	}

	s.mu.Lock()
	out := s.records[:0:0]
	for _, r := range s.records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	s.records = out
	s.mu.Unlock()
	return nil
}

// Records devuelve una copia de la lista actual.
func (s *Store) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Get(id int64) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err es el mensaje del último error ("" si la última operación salió bien).
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Store) clearErr() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *Store) fail(msg string, err error) {
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
	s.log.Error(msg, map[string]any{"error": err.Error()})
}

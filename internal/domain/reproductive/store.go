package reproductive

import (
	"context"
	"sync"

	"animal-control-admin/internal/platform/logger"
)

// Store mantiene la lista y la vuelve a pedir después de cada mutación
// (el POST solo devuelve el id, no hay registro para reconciliar localmente).
type Store struct {
	backend Backend
	log     logger.Logger

	mu      sync.RWMutex
	query   ListQuery
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
		log:     log.With(map[string]any{"store": "reproductive"}),
		records: []Record{},
	}
}

// Load pide la lista con q y la recuerda para los refetch.
func (s *Store) Load(ctx context.Context, q ListQuery) error {
	s.mu.Lock()
	s.query = q
	s.mu.Unlock()
	return s.refetch(ctx)
}

func (s *Store) Create(ctx context.Context, in Input) (int64, error) {
	s.clearErr()
	id, err := s.backend.Create(ctx, in)
	if err != nil {
		s.fail("create record failed", err)
		return 0, err
	}
	s.log.Info("record created", map[string]any{"id": id})
	return id, s.refetch(ctx)
}

func (s *Store) Update(ctx context.Context, id int64, in Input) error {
	s.clearErr()
	if err := s.backend.Update(ctx, id, in); err != nil {
		s.fail("update record failed", err)
		return err
	}
	return s.refetch(ctx)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	s.clearErr()
	if err := s.backend.Delete(ctx, id); err != nil {
		s.fail("delete record failed", err)
		return err
	}
	return s.refetch(ctx)
}

func (s *Store) refetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	q := s.query
	s.mu.Unlock()

	items, err := s.backend.List(ctx, q)

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

func (s *Store) Query() ListQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
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

func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
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

package pages

import (
	"context"
	"sync"
	"time"

	"animal-control-admin/internal/domain/animalcontrol"
	"animal-control-admin/internal/domain/reproductive"
	"animal-control-admin/internal/platform/logger"
	"animal-control-admin/internal/session"

	"github.com/patrickmn/go-cache"
)

// Workspace es el estado de página de una sesión: las listas en memoria y
// la vista (filtro/búsqueda/página) de reproductive.
type Workspace struct {
	AnimalControl *animalcontrol.Store
	Reproductive  *reproductive.Store

	mu   sync.Mutex // protege View
	View *reproductive.View
}

// AnimalControlRecords devuelve la lista actual, cargándola la primera vez.
func (w *Workspace) AnimalControlRecords(ctx context.Context) ([]animalcontrol.Record, error) {
	if !w.AnimalControl.Loaded() {
		if err := w.AnimalControl.Load(ctx); err != nil {
			return nil, err
		}
	}
	return w.AnimalControl.Records(), nil
}

func (w *Workspace) ReproductiveRecords(ctx context.Context) ([]reproductive.Record, error) {
	if !w.Reproductive.Loaded() {
		if err := w.Reproductive.Load(ctx, reproductive.ListQuery{}); err != nil {
			return nil, err
		}
	}
	return w.Reproductive.Records(), nil
}

// Workspaces guarda un Workspace por token. Vencen tras ttl sin uso.
type Workspaces struct {
	animalControl animalcontrol.Backend
	reproductive  reproductive.Backend
	pageSize      int
	log           logger.Logger

	mu    sync.Mutex
	cache *cache.Cache
}

func NewWorkspaces(ac animalcontrol.Backend, rp reproductive.Backend, pageSize int, ttl time.Duration, log logger.Logger) *Workspaces {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Workspaces{
		animalControl: ac,
		reproductive:  rp,
		pageSize:      pageSize,
		log:           log,
		cache:         cache.New(ttl, ttl),
	}
}

func (ws *Workspaces) For(ctx context.Context) *Workspace {
	key := "ws:" + session.FromContext(ctx).Token

	ws.mu.Lock()
	defer ws.mu.Unlock()

	if v, ok := ws.cache.Get(key); ok {
		w := v.(*Workspace)
		ws.cache.SetDefault(key, w) // renueva el vencimiento
		return w
	}

	w := &Workspace{
		AnimalControl: animalcontrol.NewStore(ws.animalControl, ws.log),
		Reproductive:  reproductive.NewStore(ws.reproductive, ws.log),
		View:          reproductive.NewView(ws.pageSize),
	}
	ws.cache.SetDefault(key, w)
	return w
}

// Reset descarta el estado de todas las sesiones.
func (ws *Workspaces) Reset() {
	ws.cache.Flush()
}

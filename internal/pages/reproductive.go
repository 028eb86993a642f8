package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"animal-control-admin/internal/domain/reproductive"
	"animal-control-admin/internal/modal"
	"animal-control-admin/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

type ReproductivePage struct {
	Workspaces *Workspaces
	Log        logger.Logger
}

func RegisterReproductive(r chi.Router, p ReproductivePage) {
	if p.Log == nil {
		p.Log = logger.Nop()
	}

	r.Route("/reproductive", func(rr chi.Router) {
		rr.Get("/", p.list)
		rr.Post("/", p.create)
		rr.Post("/refresh", p.refresh)

		rr.Get("/{id}", p.get)
		rr.Put("/{id}", p.update)
		rr.Delete("/{id}", p.remove)
	})
}

type reproductiveListResponse struct {
	Species reproductive.Species `json:"species"`
	Search  string               `json:"search"`
	reproductive.Page
	Error string `json:"error,omitempty"`
}

// applyView pasa los query params a la vista de la sesión. Solo un cambio
// real de species/search vuelve a la página 1.
func applyView(v *reproductive.View, r *http.Request) error {
	q := r.URL.Query()

	if q.Has("species") {
		sp := reproductive.Species(strings.TrimSpace(q.Get("species")))
		if sp != "" && sp != reproductive.SpeciesAll && !sp.Valid() {
			return fmt.Errorf("%w: species must be all, canine or feline", reproductive.ErrInvalidInput)
		}
		if sp == "" {
			sp = reproductive.SpeciesAll
		}
		if sp != v.Species() {
			v.SetSpecies(sp)
		}
	}
	if q.Has("search") && q.Get("search") != v.Search() {
		v.SetSearch(q.Get("search"))
	}
	if q.Has("page") {
		n, err := strconv.Atoi(q.Get("page"))
		if err != nil {
			return fmt.Errorf("%w: page must be a number", reproductive.ErrInvalidInput)
		}
		v.SetPage(n)
	}
	return nil
}

func (p ReproductivePage) render(w http.ResponseWriter, r *http.Request, ws *Workspace) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if err := applyView(ws.View, r); err != nil {
		writeError(w, err)
		return
	}
	page := ws.View.Apply(ws.Reproductive.Records())
	writeJSON(w, http.StatusOK, reproductiveListResponse{
		Species: ws.View.Species(),
		Search:  ws.View.Search(),
		Page:    page,
		Error:   ws.Reproductive.Err(),
	})
}

func (p ReproductivePage) list(w http.ResponseWriter, r *http.Request) {
	ws := p.Workspaces.For(r.Context())
	if _, err := ws.ReproductiveRecords(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	p.render(w, r, ws)
}

func (p ReproductivePage) refresh(w http.ResponseWriter, r *http.Request) {
	ws := p.Workspaces.For(r.Context())
	if err := ws.Reproductive.Load(r.Context(), ws.Reproductive.Query()); err != nil {
		writeError(w, err)
		return
	}
	p.render(w, r, ws)
}

func (p ReproductivePage) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	ws := p.Workspaces.For(r.Context())
	if _, err := ws.ReproductiveRecords(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	rec, ok := ws.Reproductive.Get(id)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	var view modal.View[reproductive.Record]
	view.Open(rec)
	writeJSON(w, http.StatusOK, view.Record())
}

// idCapture guarda el id que devolvió el POST.
type idCapture struct {
	*reproductive.Store
	id int64
}

func (c *idCapture) Create(ctx context.Context, in reproductive.Input) (int64, error) {
	id, err := c.Store.Create(ctx, in)
	c.id = id
	return id, err
}

func (p ReproductivePage) create(w http.ResponseWriter, r *http.Request) {
	var req reproductive.Input
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	ws := p.Workspaces.For(r.Context())
	store := &idCapture{Store: ws.Reproductive}

	add := modal.NewReproductiveAdd(store, p.Log)
	add.Open()
	add.Set(func(s *reproductive.Input) { *s = req })
	if err := add.Submit(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": store.id})
}

func (p ReproductivePage) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	ws := p.Workspaces.For(r.Context())
	if _, err := ws.ReproductiveRecords(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	orig, ok := ws.Reproductive.Get(id)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	edit := modal.NewReproductiveEdit(ws.Reproductive, p.Log)
	edit.Open(orig)

	form := edit.State()
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	edit.Set(func(s *reproductive.Input) { *s = form })

	if err := edit.Submit(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	rec, _ := ws.Reproductive.Get(id)
	writeJSON(w, http.StatusOK, rec)
}

func (p ReproductivePage) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	ws := p.Workspaces.For(r.Context())
	label := ""
	if rec, ok := ws.Reproductive.Get(id); ok {
		label = rec.Name
	}

	confirm := modal.NewConfirm(ws.Reproductive.Delete, p.Log)
	confirm.Open(id, label)
	if err := confirm.Confirm(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

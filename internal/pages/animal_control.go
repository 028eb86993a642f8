package pages

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"animal-control-admin/internal/domain/animalcontrol"
	"animal-control-admin/internal/export"
	"animal-control-admin/internal/modal"
	"animal-control-admin/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// StatisticsSource es el endpoint de dashboard del API.
type StatisticsSource interface {
	Statistics(ctx context.Context, day string) (animalcontrol.Statistics, error)
}

type AnimalControlPage struct {
	Workspaces *Workspaces
	Stats      StatisticsSource
	Exporter   *export.Exporter
	Now        func() time.Time
	Log        logger.Logger
}

func RegisterAnimalControl(r chi.Router, p AnimalControlPage) {
	if p.Now == nil {
		p.Now = time.Now
	}
	if p.Log == nil {
		p.Log = logger.Nop()
	}

	r.Route("/animal-control", func(ar chi.Router) {
		ar.Get("/", p.list)
		ar.Post("/", p.create)
		ar.Post("/refresh", p.refresh)
		ar.Get("/statistics", p.statistics)
		ar.Get("/export", p.export)

		ar.Get("/{id}", p.get)
		ar.Put("/{id}", p.update)
		ar.Delete("/{id}", p.remove)
	})
}

type tabCounts struct {
	Catch       int `json:"catch"`
	Surrendered int `json:"surrendered"`
}

type animalControlListResponse struct {
	Tab     animalcontrol.RecordType `json:"tab"`
	Search  string                   `json:"search"`
	Counts  tabCounts                `json:"counts"`
	Records []animalcontrol.Record   `json:"records"`
	Error   string                   `json:"error,omitempty"`
}

// tabOf lee ?tab= (default catch).
func tabOf(r *http.Request) (animalcontrol.RecordType, error) {
	tab := animalcontrol.RecordType(strings.TrimSpace(r.URL.Query().Get("tab")))
	if tab == "" {
		return animalcontrol.RecordTypeCatch, nil
	}
	if !tab.Valid() {
		return "", fmt.Errorf("%w: tab must be catch or surrendered", animalcontrol.ErrInvalidInput)
	}
	return tab, nil
}

func (p AnimalControlPage) listResponse(ws *Workspace, tab animalcontrol.RecordType, search string) animalControlListResponse {
	all := ws.AnimalControl.Records()
	st := animalcontrol.Summarize(all, "")
	return animalControlListResponse{
		Tab:     tab,
		Search:  search,
		Counts:  tabCounts{Catch: st.Catch, Surrendered: st.Surrendered},
		Records: animalcontrol.Filter(all, tab, search),
		Error:   ws.AnimalControl.Err(),
	}
}

func (p AnimalControlPage) list(w http.ResponseWriter, r *http.Request) {
	tab, err := tabOf(r)
	if err != nil {
		writeError(w, err)
		return
	}
	ws := p.Workspaces.For(r.Context())
	if _, err := ws.AnimalControlRecords(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p.listResponse(ws, tab, r.URL.Query().Get("search")))
}

func (p AnimalControlPage) refresh(w http.ResponseWriter, r *http.Request) {
	tab, err := tabOf(r)
	if err != nil {
		writeError(w, err)
		return
	}
	ws := p.Workspaces.For(r.Context())
	if err := ws.AnimalControl.Load(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p.listResponse(ws, tab, r.URL.Query().Get("search")))
}

func (p AnimalControlPage) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	ws := p.Workspaces.For(r.Context())
	if _, err := ws.AnimalControlRecords(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	rec, ok := ws.AnimalControl.Get(id)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	var view modal.View[animalcontrol.Record]
	view.Open(rec)
	writeJSON(w, http.StatusOK, view.Record())
}

// capturingStore deja a mano el registro que devolvió el API.
type capturingStore struct {
	*animalcontrol.Store
	last animalcontrol.Record
}

func (c *capturingStore) Create(ctx context.Context, in animalcontrol.CreateInput) (animalcontrol.Record, error) {
	rec, err := c.Store.Create(ctx, in)
	c.last = rec
	return rec, err
}

func (c *capturingStore) Update(ctx context.Context, id int64, patch animalcontrol.UpdateInput) (animalcontrol.Record, error) {
	rec, err := c.Store.Update(ctx, id, patch)
	c.last = rec
	return rec, err
}

func (p AnimalControlPage) create(w http.ResponseWriter, r *http.Request) {
	tab, err := tabOf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req animalcontrol.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	ws := p.Workspaces.For(r.Context())
	store := &capturingStore{Store: ws.AnimalControl}

	add := modal.NewAnimalControlAdd(store, tab, p.Now, p.Log)
	add.Open()
	add.Set(func(s *animalcontrol.CreateInput) {
		// tipo y fecha quedan con el default del modal si no vienen
		rt, date := s.RecordType, s.Date
		*s = req
		if s.RecordType == "" {
			s.RecordType = rt
		}
		if strings.TrimSpace(s.Date) == "" {
			s.Date = date
		}
	})

	if err := add.Submit(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, store.last)
}

// update recibe el formulario (campos omitidos = sin cambios) y manda solo
// lo que difiere del registro actual.
func (p AnimalControlPage) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	ws := p.Workspaces.For(r.Context())
	if _, err := ws.AnimalControlRecords(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	orig, ok := ws.AnimalControl.Get(id)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	store := &capturingStore{Store: ws.AnimalControl}
	edit := modal.NewAnimalControlEdit(store, p.Log)
	edit.Open(orig)

	form := edit.State()
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	edit.Set(func(s *animalcontrol.CreateInput) { *s = form })

	if err := edit.Submit(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	rec, _ := ws.AnimalControl.Get(id)
	writeJSON(w, http.StatusOK, rec)
}

func (p AnimalControlPage) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	ws := p.Workspaces.For(r.Context())
	label := ""
	if rec, ok := ws.AnimalControl.Get(id); ok {
		label = rec.OwnerName
	}

	confirm := modal.NewConfirm(ws.AnimalControl.Delete, p.Log)
	confirm.Open(id, label)
	if err := confirm.Confirm(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (p AnimalControlPage) statistics(w http.ResponseWriter, r *http.Request) {
	day := strings.TrimSpace(r.URL.Query().Get("date"))
	if day != "" {
		if _, err := time.Parse("2006-01-02", day); err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	st, err := p.Stats.Statistics(r.Context(), day)
	if err != nil {
		writeError(w, err)
		return
	}

	out := map[string]any{}
	for k, v := range st.Raw {
		out[k] = v
	}
	out["date"] = st.Date
	out["total_records"] = st.Total
	out["catch_records"] = st.Catch
	out["surrendered_records"] = st.Surrendered
	writeJSON(w, http.StatusOK, out)
}

// export genera el reporte sobre la lista en memoria (sin volver a pedirla
// si ya está cargada).
func (p AnimalControlPage) export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	o := export.Options{
		Selector: export.Selector(strings.TrimSpace(q.Get("selector"))),
		Date:     strings.TrimSpace(q.Get("date")),
		Tab:      animalcontrol.RecordType(strings.TrimSpace(q.Get("tab"))),
		Search:   q.Get("search"),
		Format:   export.Format(strings.TrimSpace(q.Get("format"))),
	}
	if o.Selector == "" {
		o.Selector = export.SelectorCurrent
	}
	if o.Selector == export.SelectorCurrent && o.Tab == "" {
		o.Tab = animalcontrol.RecordTypeCatch
	}

	ws := p.Workspaces.For(r.Context())
	records, err := ws.AnimalControlRecords(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var buf bytes.Buffer
	res, err := p.Exporter.Export(r.Context(), &buf, records, o)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	w.Header().Set("X-Export-Rows", fmt.Sprint(res.Rows))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeAPI imita el backend REST de registros (lo mínimo para los tests).
type fakeAPI struct {
	mu     sync.Mutex
	nextID int64

	animal []map[string]any
	repro  []map[string]any
	users  []map[string]any
	pets   []map[string]any

	lastPut map[string]any
}

const fakeToken = "tok-e2e"

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{nextID: 100}
	ts := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(ts.Close)
	return f, ts
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+fakeToken {
		http.Error(w, `{"detail":"Not authenticated"}`, http.StatusUnauthorized)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	p := r.URL.Path
	switch {
	case p == "/animal-control-records/statistics/dashboard":
		total, catch := 0, 0
		for _, rec := range f.animal {
			if d := r.URL.Query().Get("date"); d != "" && !strings.HasPrefix(rec["date"].(string), d) {
				continue
			}
			total++
			if rec["record_type"] == "catch" {
				catch++
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"total_records":       total,
			"catch_records":       catch,
			"surrendered_records": total - catch,
			"records_by_day":      map[string]int{},
		})

	case p == "/animal-control-records/" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, f.animal)

	case p == "/animal-control-records/" && r.Method == http.MethodPost:
		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.nextID++
		in["id"] = f.nextID
		in["created_at"] = "2024-01-02T10:00:00"
		f.animal = append(f.animal, in)
		writeJSON(w, http.StatusCreated, in)

	case strings.HasPrefix(p, "/animal-control-records/"):
		id, _ := strconv.ParseInt(strings.TrimPrefix(p, "/animal-control-records/"), 10, 64)
		i := indexOf(f.animal, id)
		if i < 0 {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			var patch map[string]any
			_ = json.NewDecoder(r.Body).Decode(&patch)
			f.lastPut = patch
			for k, v := range patch {
				f.animal[i][k] = v
			}
			writeJSON(w, http.StatusOK, f.animal[i])
		case http.MethodDelete:
			f.animal = append(f.animal[:i], f.animal[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
		}

	case p == "/reproductive-records/" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, f.repro)

	case p == "/reproductive-records/" && r.Method == http.MethodPost:
		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.nextID++
		in["id"] = f.nextID
		f.repro = append(f.repro, in)
		writeJSON(w, http.StatusCreated, map[string]any{"id": f.nextID})

	case strings.HasPrefix(p, "/reproductive-records/"):
		id, _ := strconv.ParseInt(strings.TrimPrefix(p, "/reproductive-records/"), 10, 64)
		i := indexOf(f.repro, id)
		if i < 0 {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			var in map[string]any
			_ = json.NewDecoder(r.Body).Decode(&in)
			in["id"] = id
			f.repro[i] = in
			writeJSON(w, http.StatusOK, map[string]any{"message": "updated"})
		case http.MethodDelete:
			f.repro = append(f.repro[:i], f.repro[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
		}

	case p == "/users/":
		writeJSON(w, http.StatusOK, f.users)
	case p == "/pets/":
		writeJSON(w, http.StatusOK, f.pets)

	default:
		http.NotFound(w, r)
	}
}

func indexOf(items []map[string]any, id int64) int {
	for i, it := range items {
		switch v := it["id"].(type) {
		case int64:
			if v == id {
				return i
			}
		case float64:
			if int64(v) == id {
				return i
			}
		}
	}
	return -1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

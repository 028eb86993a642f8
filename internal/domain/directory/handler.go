package directory

import (
	"encoding/json"
	"net/http"

	"animal-control-admin/internal/platform/httpclient"
	"animal-control-admin/internal/typeahead"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes expone los listados de referencia que alimentan los
// typeahead de los modales de alta.
func RegisterRoutes(r chi.Router, src Source) {
	r.Route("/directory", func(dr chi.Router) {
		dr.Get("/users", listUsersHandler(src))
		dr.Get("/pets", listPetsHandler(src))
	})
}

type searchResponse[T any] struct {
	Term    string `json:"term"`
	Items   []T    `json:"items"`
	Message string `json:"message,omitempty"`
}

func listUsersHandler(src Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := src.Users(r.Context())
		if err != nil {
			writeUpstreamError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, search(typeahead.New("owners", User.DisplayName), users, r.URL.Query().Get("search")))
	}
}

func listPetsHandler(src Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pets, err := src.Pets(r.Context())
		if err != nil {
			writeUpstreamError(w, err)
			return
		}
		d := typeahead.New("pets", func(p Pet) string { return p.Name })
		writeJSON(w, http.StatusOK, search(d, pets, r.URL.Query().Get("search")))
	}
}

func search[T any](d *typeahead.Dropdown[T], all []T, term string) searchResponse[T] {
	d.SetCandidates(all)
	d.Focus()
	if term != "" {
		d.Type(term)
	}
	out := searchResponse[T]{Term: d.Term(), Items: d.Matches()}
	if len(out.Items) == 0 {
		out.Message = d.Message()
		out.Items = []T{}
	}
	return out
}

func writeUpstreamError(w http.ResponseWriter, err error) {
	if st, ok := httpclient.StatusOf(err); ok && st >= 400 && st < 500 {
		http.Error(w, err.Error(), st)
		return
	}
	http.Error(w, err.Error(), http.StatusBadGateway)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

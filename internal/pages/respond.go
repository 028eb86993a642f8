package pages

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"animal-control-admin/internal/domain/animalcontrol"
	"animal-control-admin/internal/domain/reproductive"
	"animal-control-admin/internal/export"
	"animal-control-admin/internal/modal"
	"animal-control-admin/internal/platform/httpclient"
	"animal-control-admin/internal/typeahead"

	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Error  string             `json:"error"`
	Fields []modal.FieldError `json:"fields,omitempty"`
}

// writeError traduce errores de validación / del API a un status.
// Los 4xx del API se devuelven tal cual; los 5xx y fallas de red como 502.
func writeError(w http.ResponseWriter, err error) {
	var verr *modal.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Fields: verr.Fields})
		return
	case errors.Is(err, export.ErrInvalidOptions),
		errors.Is(err, animalcontrol.ErrInvalidInput),
		errors.Is(err, reproductive.ErrInvalidInput),
		errors.Is(err, typeahead.ErrNoSuchCandidate):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if st, ok := httpclient.StatusOf(err); ok {
		if st >= 400 && st < 500 {
			writeJSON(w, st, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

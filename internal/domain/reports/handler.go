package reports

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/reports", listReportsHandler(svc))
}

type reportResponse struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Selector    string    `json:"selector"`
	Date        string    `json:"date,omitempty"`
	Format      string    `json:"format"`
	Rows        int       `json:"rows"`
	GeneratedBy string    `json:"generated_by,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

func listReportsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				http.Error(w, "limit must be a positive number", http.StatusBadRequest)
				return
			}
			limit = n
		}

		items, err := svc.List(r.Context(), limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]reportResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toReportResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toReportResponse(r Report) reportResponse {
	return reportResponse{
		ID:          r.ID,
		Filename:    r.Filename,
		Selector:    r.Selector,
		Date:        r.Date,
		Format:      r.Format,
		Rows:        r.Rows,
		GeneratedBy: r.GeneratedBy,
		GeneratedAt: r.GeneratedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package reports

import "time"

// Report es una exportación generada (historial append-only).
type Report struct {
	ID          string
	Filename    string
	Selector    string
	Date        string // fecha elegida (selector "date"); vacío en otros
	Format      string
	Rows        int
	GeneratedBy string
	GeneratedAt time.Time
}

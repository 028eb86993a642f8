package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"animal-control-admin/internal/domain/animalcontrol"
)

// Column es una columna del reporte. Width en mm (A4 apaisado, 277mm útiles).
type Column struct {
	Header string
	Width  float64
	value  func(n int, r animalcontrol.Record) string
}

// Document es el reporte ya filtrado, independiente del formato de salida.
type Document struct {
	Title       string
	Subtitle    string
	Columns     []Column
	Rows        [][]string
	GeneratedAt time.Time
}

func (d Document) Total() int { return len(d.Rows) }

var (
	colNo      = Column{Header: "No.", value: func(n int, _ animalcontrol.Record) string { return strconv.Itoa(n) }}
	colDate    = Column{Header: "Date", value: func(_ int, r animalcontrol.Record) string { return r.Day() }}
	colType    = Column{Header: "Type", value: func(_ int, r animalcontrol.Record) string { return r.RecordType.Label() }}
	colOwner   = Column{Header: "Owner", value: func(_ int, r animalcontrol.Record) string { return r.OwnerName }}
	colContact = Column{Header: "Contact", value: func(_ int, r animalcontrol.Record) string { return r.ContactNumber }}
	colAddress = Column{Header: "Address", value: func(_ int, r animalcontrol.Record) string { return r.Address }}
	colSpecies = Column{Header: "Species", value: func(_ int, r animalcontrol.Record) string { return r.Species }}
	colBreed   = Column{Header: "Breed", value: func(_ int, r animalcontrol.Record) string { return r.Breed }}
	colGender  = Column{Header: "Gender", value: func(_ int, r animalcontrol.Record) string { return capitalize(string(r.Gender)) }}
	colDetail  = Column{Header: "Detail/Purpose", value: func(_ int, r animalcontrol.Record) string { return r.Detail }}
)

func sized(c Column, w float64) Column {
	c.Width = w
	return c
}

// Columns depende del tipo: surrendered agrega Detail/Purpose; los reportes
// que mezclan tipos (today/date/all) agregan Type y Detail.
func Columns(o Options) []Column {
	if o.Selector != SelectorCurrent {
		return []Column{
			sized(colNo, 10), sized(colDate, 22), sized(colType, 24), sized(colOwner, 36),
			sized(colContact, 26), sized(colAddress, 44), sized(colSpecies, 22),
			sized(colBreed, 26), sized(colGender, 17), sized(colDetail, 50),
		}
	}
	if o.Tab == animalcontrol.RecordTypeSurrendered {
		return []Column{
			sized(colNo, 10), sized(colDate, 22), sized(colOwner, 40), sized(colContact, 28),
			sized(colAddress, 50), sized(colSpecies, 24), sized(colBreed, 30),
			sized(colGender, 18), sized(colDetail, 55),
		}
	}
	return []Column{
		sized(colNo, 10), sized(colDate, 24), sized(colOwner, 48), sized(colContact, 32),
		sized(colAddress, 70), sized(colSpecies, 30), sized(colBreed, 40), sized(colGender, 23),
	}
}

// Build arma el documento con los registros ya seleccionados.
func Build(selected []animalcontrol.Record, o Options, now time.Time) Document {
	cols := Columns(o)
	rows := make([][]string, 0, len(selected))
	for i, r := range selected {
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = c.value(i+1, r)
		}
		rows = append(rows, row)
	}

	return Document{
		Title:       "Animal Control Records Report",
		Subtitle:    subtitle(o, now),
		Columns:     cols,
		Rows:        rows,
		GeneratedAt: now,
	}
}

func subtitle(o Options, now time.Time) string {
	switch o.Selector {
	case SelectorCurrent:
		s := o.Tab.Label() + " Records"
		if q := strings.TrimSpace(o.Search); q != "" {
			s += fmt.Sprintf(" (search: %q)", q)
		}
		return s
	case SelectorToday:
		return "Records for " + now.Format(dayLayout)
	case SelectorDate:
		return "Records for " + strings.TrimSpace(o.Date)
	default:
		return "All Records"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

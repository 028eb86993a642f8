package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-control-admin/internal/domain/animalcontrol"
)

// Selector decide qué registros entran al reporte.
type Selector string

const (
	SelectorCurrent Selector = "current" // tab + búsqueda de la página
	SelectorToday   Selector = "today"
	SelectorDate    Selector = "date"
	SelectorAll     Selector = "all"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatText Format = "txt"
)

const (
	dayLayout      = "2006-01-02"
	filenamePrefix = "animal-control-records"
)

var ErrInvalidOptions = errors.New("invalid export options")

type Options struct {
	Selector Selector
	Date     string                   // YYYY-MM-DD, solo para SelectorDate
	Tab      animalcontrol.RecordType // tab activo (columnas + SelectorCurrent)
	Search   string                   // búsqueda activa (SelectorCurrent)
	Format   Format
}

func (o Options) Validate() error {
	switch o.Selector {
	case SelectorCurrent:
		if !o.Tab.Valid() {
			return fmt.Errorf("%w: current selector needs a tab (catch|surrendered)", ErrInvalidOptions)
		}
	case SelectorToday, SelectorAll:
	case SelectorDate:
		if _, err := time.Parse(dayLayout, strings.TrimSpace(o.Date)); err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidOptions)
		}
	default:
		return fmt.Errorf("%w: unknown selector %q", ErrInvalidOptions, o.Selector)
	}
	switch o.Format {
	case FormatPDF, FormatText, "":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidOptions, o.Format)
	}
	return nil
}

// Filename: animal-control-records-<today>[-<tab>][-<date>].<ext>
//   - current => -<tab>
//   - today   => -<today>
//   - date    => -<date>
//   - all     => (nada)
func Filename(today time.Time, o Options, ext string) string {
	day := today.Format(dayLayout)

	var b strings.Builder
	b.WriteString(filenamePrefix)
	b.WriteString("-")
	b.WriteString(day)

	switch o.Selector {
	case SelectorCurrent:
		if o.Tab != "" {
			b.WriteString("-" + string(o.Tab))
		}
	case SelectorToday:
		b.WriteString("-" + day)
	case SelectorDate:
		if d := strings.TrimSpace(o.Date); d != "" {
			b.WriteString("-" + d)
		}
	}

	b.WriteString("." + ext)
	return b.String()
}

// Select aplica el selector sobre la lista en memoria (sin fetch).
func Select(records []animalcontrol.Record, o Options, today time.Time) []animalcontrol.Record {
	switch o.Selector {
	case SelectorCurrent:
		return animalcontrol.Filter(records, o.Tab, o.Search)
	case SelectorToday:
		return byDay(records, today.Format(dayLayout))
	case SelectorDate:
		return byDay(records, strings.TrimSpace(o.Date))
	default:
		out := make([]animalcontrol.Record, len(records))
		copy(out, records)
		return out
	}
}

func byDay(records []animalcontrol.Record, day string) []animalcontrol.Record {
	out := make([]animalcontrol.Record, 0)
	for _, r := range records {
		if r.Day() == day {
			out = append(out, r)
		}
	}
	return out
}

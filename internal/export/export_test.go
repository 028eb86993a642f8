package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animal-control-admin/internal/domain/animalcontrol"
	"animal-control-admin/internal/domain/reports"
	"animal-control-admin/internal/session"
)

var clock = time.Date(2024, 1, 2, 15, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return clock }

func sample() []animalcontrol.Record {
	return []animalcontrol.Record{
		{ID: 1, OwnerName: "Ana Cruz", RecordType: animalcontrol.RecordTypeCatch, Date: "2024-01-01", Species: "dog"},
		{ID: 2, OwnerName: "Ben Ramos", RecordType: animalcontrol.RecordTypeCatch, Date: "2024-01-02", Species: "cat"},
		{ID: 3, OwnerName: "Carla Diaz", RecordType: animalcontrol.RecordTypeSurrendered, Date: "2024-01-02T08:00:00", Detail: "moving abroad"},
	}
}

type recorderSpy struct {
	got []reports.RecordInput
	err error
}

func (r *recorderSpy) Record(ctx context.Context, in reports.RecordInput) (reports.Report, error) {
	r.got = append(r.got, in)
	return reports.Report{Filename: in.Filename}, r.err
}

type failingRenderer struct{}

func (failingRenderer) Render(io.Writer, Document) error { return errors.New("font missing") }
func (failingRenderer) Ext() string                      { return "pdf" }
func (failingRenderer) ContentType() string              { return "application/pdf" }

func TestFilename(t *testing.T) {
	cases := []struct {
		name string
		o    Options
		ext  string
		want string
	}{
		{"today", Options{Selector: SelectorToday}, "pdf", "animal-control-records-2024-01-02-2024-01-02.pdf"},
		{"date", Options{Selector: SelectorDate, Date: "2023-12-24"}, "pdf", "animal-control-records-2024-01-02-2023-12-24.pdf"},
		{"current", Options{Selector: SelectorCurrent, Tab: animalcontrol.RecordTypeSurrendered}, "txt", "animal-control-records-2024-01-02-surrendered.txt"},
		{"all", Options{Selector: SelectorAll}, "pdf", "animal-control-records-2024-01-02.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Filename(clock, tc.o, tc.ext))
			// determinista
			assert.Equal(t, Filename(clock, tc.o, tc.ext), Filename(clock, tc.o, tc.ext))
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, Options{Selector: SelectorAll}.Validate())
	assert.NoError(t, Options{Selector: SelectorCurrent, Tab: animalcontrol.RecordTypeCatch}.Validate())

	bad := []Options{
		{Selector: "yesterday"},
		{Selector: SelectorCurrent},
		{Selector: SelectorDate, Date: "01/02/2024"},
		{Selector: SelectorAll, Format: "docx"},
	}
	for _, o := range bad {
		assert.ErrorIs(t, o.Validate(), ErrInvalidOptions, "options %+v", o)
	}
}

func TestSelect(t *testing.T) {
	recs := sample()

	today := Select(recs, Options{Selector: SelectorToday}, clock)
	require.Len(t, today, 2)
	assert.Equal(t, int64(2), today[0].ID)
	assert.Equal(t, int64(3), today[1].ID)

	onDate := Select(recs, Options{Selector: SelectorDate, Date: "2024-01-01"}, clock)
	require.Len(t, onDate, 1)
	assert.Equal(t, int64(1), onDate[0].ID)

	current := Select(recs, Options{Selector: SelectorCurrent, Tab: animalcontrol.RecordTypeCatch, Search: "ben"}, clock)
	require.Len(t, current, 1)
	assert.Equal(t, "Ben Ramos", current[0].OwnerName)

	assert.Len(t, Select(recs, Options{Selector: SelectorAll}, clock), 3)
}

func TestColumns(t *testing.T) {
	headers := func(cols []Column) []string {
		out := make([]string, len(cols))
		for i, c := range cols {
			out[i] = c.Header
		}
		return out
	}

	catch := headers(Columns(Options{Selector: SelectorCurrent, Tab: animalcontrol.RecordTypeCatch}))
	assert.NotContains(t, catch, "Detail/Purpose")
	assert.NotContains(t, catch, "Type")

	surr := headers(Columns(Options{Selector: SelectorCurrent, Tab: animalcontrol.RecordTypeSurrendered}))
	assert.Contains(t, surr, "Detail/Purpose")

	mixed := headers(Columns(Options{Selector: SelectorAll}))
	assert.Contains(t, mixed, "Type")
	assert.Contains(t, mixed, "Detail/Purpose")

	for _, o := range []Options{
		{Selector: SelectorCurrent, Tab: animalcontrol.RecordTypeCatch},
		{Selector: SelectorCurrent, Tab: animalcontrol.RecordTypeSurrendered},
		{Selector: SelectorAll},
	} {
		var total float64
		for _, c := range Columns(o) {
			total += c.Width
		}
		assert.InDelta(t, 277.0, total, 0.001, "widths for %+v", o)
	}
}

func TestExport_TodayPDF_OnlyTodaysRows(t *testing.T) {
	recs := []animalcontrol.Record{
		{ID: 1, OwnerName: "Ana Cruz", RecordType: animalcontrol.RecordTypeCatch, Date: "2024-01-01"},
		{ID: 2, OwnerName: "Ben Ramos", RecordType: animalcontrol.RecordTypeCatch, Date: "2024-01-02"},
	}
	spy := &recorderSpy{}
	ex := New(Config{Now: fixedNow, PDF: PDFRenderer{NoCompression: true}, Recorder: spy})

	var buf bytes.Buffer
	res, err := ex.Export(context.Background(), &buf, recs, Options{Selector: SelectorToday})
	require.NoError(t, err)

	assert.Equal(t, "animal-control-records-2024-01-02-2024-01-02.pdf", res.Filename)
	assert.Equal(t, FormatPDF, res.Format)
	assert.Equal(t, "application/pdf", res.ContentType)
	assert.Equal(t, 1, res.Rows)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%PDF"), "expected PDF header")
	assert.Contains(t, out, "Ben Ramos")
	assert.NotContains(t, out, "Ana Cruz")
	assert.NotContains(t, out, "2024-01-01")
	assert.Contains(t, out, "Total Records: 1")

	require.Len(t, spy.got, 1)
	assert.Equal(t, reports.RecordInput{
		Filename:    res.Filename,
		Selector:    "today",
		Format:      "pdf",
		Rows:        1,
		GeneratedBy: "anonymous",
	}, spy.got[0])
}

func TestExport_TextFormat(t *testing.T) {
	ex := New(Config{Now: fixedNow})

	var buf bytes.Buffer
	res, err := ex.Export(context.Background(), &buf, sample(), Options{
		Selector: SelectorCurrent,
		Tab:      animalcontrol.RecordTypeSurrendered,
		Format:   FormatText,
	})
	require.NoError(t, err)
	assert.Equal(t, "animal-control-records-2024-01-02-surrendered.txt", res.Filename)

	out := buf.String()
	assert.Contains(t, out, "No. | Date | Owner | Contact | Address | Species | Breed | Gender | Detail/Purpose")
	assert.Contains(t, out, "1 | 2024-01-02 | Carla Diaz |")
	assert.Contains(t, out, "| moving abroad")
	assert.Contains(t, out, "Total Records: 1")
	assert.Contains(t, out, "Generated on: 2024-01-02 15:30:00")
}

func TestExport_PDFFailureFallsBackToText(t *testing.T) {
	ex := New(Config{Now: fixedNow, PDF: failingRenderer{}})

	var buf bytes.Buffer
	res, err := ex.Export(context.Background(), &buf, sample(), Options{Selector: SelectorAll})
	require.NoError(t, err)

	assert.Equal(t, FormatText, res.Format)
	assert.Equal(t, "animal-control-records-2024-01-02.txt", res.Filename)
	assert.Equal(t, 3, res.Rows)
	assert.Contains(t, buf.String(), "Total Records: 3")
}

func TestExport_InvalidOptionsWritesNothing(t *testing.T) {
	spy := &recorderSpy{}
	ex := New(Config{Now: fixedNow, Recorder: spy})

	var buf bytes.Buffer
	_, err := ex.Export(context.Background(), &buf, sample(), Options{Selector: SelectorDate, Date: "tomorrow"})
	assert.ErrorIs(t, err, ErrInvalidOptions)
	assert.Zero(t, buf.Len())
	assert.Empty(t, spy.got)
}

func TestExport_RecorderErrorDoesNotFailExport(t *testing.T) {
	spy := &recorderSpy{err: errors.New("db down")}
	ex := New(Config{Now: fixedNow, Recorder: spy})

	ctx := session.WithSession(context.Background(), session.New("tok").WithUser("vet@example.org"))
	var buf bytes.Buffer
	_, err := ex.Export(ctx, &buf, sample(), Options{Selector: SelectorAll, Format: FormatText})
	require.NoError(t, err)

	require.Len(t, spy.got, 1)
	assert.Equal(t, "vet@example.org", spy.got[0].GeneratedBy)
}

func TestExport_EmptySelection(t *testing.T) {
	ex := New(Config{Now: fixedNow})

	var buf bytes.Buffer
	res, err := ex.Export(context.Background(), &buf, sample(), Options{Selector: SelectorDate, Date: "2023-06-01", Format: FormatText})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Rows)
	assert.Contains(t, buf.String(), "No records found for the selected filter.")
}

func TestFit_TruncatesNonASCIIOnRuneBoundaries(t *testing.T) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 8)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	got := fit(pdf, tr, strings.Repeat("Muñoz Peña ", 10), 40)

	assert.True(t, strings.HasPrefix(got, tr("Muñoz Peña")), "got %q", got)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.NotContains(t, got, "\ufffd")
	assert.NotContains(t, got, "\xef\xbf\xbd")
	assert.LessOrEqual(t, pdf.GetStringWidth(got), 38.0)
}

func TestExport_PDFKeepsNonASCIIOwnerInNarrowCell(t *testing.T) {
	records := []animalcontrol.Record{{
		ID:         9,
		OwnerName:  strings.Repeat("María José Muñoz Peña ", 4),
		Address:    "Av. Niños Héroes 12",
		RecordType: animalcontrol.RecordTypeCatch,
		Date:       "2024-01-02",
	}}
	var buf bytes.Buffer
	ex := New(Config{Now: fixedNow, PDF: PDFRenderer{NoCompression: true}})

	_, err := ex.Export(context.Background(), &buf, records, Options{Selector: SelectorAll, Format: FormatPDF})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Mar\xeda Jos\xe9 Mu\xf1oz")
	assert.NotContains(t, out, "\xef\xbf\xbd")
}

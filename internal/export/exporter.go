package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"animal-control-admin/internal/domain/animalcontrol"
	"animal-control-admin/internal/domain/reports"
	"animal-control-admin/internal/platform/logger"
	"animal-control-admin/internal/platform/metrics"
	"animal-control-admin/internal/session"
)

// Renderer escribe un Document en un formato.
type Renderer interface {
	Render(w io.Writer, doc Document) error
	Ext() string
	ContentType() string
}

// Recorder guarda el historial de reportes generados.
type Recorder interface {
	Record(ctx context.Context, in reports.RecordInput) (reports.Report, error)
}

// Result describe lo que efectivamente se escribió.
type Result struct {
	Filename    string
	ContentType string
	Format      Format
	Rows        int
}

type Exporter struct {
	now      func() time.Time
	pdf      Renderer
	text     Renderer
	recorder Recorder
	metrics  *metrics.Metrics
	log      logger.Logger
}

type Config struct {
	Now      func() time.Time // default time.Now (hora local)
	PDF      Renderer         // default PDFRenderer{}
	Text     Renderer         // default TextRenderer{}
	Recorder Recorder         // opcional
	Metrics  *metrics.Metrics // opcional
	Log      logger.Logger    // opcional
}

func New(cfg Config) *Exporter {
	e := &Exporter{
		now:      cfg.Now,
		pdf:      cfg.PDF,
		text:     cfg.Text,
		recorder: cfg.Recorder,
		metrics:  cfg.Metrics,
		log:      cfg.Log,
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.pdf == nil {
		e.pdf = PDFRenderer{}
	}
	if e.text == nil {
		e.text = TextRenderer{}
	}
	if e.log == nil {
		e.log = logger.Nop()
	}
	return e
}

// Export filtra records según o y escribe el reporte en w.
// Si el PDF falla se cae al formato texto (el Result lo refleja).
func (e *Exporter) Export(ctx context.Context, w io.Writer, records []animalcontrol.Record, o Options) (Result, error) {
	if o.Format == "" {
		o.Format = FormatPDF
	}
	if err := o.Validate(); err != nil {
		return Result{}, err
	}

	now := e.now()
	doc := Build(Select(records, o, now), o, now)

	var buf bytes.Buffer
	r := e.renderer(o.Format)
	format := o.Format
	if err := r.Render(&buf, doc); err != nil {
		if format != FormatPDF {
			return Result{}, fmt.Errorf("render %s: %w", format, err)
		}
		e.log.Warn("pdf export failed, falling back to text", map[string]any{"error": err.Error()})
		buf.Reset()
		r, format = e.text, FormatText
		if err := r.Render(&buf, doc); err != nil {
			return Result{}, fmt.Errorf("render %s: %w", format, err)
		}
	}

	if _, err := buf.WriteTo(w); err != nil {
		return Result{}, fmt.Errorf("write export: %w", err)
	}

	res := Result{
		Filename:    Filename(now, o, r.Ext()),
		ContentType: r.ContentType(),
		Format:      format,
		Rows:        doc.Total(),
	}

	e.metrics.ObserveExport(string(o.Selector), string(format))
	e.log.Info("export generated", map[string]any{
		"filename": res.Filename,
		"selector": o.Selector,
		"rows":     res.Rows,
	})

	if e.recorder != nil {
		if _, err := e.recorder.Record(ctx, reports.RecordInput{
			Filename:    res.Filename,
			Selector:    string(o.Selector),
			Date:        o.Date,
			Format:      string(format),
			Rows:        res.Rows,
			GeneratedBy: generatedBy(ctx),
		}); err != nil {
			// el archivo ya se escribió; el historial no bloquea la descarga
			e.log.Warn("report log failed", map[string]any{"error": err.Error()})
		}
	}

	return res, nil
}

func (e *Exporter) renderer(f Format) Renderer {
	if f == FormatText {
		return e.text
	}
	return e.pdf
}

func generatedBy(ctx context.Context) string {
	s := session.FromContext(ctx)
	if s.User != "" {
		return s.User
	}
	if s.Authenticated() {
		return "authenticated"
	}
	return "anonymous"
}

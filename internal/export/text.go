package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextRenderer es el fallback: mismas filas, separadas por " | ".
type TextRenderer struct{}

func (TextRenderer) Ext() string         { return "txt" }
func (TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (TextRenderer) Render(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, strings.ToUpper(doc.Title))
	if doc.Subtitle != "" {
		fmt.Fprintln(bw, doc.Subtitle)
	}
	fmt.Fprintln(bw)

	headers := make([]string, len(doc.Columns))
	for i, c := range doc.Columns {
		headers[i] = c.Header
	}
	line := strings.Join(headers, " | ")
	fmt.Fprintln(bw, line)
	fmt.Fprintln(bw, strings.Repeat("-", len(line)))

	for _, row := range doc.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			// un "|" dentro del valor rompería las columnas
			cells[i] = strings.ReplaceAll(v, "|", "/")
		}
		fmt.Fprintln(bw, strings.Join(cells, " | "))
	}
	if len(doc.Rows) == 0 {
		fmt.Fprintln(bw, "No records found for the selected filter.")
	}

	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Total Records: %d\n", doc.Total())
	fmt.Fprintf(bw, "Generated on: %s\n", doc.GeneratedAt.Format("2006-01-02 15:04:05"))

	return bw.Flush()
}
